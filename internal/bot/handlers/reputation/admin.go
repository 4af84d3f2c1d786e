package reputation

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/reputo/reputo/internal/bot/utils"
	"github.com/reputo/reputo/internal/database/types"
	"go.uber.org/zap"
)

// handleDeleteEvent removes a single reputation event by ID and refreshes the
// affected member's display state. Administrator only.
func (h *Handler) handleDeleteEvent(event *events.GuildMessageCreate, args []string) {
	ctx := context.Background()

	if !h.isAdministrator(event) {
		h.reply(event, "Invalid permissions.")
		return
	}

	id, ok := ParseEventID(args)
	if !ok {
		h.reply(event, "Provide a rep ID.")
		return
	}

	targetID, err := h.store.DeleteEvent(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrEventNotFound) {
			h.reply(event, "Rep not found.")
			return
		}

		h.logger.Error("Failed to delete reputation event", zap.Error(err))
		h.reply(event, GenericErrorMessage)

		return
	}

	// Best-effort refresh: the member may have left the guild since the event
	// was recorded, in which case the fetch failure is ignored.
	if member, err := event.Client().Rest().GetMember(event.GuildID, snowflake.ID(targetID)); err == nil {
		h.refreshMemberDisplay(ctx, event.Client(), event.GuildID, *member)
	}

	h.reply(event, fmt.Sprintf("Reputation ID %d removed.", id))
}

// handleReset deletes every reputation event for the mentioned member and
// refreshes their display state. Administrator only.
func (h *Handler) handleReset(event *events.GuildMessageCreate) {
	ctx := context.Background()

	if !h.isAdministrator(event) {
		h.reply(event, "Invalid permissions.")
		return
	}

	if len(event.Message.Mentions) == 0 {
		h.reply(event, "Mention a user.")
		return
	}

	target := event.Message.Mentions[0]

	if _, err := h.store.DeleteAllForTarget(ctx, uint64(target.ID)); err != nil {
		h.logger.Error("Failed to reset reputation", zap.Error(err))
		h.reply(event, GenericErrorMessage)

		return
	}

	displayName := target.Username

	if member, err := event.Client().Rest().GetMember(event.GuildID, target.ID); err == nil {
		h.refreshMemberDisplay(ctx, event.Client(), event.GuildID, *member)
		displayName = utils.MemberDisplayName(*member)
	}

	h.reply(event, fmt.Sprintf("Reputation reset for %s", displayName))
}
