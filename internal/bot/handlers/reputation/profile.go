package reputation

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/reputo/reputo/internal/bot/constants"
	"github.com/reputo/reputo/internal/bot/utils"
	"github.com/reputo/reputo/internal/database/types"
	"go.uber.org/zap"
)

// handleProfile lists the reputation events for the first mentioned member,
// or for the author when nobody is mentioned.
func (h *Handler) handleProfile(event *events.GuildMessageCreate) {
	ctx := context.Background()
	msg := event.Message

	target := msg.Author
	if len(msg.Mentions) > 0 {
		target = msg.Mentions[0]
	}

	repEvents, err := h.store.GetEventsForTarget(ctx, uint64(target.ID))
	if err != nil {
		h.logger.Error("Failed to get reputation events", zap.Error(err))
		h.reply(event, GenericErrorMessage)

		return
	}

	if len(repEvents) == 0 {
		h.reply(event, "No reputation records.")
		return
	}

	h.reply(event, RenderProfile(target.Username, repEvents))
}

// RenderProfile formats the event list for a profile reply, one line per
// event, truncated to Discord's message length limit.
func RenderProfile(username string, repEvents []*types.ReputationEvent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**Reputation for %s:**\n", username)

	for _, e := range repEvents {
		sign := "+"
		if e.Type == types.ReputationTypeNegative {
			sign = "-"
		}

		reason := e.Reason
		if reason == "" {
			reason = "No reason"
		}

		fmt.Fprintf(&b, "ID %d | %s | %s | %s\n",
			e.ID, sign, discord.UserMention(snowflake.ID(e.GiverID)), reason)
	}

	return utils.TruncateString(b.String(), constants.MaxMessageLength)
}
