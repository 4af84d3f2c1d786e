package reputation

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/reputo/reputo/internal/bot/utils"
	"github.com/reputo/reputo/internal/database/types"
	"go.uber.org/zap"
)

// handleRep processes a +rep or -rep command. Non-admin givers are subject to
// the cooldown window and the one-vote-per-pair guard; administrators bypass
// both. On success the event is persisted and the target's display state is
// refreshed from a fresh aggregate read.
func (h *Handler) handleRep(event *events.GuildMessageCreate, args []string, repType types.ReputationType) {
	ctx := context.Background()
	msg := event.Message

	if len(msg.Mentions) == 0 {
		h.reply(event, "Mention a user.")
		return
	}

	target := msg.Mentions[0]

	if target.ID == msg.Author.ID {
		h.reply(event, "You cannot rep yourself.")
		return
	}

	if !h.isAdministrator(event) {
		rejection, err := h.validateVote(ctx, msg.Author.ID, target.ID, time.Now())
		if err != nil {
			h.logger.Error("Failed to validate vote", zap.Error(err))
			h.reply(event, GenericErrorMessage)

			return
		}

		if rejection != "" {
			h.reply(event, rejection)
			return
		}
	}

	repEvent := &types.ReputationEvent{
		TargetID: uint64(target.ID),
		GiverID:  uint64(msg.Author.ID),
		Type:     repType,
		Reason:   BuildReason(args),
	}

	if _, err := h.store.InsertEvent(ctx, repEvent); err != nil {
		h.logger.Error("Failed to insert reputation event", zap.Error(err))
		h.reply(event, GenericErrorMessage)

		return
	}

	displayName := target.Username

	if member, err := event.Client().Rest().GetMember(event.GuildID, target.ID); err == nil {
		h.refreshMemberDisplay(ctx, event.Client(), event.GuildID, *member)
		displayName = utils.MemberDisplayName(*member)
	}

	verb := "added"
	if repType == types.ReputationTypeNegative {
		verb = "removed"
	}

	h.reply(event, fmt.Sprintf("Reputation %s for %s", verb, displayName))
}

// validateVote enforces the cooldown window and the one-vote-per-pair guard
// for non-admin givers. A successful validation records the giver's action
// time. Returns the rejection message to send, or an empty string when the
// vote may proceed.
//
// The existing-vote check and the later insert are two independent round
// trips, so concurrent votes from the same pair can both pass. That produces
// a duplicate row rather than an error and is accepted behavior.
func (h *Handler) validateVote(
	ctx context.Context, giverID, targetID snowflake.ID, now time.Time,
) (string, error) {
	if onCooldown, remaining := h.cooldown.IsOnCooldown(giverID, now); onCooldown {
		seconds := int64(math.Ceil(remaining.Seconds()))
		return fmt.Sprintf("You are on cooldown. Wait %ds before repping again.", seconds), nil
	}

	h.cooldown.RecordAction(giverID, now)

	exists, err := h.store.HasExistingVote(ctx, uint64(targetID), uint64(giverID))
	if err != nil {
		return "", err
	}

	if exists {
		return "You have already repped this user.", nil
	}

	return "", nil
}
