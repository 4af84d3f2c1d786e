// Package reputation implements the text command interface for awarding,
// listing, and removing reputation points.
package reputation

import (
	"context"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/reputo/reputo/internal/bot/constants"
	"github.com/reputo/reputo/internal/bot/core/cooldown"
	"github.com/reputo/reputo/internal/database/types"
	"github.com/reputo/reputo/internal/setup/config"
	"go.uber.org/zap"
)

// GenericErrorMessage is sent when a store operation fails. A single bad
// command must never take down the event handler.
const GenericErrorMessage = "Something went wrong. Please try again later."

// ReputationStore defines the persistence operations the command handlers need.
type ReputationStore interface {
	GetAggregate(ctx context.Context, targetID uint64) (*types.ReputationAggregate, error)
	HasExistingVote(ctx context.Context, targetID, giverID uint64) (bool, error)
	InsertEvent(ctx context.Context, event *types.ReputationEvent) (int64, error)
	GetEventsForTarget(ctx context.Context, targetID uint64) ([]*types.ReputationEvent, error)
	DeleteEvent(ctx context.Context, id int64) (uint64, error)
	DeleteAllForTarget(ctx context.Context, targetID uint64) (int64, error)
}

// Handler routes reputation commands from guild messages to their handlers.
// It is stateless across messages except for the cooldown tracker.
type Handler struct {
	store    ReputationStore
	cooldown *cooldown.Tracker
	config   *config.Reputation
	logger   *zap.Logger
}

// New creates a command handler with its dependencies.
func New(store ReputationStore, tracker *cooldown.Tracker, cfg *config.Reputation, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		cooldown: tracker,
		config:   cfg,
		logger:   logger.Named("reputation"),
	}
}

// OnGuildMessageCreate parses an inbound guild message and dispatches it to
// the matching command handler. Unrecognized commands are silently ignored.
// Handling runs in a goroutine so a slow store call does not block the
// gateway event loop.
func (h *Handler) OnGuildMessageCreate(event *events.GuildMessageCreate) {
	if event.Message.Author.Bot {
		return
	}

	cmd, args := ParseCommand(event.Message.Content)

	switch cmd {
	case constants.RepAddCommandName:
		go h.handleRep(event, args, types.ReputationTypePositive)
	case constants.RepRemoveCommandName:
		go h.handleRep(event, args, types.ReputationTypeNegative)
	case constants.ProfileCommandName:
		go h.handleProfile(event)
	case constants.RepDeleteCommandName:
		go h.handleDeleteEvent(event, args)
	case constants.RepResetCommandName:
		go h.handleReset(event)
	}
}

// reply sends a message referencing the command that triggered it.
func (h *Handler) reply(event *events.GuildMessageCreate, content string) {
	_, err := event.Client().Rest().CreateMessage(event.Message.ChannelID,
		discord.NewMessageCreateBuilder().
			SetContent(content).
			SetMessageReferenceByID(event.MessageID).
			Build())
	if err != nil {
		h.logger.Error("Failed to send reply",
			zap.Uint64("channel_id", uint64(event.Message.ChannelID)),
			zap.Error(err))
	}
}

// isAdministrator checks whether the message author holds the administrator
// permission in the guild. Gateway message members carry no precomputed
// permissions, so they are resolved from the cached guild roles.
func (h *Handler) isAdministrator(event *events.GuildMessageCreate) bool {
	if event.Message.Member == nil {
		return false
	}

	member := *event.Message.Member
	member.GuildID = event.GuildID

	if member.User.ID == 0 {
		member.User = event.Message.Author
	}

	return event.Client().Caches().MemberPermissions(member).Has(discord.PermissionAdministrator)
}
