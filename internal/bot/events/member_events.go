package events

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/reputo/reputo/internal/bot/utils"
	"go.uber.org/zap"
)

// MemberEventHandler manages member-related events for the bot.
type MemberEventHandler struct {
	logger *zap.Logger
}

// NewMemberEventHandler creates a new instance of the member event handler.
func NewMemberEventHandler(logger *zap.Logger) *MemberEventHandler {
	return &MemberEventHandler{
		logger: logger.Named("member_events"),
	}
}

// OnGuildMemberJoin stamps a zero-score nickname onto new members. New
// members have no stored events, so no store read is needed. The nickname
// update is best-effort; the bot cannot rename members above it in the role
// hierarchy.
func (h *MemberEventHandler) OnGuildMemberJoin(event *events.GuildMemberJoin) {
	nick := utils.ComputeNickname("", 0, 0, event.Member.User.Username)

	_, err := event.Client().Rest().UpdateMember(event.GuildID, event.Member.User.ID,
		discord.MemberUpdate{Nick: &nick})
	if err != nil {
		h.logger.Debug("Failed to set nickname for new member",
			zap.Uint64("member_id", uint64(event.Member.User.ID)),
			zap.Error(err))

		return
	}

	h.logger.Debug("Stamped nickname for new member",
		zap.Uint64("member_id", uint64(event.Member.User.ID)),
		zap.String("nickname", nick))
}
