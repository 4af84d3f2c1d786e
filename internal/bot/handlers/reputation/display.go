package reputation

import (
	"context"
	"slices"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/reputo/reputo/internal/bot/utils"
	"go.uber.org/zap"
)

// refreshMemberDisplay recomputes the member's nickname and Trusted role
// state from a fresh aggregate read and applies any changes. Nickname and
// role mutations are best-effort: the bot may lack permission over the
// member, and that must not abort the surrounding command.
func (h *Handler) refreshMemberDisplay(
	ctx context.Context, client bot.Client, guildID snowflake.ID, member discord.Member,
) {
	agg, err := h.store.GetAggregate(ctx, uint64(member.User.ID))
	if err != nil {
		h.logger.Error("Failed to get reputation aggregate",
			zap.Uint64("member_id", uint64(member.User.ID)),
			zap.Error(err))

		return
	}

	current := utils.MemberDisplayName(member)

	nick := utils.ComputeNickname(current, agg.Positive, agg.Negative, member.User.Username)
	if nick != current {
		_, err := client.Rest().UpdateMember(guildID, member.User.ID, discord.MemberUpdate{Nick: &nick})
		if err != nil {
			h.logger.Debug("Failed to update nickname",
				zap.Uint64("member_id", uint64(member.User.ID)),
				zap.Error(err))
		}
	}

	// The trusted role is only ever granted. Dropping below the threshold
	// afterwards does not revoke it.
	if !utils.IsTrustedEligible(agg.Positive, agg.Negative, h.config.TrustedThreshold) {
		return
	}

	roles, err := client.Rest().GetRoles(guildID)
	if err != nil {
		h.logger.Error("Failed to get guild roles", zap.Error(err))
		return
	}

	for _, role := range roles {
		if role.Name != h.config.TrustedRoleName {
			continue
		}

		if slices.Contains(member.RoleIDs, role.ID) {
			return
		}

		if err := client.Rest().AddMemberRole(guildID, member.User.ID, role.ID); err != nil {
			h.logger.Debug("Failed to grant trusted role",
				zap.Uint64("member_id", uint64(member.User.ID)),
				zap.Error(err))
		}

		return
	}
}
