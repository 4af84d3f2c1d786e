package utils

import (
	"github.com/disgoorg/disgo/discord"
)

// MemberDisplayName returns the member's guild nickname if one is set,
// otherwise their username.
func MemberDisplayName(member discord.Member) string {
	if member.Nick != nil && *member.Nick != "" {
		return *member.Nick
	}

	return member.User.Username
}
