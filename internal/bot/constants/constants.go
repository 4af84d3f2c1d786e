package constants

const (
	// RepAddCommandName awards a positive reputation event.
	RepAddCommandName = "+rep"
	// RepRemoveCommandName awards a negative reputation event.
	RepRemoveCommandName = "-rep"
	// ProfileCommandName lists a member's reputation events.
	ProfileCommandName = "profile"
	// RepDeleteCommandName deletes a single event by ID (admin only).
	RepDeleteCommandName = "-repid"
	// RepResetCommandName deletes all events for a target (admin only).
	RepResetCommandName = "-repres"
)

const (
	// MaxNicknameLength is Discord's nickname length limit in characters.
	MaxNicknameLength = 32
	// MaxMessageLength is Discord's message content length limit.
	MaxMessageLength = 2000
)
