package pipewire

import (
	"fmt"
	"strings"

	"pwquick/internal/services"
)

// MuteAction is the mute change passed to wpctl set-mute.
type MuteAction int

const (
	MuteToggle MuteAction = iota
	MuteOn
	MuteOff
)

// Arg renders the wpctl argument.
func (m MuteAction) Arg() string {
	switch m {
	case MuteOn:
		return "1"
	case MuteOff:
		return "0"
	default:
		return "toggle"
	}
}

func (m MuteAction) String() string {
	switch m {
	case MuteOn:
		return "on"
	case MuteOff:
		return "off"
	default:
		return "toggle"
	}
}

// MuteFromBool converts an explicit flag into an action.
func MuteFromBool(muted bool) MuteAction {
	if muted {
		return MuteOn
	}
	return MuteOff
}

// ParseMute accepts on/off, true/false, yes/no, 1/0 and toggle. An empty
// argument means toggle.
func ParseMute(input string) (MuteAction, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "toggle", "t":
		return MuteToggle, nil
	case "on", "true", "yes", "1", "mute", "muted":
		return MuteOn, nil
	case "off", "false", "no", "0", "unmute", "unmuted":
		return MuteOff, nil
	default:
		return MuteToggle, services.Wrap(services.ErrValidation, "mute", "parse", fmt.Sprintf("unrecognized mute value %q", input), nil)
	}
}
