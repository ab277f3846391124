package internal

import (
	"fmt"
	"strings"
)

// Mode is what a run does. Exactly one mode is selected per run.
type Mode int

const (
	ModePreview Mode = iota + 1
	ModeTestSend
	ModeBroadcast
)

// Modes in menu order.
var Modes = []Mode{ModePreview, ModeTestSend, ModeBroadcast}

func (m Mode) String() string {
	switch m {
	case ModePreview:
		return "preview"
	case ModeTestSend:
		return "test"
	case ModeBroadcast:
		return "broadcast"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a menu answer ("1".."3") or a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "preview":
		return ModePreview, nil
	case "2", "test":
		return ModeTestSend, nil
	case "3", "broadcast":
		return ModeBroadcast, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
	}
}
