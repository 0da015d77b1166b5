package editor

// InputMode selects what typing does at the cursor.
type InputMode uint8

const (
	// ModeInsert inserts typed text before the cursor.
	ModeInsert InputMode = iota
	// ModeOverwrite replaces the graphemes ahead of the cursor.
	ModeOverwrite
)

func (m InputMode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// Label is the short status-bar form of the mode.
func (m InputMode) Label() string {
	if m == ModeOverwrite {
		return "OVR"
	}
	return "INS"
}

// Toggle returns the other mode.
func (m InputMode) Toggle() InputMode {
	if m == ModeOverwrite {
		return ModeInsert
	}
	return ModeOverwrite
}
