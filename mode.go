package gridpaint

import (
	"fmt"
	"strings"
)

// PaintMode defines how many cells a paint action affects.
type PaintMode int

const (
	// Single paints only the targeted cell.
	Single PaintMode = iota
	// Cross paints the whole row and the whole column of the targeted cell.
	Cross
)

// Toggle switches between Single and Cross.
func (m PaintMode) Toggle() PaintMode {
	if m == Cross {
		return Single
	}
	return Cross
}

func (m PaintMode) String() string {
	switch m {
	case Single:
		return "single"
	case Cross:
		return "cross"
	}
	return fmt.Sprintf("PaintMode(%d)", int(m))
}

// ParseMode converts a mode name (case insensitive) to a PaintMode.
func ParseMode(s string) (PaintMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "cross":
		return Cross, nil
	}
	return Single, fmt.Errorf("unknown paint mode: %q", s)
}
