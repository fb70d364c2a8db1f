package sunder

import (
	"log"
	"os"
)

// ErrorMode determines how Split reacts to targets lying outside of the grid.
type ErrorMode uint8

const (
	// StrictErrorMode aborts the split with ErrCellOutOfRange.
	StrictErrorMode ErrorMode = iota
	// WarnErrorMode logs the target and skips it.
	WarnErrorMode
	// IgnoreErrorMode silently skips the target.
	IgnoreErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case StrictErrorMode:
		return "strict"
	case WarnErrorMode:
		return "warn"
	case IgnoreErrorMode:
		return "ignore"
	default:
		return "<unknown ErrorMode>"
	}
}

var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogger replaces the logger used in WarnErrorMode.
func SetLogger(l *log.Logger) { logger = l }
