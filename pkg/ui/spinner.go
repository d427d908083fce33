// Package ui holds the CLI's progress-indicator wrapper. Adapted from
// the teacher's pkg/ui/spinner.go: same briandowns/spinner wrapping, same
// verbose-mode gating, retargeted from level-generation progress messages
// to solve-progress ones (combination/attempt counts).
package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/weftloop/conduit-solver/pkg/common"
)

// Spinner wraps github.com/briandowns/spinner for the solve command's
// progress display.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner with msg as its initial suffix.
func NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start starts the spinner unless verbose logging is enabled (the two
// would otherwise interleave and garble the terminal).
func (s *Spinner) Start() {
	if !common.VerboseEnabled {
		s.s.Start()
	}
}

// Stop stops the spinner.
func (s *Spinner) Stop() {
	s.s.Stop()
}

// UpdateMessage replaces the spinner's suffix, e.g. with the running
// combination index and attempt count.
func (s *Spinner) UpdateMessage(format string, args ...interface{}) {
	s.s.Suffix = " " + fmt.Sprintf(format, args...)
}

// LogInfo stops the spinner, prints an info message, and restarts it so
// the message doesn't tear against the spinner's own redraws.
func (s *Spinner) LogInfo(format string, args ...interface{}) {
	wasRunning := s.s.Active()
	if wasRunning {
		s.s.Stop()
	}
	common.Info(format, args...)
	if wasRunning && !common.VerboseEnabled {
		s.s.Start()
	}
}

// LogWarning stops the spinner, prints a warning message, and restarts it.
func (s *Spinner) LogWarning(format string, args ...interface{}) {
	wasRunning := s.s.Active()
	if wasRunning {
		s.s.Stop()
	}
	common.Warning(format, args...)
	if wasRunning && !common.VerboseEnabled {
		s.s.Start()
	}
}
