// Package common holds small cross-cutting utilities shared by the solver
// packages: logging and nothing else. Domain types live next to the code
// that owns them (geom, catalogue, board, ...).
package common

import (
	"fmt"
	"os"
)

var (
	// VerboseEnabled controls whether verbose/debug output is shown.
	VerboseEnabled = false
	// LogFile is the path to mirror log output to (empty means stdout/stderr only).
	LogFile = ""
)

func writeToLogFile(message string) {
	if LogFile != "" {
		file, err := os.OpenFile(LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer file.Close()
			fmt.Fprintln(file, message)
		}
	}
}

// Info prints a message to stdout, regardless of verbose mode.
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// Verbose prints a message only when verbose mode is enabled.
func Verbose(format string, args ...interface{}) {
	if VerboseEnabled {
		message := fmt.Sprintf("[VERBOSE] "+format, args...)
		fmt.Println(message)
		writeToLogFile(message)
	}
}

// Debug is an alias for Verbose for semantic clarity at call sites.
func Debug(format string, args ...interface{}) {
	Verbose(format, args...)
}

// Warning prints a warning message, regardless of verbose mode.
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf("WARNING: "+format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// Error prints an error message to stderr, regardless of verbose mode.
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf("ERROR: "+format, args...)
	fmt.Fprintln(os.Stderr, message)
	writeToLogFile(message)
}
