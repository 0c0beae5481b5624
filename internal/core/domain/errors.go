package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks a missing package, archive member or installed bundle.
var ErrNotFound = errors.New("not found")

// ProcessError reports an external utility that ran but exited with an unexpected status.
type ProcessError struct {
	Command  string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s %s exited with status %d", e.Command, strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}
