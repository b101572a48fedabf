// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
	"os"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Issue operations
	OpIssueLoad   Op = "load issue"
	OpIssueReload Op = "reload issue"
	OpIssueWatch  Op = "watch issue"

	// Media operations
	OpMediaAttach Op = "attach media"
	OpMediaRemove Op = "remove media"
	OpMediaLoad   Op = "load page media"

	// State operations
	OpStateOpen Op = "open state database"
	OpStateLoad Op = "restore reading position"

	// Display
	OpFullscreen Op = "toggle fullscreen"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, Reason(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, Reason(err))
}

// Reason shortens well-known filesystem errors whose text repeats the path.
func Reason(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "no such file"
	case errors.Is(err, os.ErrPermission):
		return "permission denied"
	}
	return err.Error()
}
