package cli

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/aalvaropc/kata/internal/domain"
)

// userMessage turns an error into a one-line message for the terminal.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindEmptyInput:
			return "Needs at least one value"
		case domain.KindDivisionByZero:
			return "Cannot divide by zero"
		case domain.KindNegativeArgument:
			return "Argument must not be negative"
		case domain.KindFileAccess:
			switch {
			case errors.Is(err, fs.ErrNotExist):
				return "File not found: " + oe.Path
			case errors.Is(err, fs.ErrPermission):
				return "Permission denied: " + oe.Path
			}
			return "Cannot access file: " + oe.Path
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found (tip: run `kata init`)"
			}
			return "Not found"
		case domain.KindInvalidConfig:
			msg := "Invalid config"
			if strings.TrimSpace(oe.Path) != "" {
				msg += " in " + oe.Path
			}
			if oe.Err != nil {
				msg += ": " + oe.Err.Error()
			}
			return msg
		}
	}

	return err.Error()
}
