package app

import (
	"errors"
	"io"

	"hkgbuild/internal/adapters"
	"hkgbuild/internal/ports"
	"hkgbuild/internal/shared"
)

func IsCancelled(err error) bool {
	return errors.Is(err, ports.ErrCancelled)
}

func IsNetworkError(err error) bool {
	return shared.IsNetworkError(err)
}

func IsEncodingError(err error) bool {
	return shared.IsEncodingError(err)
}

func IsLabelNotFound(err error) bool {
	return shared.IsLabelNotFound(err)
}

// IsSessionAbort reports failures that abandon the current package but
// leave the tool able to start on the next one.
func IsSessionAbort(err error) bool {
	return IsCancelled(err) || IsNetworkError(err) || IsEncodingError(err) || IsLabelNotFound(err)
}

// ErrorMessage returns the message a user should see for err.
func ErrorMessage(err error) string {
	return shared.ErrorMessage(err)
}

// NewPrompter returns the terminal prompter used by sessions.
func NewPrompter(in io.Reader, out io.Writer, nonInteractive bool) ports.PrompterPort {
	return adapters.NewPrompterAdapter(in, out, nonInteractive)
}
