package ports

import "errors"

// ErrCancelled is returned when the user leaves a required field empty or
// input ends. The session for the current package is abandoned.
var ErrCancelled = errors.New("cancelled")

// Field describes one question asked during a session.
type Field struct {
	Name     string
	Message  string
	Default  string
	Required bool
	Hints    []string
}

type PrompterPort interface {
	Ask(field Field) (string, error)
	Choose(message string, options []string) (int, error)
	Confirm(message string, defaultYes bool) (bool, error)
}
