package cmd

import (
	"github.com/go-errors/errors"
)

// Configuration errors reported before an image is composed
var (
	ErrTooFewArguments      = errors.New("too few arguments")
	ErrMissingBootstrapPath = errors.New("expected bootstrap path")
	ErrMissingKernelPath    = errors.New("expected kernel path")
)

func isConfigError(err error) bool {
	return errors.Is(err, ErrTooFewArguments) ||
		errors.Is(err, ErrMissingBootstrapPath) ||
		errors.Is(err, ErrMissingKernelPath)
}

// errorStack returns the stack captured when err was wrapped, if any
func errorStack(err error) string {
	var e *errors.Error
	if errors.As(err, &e) {
		return e.ErrorStack()
	}
	return ""
}
