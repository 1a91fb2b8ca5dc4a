package image

import (
	"fmt"

	"github.com/go-errors/errors"
)

// Payload names one of the two blobs carried by an image
type Payload string

// Payloads carried by an image
const (
	Bootstrap Payload = "bootstrap"
	Kernel    Payload = "kernel"
)

// ParsePayload converts a payload name given on the command line
func ParsePayload(name string) (Payload, error) {
	switch Payload(name) {
	case Bootstrap, Kernel:
		return Payload(name), nil
	}
	return "", errors.Errorf("unknown payload %q, expected %q or %q", name, Bootstrap, Kernel)
}

// Stage is a step of the image write sequence
type Stage string

// Write stages in the order they happen
const (
	StageHeader    Stage = "header"
	StageBootstrap Stage = "bootstrap"
	StageKernel    Stage = "kernel"
	StagePadding   Stage = "padding"
)

func copyStage(p Payload) Stage {
	if p == Kernel {
		return StageKernel
	}
	return StageBootstrap
}

// ErrorKind classifies composer failures
type ErrorKind int

// Composer failure kinds
const (
	SourceUnavailable ErrorKind = iota + 1
	SinkUnavailable
	WriteFailure
	TooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case SourceUnavailable:
		return "source unavailable"
	case SinkUnavailable:
		return "sink unavailable"
	case WriteFailure:
		return "write failure"
	case TooLarge:
		return "image too large"
	}
	return "unknown"
}

// Error reports which resource or stage made a composition fail
type Error struct {
	Kind    ErrorKind
	Payload Payload
	Stage   Stage
	Path    string
	Err     error
}

func (e *Error) Error() string {
	var what string
	switch e.Kind {
	case SourceUnavailable:
		what = fmt.Sprintf("%s: %s", e.Kind, e.Payload)
	case WriteFailure:
		what = fmt.Sprintf("%s: %s", e.Kind, e.Stage)
	default:
		what = e.Kind.String()
	}
	if e.Path != "" {
		what = fmt.Sprintf("%s (%s)", what, e.Path)
	}
	if e.Err != nil {
		what = fmt.Sprintf("%s: %v", what, e.Err)
	}
	return what
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind so callers can test against the
// sentinels below
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind &&
		(t.Payload == "" || t.Payload == e.Payload) &&
		(t.Stage == "" || t.Stage == e.Stage)
}

// Sentinels for errors.Is
var (
	ErrSourceUnavailable = &Error{Kind: SourceUnavailable}
	ErrSinkUnavailable   = &Error{Kind: SinkUnavailable}
	ErrWriteFailure      = &Error{Kind: WriteFailure}
	ErrTooLarge          = &Error{Kind: TooLarge}
)

func sourceError(p Payload, path string, err error) *Error {
	return &Error{Kind: SourceUnavailable, Payload: p, Path: path, Err: errors.Wrap(err, 2)}
}

func sinkError(path string, err error) *Error {
	return &Error{Kind: SinkUnavailable, Path: path, Err: errors.Wrap(err, 2)}
}

func writeError(s Stage, err error) *Error {
	return &Error{Kind: WriteFailure, Stage: s, Err: errors.Wrap(err, 2)}
}
