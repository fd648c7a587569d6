package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind of every board, point and set failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError carries the message of a rejected argument or board state.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return ErrInvalidArgument.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidArgument.Error(), e.Msg)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func invalidf(format string, args ...any) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}
