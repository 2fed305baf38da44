package spec

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInHost is returned when an operation that requires the add-in
	// host runtime is invoked outside of one.
	ErrNotInHost = errors.New("not running inside an add-in host")

	// ErrInvalidArgument covers malformed inputs: non-https URLs,
	// unsendable message values, bad screen dimensions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDialog covers host-reported dialog failures, transport failures,
	// and payload decode failures surfaced through a Result.
	ErrDialog = errors.New("dialog failure")

	// ErrSessionNotFound is returned when a session ID does not resolve
	// to a live session in the runtime.
	ErrSessionNotFound = errors.New("session not found")
)

// HostError is the error descriptor delivered by the host for a non-message
// dialog event (user dismissal, navigation failure, etc.). It unwraps to
// ErrDialog so callers can match the kind without inspecting the shape.
type HostError struct {
	Message string `json:"message,omitempty"`
	Code    int    `json:"error,omitempty"`
}

func (e *HostError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("host dialog error %d", e.Code)
	}
	return fmt.Sprintf("host dialog error %d: %s", e.Code, e.Message)
}

func (e *HostError) Unwrap() error { return ErrDialog }
