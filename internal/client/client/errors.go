package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)

// RemoteError is an error reported by the service in the response body.
type RemoteError struct {
	Status  int
	Code    int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error (%d): %s", e.Status, e.Message)
}

// Unwrap lets callers match auth and availability failures with errors.Is
// while still reaching the message with errors.As.
func (e *RemoteError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return nil
	}
}
