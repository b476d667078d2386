package resource

import (
	"errors"
	"fmt"
)

// Kind names the write operation a MutationError came from.
type Kind string

const (
	KindCreate Kind = "create"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// ValidationError is returned before any network call when input is rejected.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" && e.Err != nil {
		reason = e.Err.Error()
	}
	if e.Field == "" {
		return "validation failed: " + reason
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// FetchError wraps a failed list call.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError wraps a failed create, update or delete call.
type MutationError struct {
	Kind     Kind
	Resource string
	ID       string
	Err      error
}

func (e *MutationError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Resource, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Kind, e.Resource, e.ID, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// RemoteError is a non-2xx answer from the external API.
// Message carries the optional "message" field of the error payload.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote returned status %d: %s", e.StatusCode, e.Message)
}

// UserMessage returns the API-provided message carried by err, if any.
func UserMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	return ""
}

// StatusCode returns the external API status carried by err, or 0.
func StatusCode(err error) int {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.StatusCode
	}
	return 0
}
