package llm

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey means no credential was found for a provider that
// requires one. It is returned at construction time, before any request
// is made.
var ErrMissingAPIKey = errors.New("missing API key")

// BackendError wraps any failure while opening or consuming a response
// stream. Both backends produce the same shape so callers can treat them
// uniformly.
type BackendError struct {
	Backend string // "openai", "ollama"
	Op      string // "chat", "models"
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
