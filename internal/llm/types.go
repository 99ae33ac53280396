package llm

import "context"

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat message. Immutable once constructed.
type Message struct {
	Role    Role
	Content string
}

// Request describes one streaming chat completion.
type Request struct {
	// Model overrides the provider's configured model when non-empty.
	Model    string
	Messages []Message
	// Debug prints the outgoing request to stderr.
	Debug bool
}

// EventType discriminates stream events.
type EventType int

const (
	// EventTextDelta carries an incremental text fragment. The fragment may
	// be empty; consumers must treat that as a no-op.
	EventTextDelta EventType = iota
	// EventDone signals normal end of the response.
	EventDone
	// EventError carries a terminal stream failure.
	EventError
)

// Event is one item in a response stream.
type Event struct {
	Type EventType
	Text string
	Err  error
}

// Stream yields events in the order the backend produced them.
// Recv returns io.EOF after the last event. Close releases the underlying
// transport; it is safe to call more than once.
type Stream interface {
	Recv() (Event, error)
	Close() error
}

// Provider is a backend capable of streaming a chat completion.
type Provider interface {
	Name() string
	Stream(ctx context.Context, req Request) (Stream, error)
}
