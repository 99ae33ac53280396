package llm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockTurn is one scripted response from the mock provider.
type MockTurn struct {
	Text      string        // text to emit, chunked for realistic streaming
	Fragments []string      // emitted verbatim instead of chunking Text
	Delay     time.Duration // optional delay before responding
	Error     error         // returned instead of a response
}

// MockProvider returns scripted responses and records requests for
// verification in tests.
type MockProvider struct {
	name      string
	turns     []MockTurn
	turnIndex int
	Requests  []Request
	mu        sync.Mutex
}

func NewMockProvider(name string) *MockProvider {
	return &MockProvider{name: name}
}

func (m *MockProvider) Name() string {
	return m.name
}

// AddTurn appends a scripted turn and returns the provider for chaining.
func (m *MockProvider) AddTurn(t MockTurn) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, t)
	return m
}

// AddTextResponse adds a simple text turn.
func (m *MockProvider) AddTextResponse(text string) *MockProvider {
	return m.AddTurn(MockTurn{Text: text})
}

// AddError adds a turn that fails with err.
func (m *MockProvider) AddError(err error) *MockProvider {
	return m.AddTurn(MockTurn{Error: err})
}

// Stream implements Provider.
func (m *MockProvider) Stream(ctx context.Context, req Request) (Stream, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	if m.turnIndex >= len(m.turns) {
		m.mu.Unlock()
		return nil, fmt.Errorf("mock provider: no more turns configured (turn %d of %d)", m.turnIndex, len(m.turns))
	}
	turn := m.turns[m.turnIndex]
	m.turnIndex++
	m.mu.Unlock()

	return newEventStream(ctx, func(ctx context.Context, events chan<- Event) error {
		if turn.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(turn.Delay):
			}
		}
		if turn.Error != nil {
			return turn.Error
		}

		fragments := turn.Fragments
		if fragments == nil {
			fragments = chunkText(turn.Text, 10)
		}
		for _, fragment := range fragments {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case events <- Event{Type: EventTextDelta, Text: fragment}:
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case events <- Event{Type: EventDone}:
		}
		return nil
	}), nil
}

// chunkText splits text into chunks of roughly chunkSize bytes, breaking at
// word boundaries when possible.
func chunkText(text string, chunkSize int) []string {
	if len(text) == 0 {
		return nil
	}
	var chunks []string
	for len(text) > chunkSize {
		breakPoint := chunkSize
		for i := chunkSize; i > chunkSize/2; i-- {
			if text[i] == ' ' {
				breakPoint = i + 1
				break
			}
		}
		chunks = append(chunks, text[:breakPoint])
		text = text[breakPoint:]
	}
	return append(chunks, text)
}
