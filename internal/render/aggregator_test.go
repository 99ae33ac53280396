package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/averille/explain/internal/llm"
)

// scriptedStream plays back a fixed event sequence. When err is set,
// Recv returns it instead of io.EOF once the events are exhausted.
type scriptedStream struct {
	events []llm.Event
	err    error
	index  int
	closed bool
}

func (s *scriptedStream) Recv() (llm.Event, error) {
	if s.index >= len(s.events) {
		if s.err != nil {
			return llm.Event{}, s.err
		}
		return llm.Event{}, io.EOF
	}
	event := s.events[s.index]
	s.index++
	return event, nil
}

func (s *scriptedStream) Close() error {
	s.closed = true
	return nil
}

// recordTarget records every full-content update.
type recordTarget struct {
	updates []string
	closed  bool
}

func (t *recordTarget) Update(content string) {
	t.updates = append(t.updates, content)
}

func (t *recordTarget) Close() error {
	t.closed = true
	return nil
}

func fragments(texts ...string) []llm.Event {
	events := make([]llm.Event, 0, len(texts))
	for _, text := range texts {
		events = append(events, llm.Event{Type: llm.EventTextDelta, Text: text})
	}
	return events
}

func consume(t *testing.T, stream llm.Stream) (*recordTarget, string, string) {
	t.Helper()
	target := &recordTarget{}
	var diag bytes.Buffer
	agg := NewAggregator(target)
	agg.SetDiagnostics(&diag)
	final := agg.Consume(stream)
	return target, final, diag.String()
}

func TestAggregatorAccumulates(t *testing.T) {
	stream := &scriptedStream{events: append(fragments("Hello", ", ", "world"), llm.Event{Type: llm.EventDone})}
	target, final, diag := consume(t, stream)

	if final != "Hello, world" {
		t.Errorf("final = %q, want %q", final, "Hello, world")
	}
	if len(target.updates) != 3 {
		t.Fatalf("expected 3 updates, got %d: %v", len(target.updates), target.updates)
	}
	if target.updates[2] != "Hello, world" {
		t.Errorf("last update = %q", target.updates[2])
	}
	if diag != "" {
		t.Errorf("unexpected diagnostic: %q", diag)
	}
	if !target.closed {
		t.Error("target not closed")
	}
	if !stream.closed {
		t.Error("stream not closed")
	}
}

func TestAggregatorSanitizesAcrossFragments(t *testing.T) {
	// A fence marker split across fragment boundaries is still stripped
	// because the whole buffer is re-sanitized on every fragment.
	stream := &scriptedStream{events: fragments("Hel", "lo ``", "`wor", "ld")}
	target, final, _ := consume(t, stream)

	if final != "Hello world" {
		t.Errorf("final = %q, want %q", final, "Hello world")
	}
	if last := target.updates[len(target.updates)-1]; last != "Hello world" {
		t.Errorf("last displayed = %q, want %q", last, "Hello world")
	}
}

func TestAggregatorToleratesEmptyFragments(t *testing.T) {
	stream := &scriptedStream{events: fragments("", "a", "", "b")}
	target, final, _ := consume(t, stream)

	if final != "ab" {
		t.Errorf("final = %q, want %q", final, "ab")
	}
	// Every fragment refreshes the display, empty ones included.
	if len(target.updates) != 4 {
		t.Errorf("expected 4 updates, got %d", len(target.updates))
	}
}

func TestAggregatorEmptyStream(t *testing.T) {
	stream := &scriptedStream{}
	target, final, diag := consume(t, stream)

	if final != "" {
		t.Errorf("final = %q, want empty", final)
	}
	if len(target.updates) != 0 {
		t.Errorf("expected no updates, got %v", target.updates)
	}
	if diag != "" {
		t.Errorf("unexpected diagnostic: %q", diag)
	}
	if !target.closed {
		t.Error("target not closed")
	}
}

func TestAggregatorRecvError(t *testing.T) {
	stream := &scriptedStream{
		events: fragments("partial ", "answer"),
		err:    errors.New("connection reset"),
	}
	target, final, diag := consume(t, stream)

	if final != "partial answer" {
		t.Errorf("final = %q, want the partial text", final)
	}
	if last := target.updates[len(target.updates)-1]; last != "partial answer" {
		t.Errorf("last displayed = %q", last)
	}
	if !strings.Contains(diag, "an error occurred while streaming the answer") {
		t.Errorf("missing diagnostic, got %q", diag)
	}
	if !strings.Contains(diag, "connection reset") {
		t.Errorf("diagnostic does not name the cause: %q", diag)
	}
	if !target.closed {
		t.Error("target not closed on error path")
	}
}

func TestAggregatorErrorEvent(t *testing.T) {
	events := append(fragments("some text"), llm.Event{Type: llm.EventError, Err: errors.New("quota exceeded")})
	stream := &scriptedStream{events: events}
	target, final, diag := consume(t, stream)

	if final != "some text" {
		t.Errorf("final = %q", final)
	}
	if !strings.Contains(diag, "quota exceeded") {
		t.Errorf("diagnostic = %q", diag)
	}
	if !target.closed {
		t.Error("target not closed")
	}
}

func TestAggregatorWithMockProvider(t *testing.T) {
	provider := llm.NewMockProvider("mock").
		AddTurn(llm.MockTurn{Fragments: []string{"A ```markdown", " fence``` here"}})

	stream, err := provider.Stream(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "q"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	_, final, diag := consume(t, stream)
	if final != "A  fence here" {
		t.Errorf("final = %q, want %q", final, "A  fence here")
	}
	if diag != "" {
		t.Errorf("unexpected diagnostic: %q", diag)
	}
}

func TestAggregatorMockProviderError(t *testing.T) {
	provider := llm.NewMockProvider("mock").AddError(errors.New("boom"))
	stream, err := provider.Stream(context.Background(), llm.Request{})
	if err != nil {
		t.Fatal(err)
	}

	_, final, diag := consume(t, stream)
	if final != "" {
		t.Errorf("final = %q, want empty", final)
	}
	if !strings.Contains(diag, "boom") {
		t.Errorf("diagnostic = %q", diag)
	}
}
