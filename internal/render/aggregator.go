// Package render turns a backend response stream into live output.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/averille/explain/internal/llm"
)

// Aggregator consumes one response stream, growing a single accumulated
// buffer and pushing the full sanitized text to its target after every
// fragment. It is single-use: one stream, one target, no retry.
type Aggregator struct {
	target Target
	diag   io.Writer
}

// NewAggregator binds a fresh aggregator to target. Diagnostics go to
// stderr unless redirected with SetDiagnostics.
func NewAggregator(target Target) *Aggregator {
	return &Aggregator{
		target: target,
		diag:   os.Stderr,
	}
}

// SetDiagnostics redirects the error side channel.
func (a *Aggregator) SetDiagnostics(w io.Writer) {
	a.diag = w
}

// Consume drains the stream in arrival order and returns the final
// sanitized text. Stream failures do not propagate: they are reported on
// the diagnostic side channel, whatever text was last rendered stays in
// place, and Consume returns normally. The stream and the target are
// closed on every exit path.
func (a *Aggregator) Consume(stream llm.Stream) string {
	defer stream.Close()
	defer a.target.Close()

	var accumulated string
	var sanitized string
	for {
		event, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			a.report(err)
			break
		}
		switch event.Type {
		case llm.EventError:
			a.report(event.Err)
			return sanitized
		case llm.EventDone:
			return sanitized
		case llm.EventTextDelta:
			// An empty fragment is a no-op append; the display is still
			// refreshed with the full text-so-far.
			accumulated += event.Text
			sanitized = Sanitize(accumulated)
			a.target.Update(sanitized)
		}
	}
	return sanitized
}

func (a *Aggregator) report(err error) {
	fmt.Fprintf(a.diag, "an error occurred while streaming the answer: %v\n", err)
}
