package llm

import (
	"context"
	"io"
)

type eventStream struct {
	ctx    context.Context
	cancel context.CancelFunc
	ch     <-chan Event
}

// newEventStream runs fn in a goroutine and exposes its events as a Stream.
// An error returned by fn is delivered as a final EventError before the
// stream ends.
func newEventStream(ctx context.Context, fn func(context.Context, chan<- Event) error) Stream {
	streamCtx, cancel := context.WithCancel(ctx)
	ch := make(chan Event, 16)
	go func() {
		defer close(ch)
		if err := fn(streamCtx, ch); err != nil {
			ch <- Event{Type: EventError, Err: err}
		}
	}()
	return &eventStream{ctx: streamCtx, cancel: cancel, ch: ch}
}

func (s *eventStream) Recv() (Event, error) {
	select {
	case event, ok := <-s.ch:
		if !ok {
			return Event{}, io.EOF
		}
		return event, nil
	case <-s.ctx.Done():
		// A buffered event may be ready at the same time as the
		// cancellation; deliver it rather than dropping it.
		select {
		case event, ok := <-s.ch:
			if ok {
				return event, nil
			}
		default:
		}
		return Event{}, s.ctx.Err()
	}
}

func (s *eventStream) Close() error {
	s.cancel()
	return nil
}
