package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemorySink collects events in memory. Default sink for tests and local
// runs.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Emit(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything emitted so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event{}, s.events...)
}

// Publisher stamps events and hands them to a buffered inbox drained by a
// Worker. Emit never blocks the calling operation beyond the channel send
// and never returns a delivery error; observers are advisory.
type Publisher struct {
	logger *slog.Logger
	inbox  chan Event
}

func NewPublisher(logger *slog.Logger, buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 64
	}
	return &Publisher{
		logger: logger,
		inbox:  make(chan Event, buffer),
	}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	case <-ctx.Done():
		p.logger.WarnContext(ctx, "event dropped, context done",
			"type", string(event.Type),
			"id", event.ID,
		)
	}
	return nil
}

// Inbox exposes the receive side for the Worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}

// Worker drains a publisher inbox into a sink. Sink failures are logged and
// the loop keeps going; delivery is at-least-once toward the sink's own
// retry machinery, never a reason to fail ledger operations.
type Worker struct {
	logger *slog.Logger
	sink   Emitter
	inbox  <-chan Event
}

func NewWorker(logger *slog.Logger, sink Emitter, inbox <-chan Event) *Worker {
	return &Worker{logger: logger, sink: sink, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Emit(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "event delivery failed",
					"type", string(event.Type),
					"id", event.ID,
					"error", err,
				)
			}
		}
	}
}
