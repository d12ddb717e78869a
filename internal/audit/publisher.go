package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Publisher forwards events to an external sink.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
}

const defaultBuffer = 256

// Worker drains a buffered channel of events into the store and, when one
// is configured, a publisher. Recording never blocks the request path; if
// the buffer is full the event is dropped and counted in the log.
type Worker struct {
	events    chan *Event
	store     Store
	publisher Publisher
	logger    *slog.Logger

	wg      sync.WaitGroup
	started bool
	mu      sync.Mutex
	dropped int
}

// NewWorker constructs an audit worker. publisher may be nil.
func NewWorker(store Store, publisher Publisher, logger *slog.Logger) *Worker {
	return &Worker{
		events:    make(chan *Event, defaultBuffer),
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// Start launches the drain loop. Safe to call once.
func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for event := range w.events {
			w.sink(ctx, event)
		}
	}()
}

// Record queues an event, filling in ID and timestamp when absent.
func (w *Worker) Record(event *Event) {
	if event.ID == "" {
		event.ID = NewEventID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	select {
	case w.events <- event:
	default:
		w.mu.Lock()
		w.dropped++
		dropped := w.dropped
		w.mu.Unlock()
		w.logger.Warn("audit buffer full, event dropped",
			"action", event.Action,
			"dropped_total", dropped,
		)
	}
}

// Close stops accepting events and waits for the queue to drain.
func (w *Worker) Close() {
	close(w.events)
	w.wg.Wait()
}

func (w *Worker) sink(ctx context.Context, event *Event) {
	if err := w.store.Append(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "audit store append failed",
			"event_id", event.ID,
			"error", err,
		)
	}
	if w.publisher == nil {
		return
	}
	if err := w.publisher.Publish(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "audit publish failed",
			"event_id", event.ID,
			"error", err,
		)
	}
}
