package activity

import (
	"context"
	"log/slog"
	"sync"
)

type Worker struct {
	eventCh chan Event
	sink    Sink
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewWorker(sink Sink, bufferSize int) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		eventCh: make(chan Event, bufferSize),
		sink:    sink,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.ctx.Done():
				slog.Info("draining activity events before shutdown", "remaining_events", len(w.eventCh))
				for len(w.eventCh) > 0 {
					event := <-w.eventCh
					if err := w.sink.Save(context.Background(), event); err != nil {
						slog.Error("failed to save activity event during shutdown", "error", err, "event_type", event.Type)
					}
				}
				return
			case event := <-w.eventCh:
				if err := w.sink.Save(w.ctx, event); err != nil {
					slog.Error("failed to save activity event", "error", err, "event_type", event.Type)
				}
			}
		}
	}()
}

// Record enqueues the event without blocking; when the buffer is full the
// event is dropped rather than slowing the request that produced it.
func (w *Worker) Record(event Event) {
	select {
	case w.eventCh <- event:
	default:
		slog.Warn("activity channel full, dropping event", "event_type", event.Type)
	}
}

func (w *Worker) Shutdown() {
	w.cancel()
	w.wg.Wait()
	close(w.eventCh)
}
