// Package activity records ledger events (member added, session created,
// debt settled) without blocking the request path. Events are buffered on a
// channel and drained into Postgres by a background worker.
package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID        string
	Type      string
	Detail    any
	CreatedAt time.Time
}

func NewEvent(eventType string, detail any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
}

type Sink interface {
	Save(ctx context.Context, event Event) error
}
