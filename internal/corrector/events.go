package corrector

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// EventKind labels a diagnostic event.
type EventKind string

const (
	EventRemoteAttempt EventKind = "remote_attempt"
	EventRemoteSuccess EventKind = "remote_success"
	EventFallback      EventKind = "fallback"
)

// Event is one diagnostic observation from the correction pipeline.
// Events sharing an ID belong to the same correction attempt.
type Event struct {
	ID      uuid.UUID
	Kind    EventKind
	Message string
	At      time.Time
}

// Reporter receives diagnostic events. Implementations must not influence
// correction output; the pipeline ignores anything a Reporter does.
type Reporter interface {
	Report(Event)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Report(Event) {}

// LogReporter writes events to a structured logger.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Report(e Event) {
	r.Logger.Info("correction event",
		"id", e.ID.String(),
		"kind", string(e.Kind),
		"message", e.Message,
	)
}

func newEvent(kind EventKind, msg string) Event {
	return Event{
		ID:      uuid.New(),
		Kind:    kind,
		Message: msg,
		At:      time.Now(),
	}
}

// followUp produces an event in the same attempt as prev.
func followUp(prev Event, kind EventKind, msg string) Event {
	return Event{
		ID:      prev.ID,
		Kind:    kind,
		Message: msg,
		At:      time.Now(),
	}
}
