package audit

import (
	"time"

	log "github.com/sirupsen/logrus"
)

type EventType string

const (
	SignUp       EventType = "SIGN_UP"
	SignIn       EventType = "SIGN_IN"
	EntryCreated EventType = "ENTRY_CREATED"
	EntryUpdated EventType = "ENTRY_UPDATED"
	EntryDeleted EventType = "ENTRY_DELETED"
)

type Event struct {
	Timestamp time.Time `json:"timestamp"`
	EventType EventType `json:"event_type"`
	UserID    string    `json:"user_id,omitempty"`
	EntityID  string    `json:"entity_id,omitempty"`
	Status    string    `json:"status"`
	Details   any       `json:"details,omitempty"`
}

// Logger records security relevant events. It has no storage of its own.
type Logger interface {
	LogSuccess(eventType EventType, userID, entityID string)
	LogFailure(eventType EventType, userID, entityID string, err error)
}

type AuditLogger struct {
	log *log.Logger
}

// NewAuditLogger writes events through l, or the standard logrus logger when
// l is nil.
func NewAuditLogger(l *log.Logger) *AuditLogger {
	if l == nil {
		l = log.StandardLogger()
	}
	return &AuditLogger{log: l}
}

func (a *AuditLogger) LogSuccess(eventType EventType, userID, entityID string) {
	a.write(Event{
		Timestamp: time.Now(),
		EventType: eventType,
		UserID:    userID,
		EntityID:  entityID,
		Status:    "SUCCESS",
	})
}

func (a *AuditLogger) LogFailure(eventType EventType, userID, entityID string, err error) {
	event := Event{
		Timestamp: time.Now(),
		EventType: eventType,
		UserID:    userID,
		EntityID:  entityID,
		Status:    "FAILED",
	}
	if err != nil {
		event.Details = map[string]string{"error": err.Error()}
	}
	a.write(event)
}

func (a *AuditLogger) write(event Event) {
	a.log.WithFields(log.Fields{
		"audit":      true,
		"event_type": event.EventType,
		"user_id":    event.UserID,
		"entity_id":  event.EntityID,
		"status":     event.Status,
		"details":    event.Details,
		"at":         event.Timestamp.UTC().Format(time.RFC3339Nano),
	}).Info("AUDIT")
}
