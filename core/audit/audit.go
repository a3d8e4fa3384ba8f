package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Event classifies a session lifecycle transition.
type Event string

const (
	EventCreated    Event = "created"
	EventNavigated  Event = "navigated"
	EventScreenshot Event = "screenshot"
	EventClosed     Event = "closed"
	EventShutdown   Event = "shutdown"
)

// SessionEvent is one persisted lifecycle record.
type SessionEvent struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID string    `gorm:"size:32;index"`
	Event     string    `gorm:"size:32"`
	Detail    string    `gorm:"size:512"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName sets the audit table name.
func (SessionEvent) TableName() string {
	return "webdriver_session_events"
}

// Recorder persists session lifecycle events. A nil Recorder or one without a
// database is a no-op, so the request path never depends on persistence.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder creates a recorder. db may be nil.
func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	return &Recorder{db: db, logger: logger}
}

// Migrate creates the audit table if the database is present.
func (r *Recorder) Migrate() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.AutoMigrate(&SessionEvent{})
}

// Record persists one event. Failures are logged and swallowed: auditing
// must never fail a protocol request.
func (r *Recorder) Record(ctx context.Context, sessionID string, event Event, detail string) {
	if r == nil || r.db == nil {
		return
	}

	row := SessionEvent{
		SessionID: sessionID,
		Event:     string(event),
		Detail:    detail,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Warn("Failed to record session event",
			zap.String("session_id", sessionID),
			zap.String("event", string(event)),
			zap.Error(err))
	}
}
