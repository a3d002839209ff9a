package domain

import (
	"context"
	"time"
)

// SessionStatus is the lifecycle state of a reading session.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusPaused     SessionStatus = "paused"
	StatusCompleted  SessionStatus = "completed"
	StatusQuit       SessionStatus = "quit"
)

// Active reports whether responses may still be submitted.
func (s SessionStatus) Active() bool {
	return s == StatusInProgress || s == StatusPaused
}

// ReadingSession is one timed reading run. Counters only grow.
type ReadingSession struct {
	ID              string
	UserID          string
	Status          SessionStatus
	TotalImages     int
	ImagesReviewed  int
	CorrectCount    int
	TotalTimeMs     int64
	PauseDurationMs int64
	StartedAt       time.Time
	CompletedAt     *time.Time
	PausedAt        *time.Time
}

// Accuracy returns the correct percentage, 0 when nothing was reviewed.
func (s *ReadingSession) Accuracy() float64 {
	if s.ImagesReviewed == 0 {
		return 0
	}
	return float64(s.CorrectCount) / float64(s.ImagesReviewed) * 100
}

// AverageTimeMs returns the mean time per reviewed image, 0 when nothing was reviewed.
func (s *ReadingSession) AverageTimeMs() float64 {
	if s.ImagesReviewed == 0 {
		return 0
	}
	return float64(s.TotalTimeMs) / float64(s.ImagesReviewed)
}

// SessionResponse is an immutable answer recorded against a reading session.
type SessionResponse struct {
	ID             string
	SessionID      string
	ImageID        string
	UserDiagnosis  string
	ActualCategory string
	IsCorrect      bool
	TimeTakenMs    int64
	CreatedAt      time.Time
}

// ReadingSessionRepository persists reading sessions. Status changes and counters are
// applied as single-statement updates so concurrent requests never overwrite each other.
type ReadingSessionRepository interface {
	CreateSession(ctx context.Context, session *ReadingSession) error
	GetSession(ctx context.Context, userID, sessionID string) (*ReadingSession, error)
	ListSessions(ctx context.Context, userID string) ([]*ReadingSession, error)
	IncrementCounters(ctx context.Context, sessionID string, timeTakenMs int64, correct bool) error
	// MarkPaused moves in_progress -> paused and reports whether a row matched.
	MarkPaused(ctx context.Context, userID, sessionID string, at time.Time) (bool, error)
	// MarkResumed moves paused -> in_progress, adds pauseMs and reports whether a row matched.
	MarkResumed(ctx context.Context, userID, sessionID string, pauseMs int64) (bool, error)
	MarkCompleted(ctx context.Context, userID, sessionID string, at time.Time) error
	MarkQuit(ctx context.Context, userID, sessionID string, at time.Time) error
}

// SessionResponseRepository persists per-image answers.
type SessionResponseRepository interface {
	CreateResponse(ctx context.Context, response *SessionResponse) error
	ListResponses(ctx context.Context, sessionID string) ([]*SessionResponse, error)
}
