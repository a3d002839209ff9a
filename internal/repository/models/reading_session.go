package models

import (
	"database/sql"
	"time"
)

// ReadingSession represents a row of the READING_SESSIONS table.
type ReadingSession struct {
	ID              string       `db:"SESSION_ID"`
	UserID          string       `db:"USER_ID"`
	Status          string       `db:"STATUS"`
	TotalImages     int          `db:"TOTAL_IMAGES"`
	ImagesReviewed  int          `db:"IMAGES_REVIEWED"`
	CorrectCount    int          `db:"CORRECT_COUNT"`
	TotalTimeMs     int64        `db:"TOTAL_TIME_MS"`
	PauseDurationMs int64        `db:"PAUSE_DURATION_MS"`
	StartedAt       time.Time    `db:"STARTED_AT"`
	CompletedAt     sql.NullTime `db:"COMPLETED_AT"`
	PausedAt        sql.NullTime `db:"PAUSED_AT"`
}

// SessionResponse represents a row of the SESSION_RESPONSES table.
// IS_CORRECT is stored as NUMBER(1).
type SessionResponse struct {
	ID             string    `db:"RESPONSE_ID"`
	SessionID      string    `db:"SESSION_ID"`
	ImageID        string    `db:"IMAGE_ID"`
	UserDiagnosis  string    `db:"USER_DIAGNOSIS"`
	ActualCategory string    `db:"ACTUAL_CATEGORY"`
	IsCorrect      int       `db:"IS_CORRECT"`
	TimeTakenMs    int64     `db:"TIME_TAKEN_MS"`
	CreatedAt      time.Time `db:"CREATED_AT"`
}
