package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"medread/internal/domain"
	"medread/internal/repository/models"
	"medread/internal/util"

	"github.com/jmoiron/sqlx"
)

const readingSessionColumns = `session_id, user_id, status, total_images, images_reviewed, correct_count, total_time_ms, pause_duration_ms, started_at, completed_at, paused_at`

// sqlxReadingSessionRepository implements domain.ReadingSessionRepository.
// Counters and status transitions are single UPDATE statements; nothing is read back and rewritten.
type sqlxReadingSessionRepository struct {
	db DBTX
}

func NewSQLXReadingSessionRepository(db *sqlx.DB) domain.ReadingSessionRepository {
	return &sqlxReadingSessionRepository{db: db}
}

func toDomainReadingSession(m *models.ReadingSession) *domain.ReadingSession {
	return &domain.ReadingSession{
		ID:              m.ID,
		UserID:          m.UserID,
		Status:          domain.SessionStatus(m.Status),
		TotalImages:     m.TotalImages,
		ImagesReviewed:  m.ImagesReviewed,
		CorrectCount:    m.CorrectCount,
		TotalTimeMs:     m.TotalTimeMs,
		PauseDurationMs: m.PauseDurationMs,
		StartedAt:       m.StartedAt,
		CompletedAt:     util.NullTimeToPtr(m.CompletedAt),
		PausedAt:        util.NullTimeToPtr(m.PausedAt),
	}
}

func (r *sqlxReadingSessionRepository) CreateSession(ctx context.Context, s *domain.ReadingSession) error {
	query := `INSERT INTO reading_sessions (` + readingSessionColumns + `) VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11)`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		s.ID,
		s.UserID,
		string(s.Status),
		s.TotalImages,
		s.ImagesReviewed,
		s.CorrectCount,
		s.TotalTimeMs,
		s.PauseDurationMs,
		s.StartedAt,
		util.TimePtrToNullTime(s.CompletedAt),
		util.TimePtrToNullTime(s.PausedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create reading session: %w", err)
	}
	return nil
}

// GetSession returns (nil, nil) when the session is missing or owned by someone else.
func (r *sqlxReadingSessionRepository) GetSession(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, error) {
	var m models.ReadingSession
	query := `SELECT ` + readingSessionColumns + ` FROM reading_sessions WHERE session_id = :1 AND user_id = :2`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, sessionID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reading session: %w", err)
	}
	return toDomainReadingSession(&m), nil
}

func (r *sqlxReadingSessionRepository) ListSessions(ctx context.Context, userID string) ([]*domain.ReadingSession, error) {
	var ms []models.ReadingSession
	query := `SELECT ` + readingSessionColumns + ` FROM reading_sessions WHERE user_id = :1 ORDER BY started_at DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ms, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list reading sessions: %w", err)
	}
	sessions := make([]*domain.ReadingSession, 0, len(ms))
	for i := range ms {
		sessions = append(sessions, toDomainReadingSession(&ms[i]))
	}
	return sessions, nil
}

func (r *sqlxReadingSessionRepository) IncrementCounters(ctx context.Context, sessionID string, timeTakenMs int64, correct bool) error {
	query := `UPDATE reading_sessions
		SET images_reviewed = images_reviewed + 1,
			total_time_ms = total_time_ms + :1,
			correct_count = correct_count + :2
		WHERE session_id = :3`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, timeTakenMs, boolToNumber(correct), sessionID); err != nil {
		return fmt.Errorf("failed to increment session counters: %w", err)
	}
	return nil
}

func (r *sqlxReadingSessionRepository) MarkPaused(ctx context.Context, userID, sessionID string, at time.Time) (bool, error) {
	query := `UPDATE reading_sessions SET status = :1, paused_at = :2
		WHERE session_id = :3 AND user_id = :4 AND status = :5`
	return r.execConditional(ctx, "pause", query,
		string(domain.StatusPaused), at, sessionID, userID, string(domain.StatusInProgress))
}

func (r *sqlxReadingSessionRepository) MarkResumed(ctx context.Context, userID, sessionID string, pauseMs int64) (bool, error) {
	query := `UPDATE reading_sessions SET status = :1, paused_at = NULL, pause_duration_ms = pause_duration_ms + :2
		WHERE session_id = :3 AND user_id = :4 AND status = :5`
	return r.execConditional(ctx, "resume", query,
		string(domain.StatusInProgress), pauseMs, sessionID, userID, string(domain.StatusPaused))
}

func (r *sqlxReadingSessionRepository) MarkCompleted(ctx context.Context, userID, sessionID string, at time.Time) error {
	query := `UPDATE reading_sessions SET status = :1, completed_at = :2 WHERE session_id = :3 AND user_id = :4`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, string(domain.StatusCompleted), at, sessionID, userID); err != nil {
		return fmt.Errorf("failed to complete reading session: %w", err)
	}
	return nil
}

// MarkQuit matches zero rows without error when the session does not exist.
func (r *sqlxReadingSessionRepository) MarkQuit(ctx context.Context, userID, sessionID string, at time.Time) error {
	query := `UPDATE reading_sessions SET status = :1, completed_at = :2 WHERE session_id = :3 AND user_id = :4`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, string(domain.StatusQuit), at, sessionID, userID); err != nil {
		return fmt.Errorf("failed to quit reading session: %w", err)
	}
	return nil
}

func (r *sqlxReadingSessionRepository) execConditional(ctx context.Context, op, query string, args ...interface{}) (bool, error) {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to %s reading session: %w", op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}
