package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"medread/internal/domain"
	"medread/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxAuthSessionRepository stores bearer tokens in USER_SESSIONS.
type sqlxAuthSessionRepository struct {
	db DBTX
}

func NewSQLXAuthSessionRepository(db *sqlx.DB) domain.AuthSessionRepository {
	return &sqlxAuthSessionRepository{db: db}
}

func (r *sqlxAuthSessionRepository) CreateSession(ctx context.Context, s *domain.AuthSession) error {
	query := `INSERT INTO user_sessions (session_id, user_id, session_token, expires_at, created_at) VALUES (:1, :2, :3, :4, :5)`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, s.ID, s.UserID, s.Token, s.ExpiresAt.UTC(), s.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create user session: %w", err)
	}
	return nil
}

// GetSessionByToken returns (nil, nil) for an unknown token. Expiry is left to the caller.
func (r *sqlxAuthSessionRepository) GetSessionByToken(ctx context.Context, token string) (*domain.AuthSession, error) {
	var m models.UserSession
	query := `SELECT session_id, user_id, session_token, expires_at, created_at FROM user_sessions WHERE session_token = :1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user session: %w", err)
	}
	return &domain.AuthSession{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.SessionToken,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (r *sqlxAuthSessionRepository) DeleteSessionsByUserID(ctx context.Context, userID string) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM user_sessions WHERE user_id = :1`, userID); err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}
	return nil
}

func (r *sqlxAuthSessionRepository) DeleteSessionByToken(ctx context.Context, token string) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM user_sessions WHERE session_token = :1`, token); err != nil {
		return fmt.Errorf("failed to delete user session: %w", err)
	}
	return nil
}
