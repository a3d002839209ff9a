package repository

import (
	"context"
	"fmt"

	"medread/internal/domain"
	"medread/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const responseColumns = `response_id, session_id, image_id, user_diagnosis, actual_category, is_correct, time_taken_ms, created_at`

type sqlxSessionResponseRepository struct {
	db DBTX
}

func NewSQLXSessionResponseRepository(db *sqlx.DB) domain.SessionResponseRepository {
	return &sqlxSessionResponseRepository{db: db}
}

func (r *sqlxSessionResponseRepository) CreateResponse(ctx context.Context, resp *domain.SessionResponse) error {
	query := `INSERT INTO session_responses (` + responseColumns + `) VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		resp.ID,
		resp.SessionID,
		resp.ImageID,
		resp.UserDiagnosis,
		resp.ActualCategory,
		boolToNumber(resp.IsCorrect),
		resp.TimeTakenMs,
		resp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session response: %w", err)
	}
	return nil
}

// ListResponses returns a session's answers in submission order.
func (r *sqlxSessionResponseRepository) ListResponses(ctx context.Context, sessionID string) ([]*domain.SessionResponse, error) {
	var ms []models.SessionResponse
	query := `SELECT ` + responseColumns + ` FROM session_responses WHERE session_id = :1 ORDER BY created_at`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ms, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to list session responses: %w", err)
	}
	responses := make([]*domain.SessionResponse, 0, len(ms))
	for _, m := range ms {
		responses = append(responses, &domain.SessionResponse{
			ID:             m.ID,
			SessionID:      m.SessionID,
			ImageID:        m.ImageID,
			UserDiagnosis:  m.UserDiagnosis,
			ActualCategory: m.ActualCategory,
			IsCorrect:      m.IsCorrect == 1,
			TimeTakenMs:    m.TimeTakenMs,
			CreatedAt:      m.CreatedAt,
		})
	}
	return responses, nil
}
