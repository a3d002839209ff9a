package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"medread/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var readingSessionRowColumns = []string{
	"SESSION_ID", "USER_ID", "STATUS", "TOTAL_IMAGES", "IMAGES_REVIEWED", "CORRECT_COUNT",
	"TOTAL_TIME_MS", "PAUSE_DURATION_MS", "STARTED_AT", "COMPLETED_AT", "PAUSED_AT",
}

func TestSQLXReadingSessionRepository_CreateSession(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXReadingSessionRepository(db)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reading_sessions (`+readingSessionColumns+`) VALUES`)).
		WithArgs("session_1", "user_1", "in_progress", 10, 0, 0, int64(0), int64(0), now, nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateSession(context.Background(), &domain.ReadingSession{
		ID: "session_1", UserID: "user_1", Status: domain.StatusInProgress, TotalImages: 10, StartedAt: now,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXReadingSessionRepository_GetSession(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXReadingSessionRepository(db)
	now := time.Now()
	pausedAt := now.Add(-time.Minute)

	rows := sqlmock.NewRows(readingSessionRowColumns).
		AddRow("session_1", "user_1", "paused", 10, 3, 2, 4500, 1000, now.Add(-time.Hour), nil, pausedAt)
	mock.ExpectQuery(`FROM reading_sessions WHERE session_id = :1 AND user_id = :2`).
		WithArgs("session_1", "user_1").
		WillReturnRows(rows)
	mock.ExpectQuery(`FROM reading_sessions WHERE session_id = :1 AND user_id = :2`).
		WithArgs("session_1", "user_2").
		WillReturnRows(sqlmock.NewRows(readingSessionRowColumns))

	s, err := repo.GetSession(context.Background(), "user_1", "session_1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, domain.StatusPaused, s.Status)
	assert.Equal(t, 3, s.ImagesReviewed)
	assert.Equal(t, int64(4500), s.TotalTimeMs)
	assert.Nil(t, s.CompletedAt)
	require.NotNil(t, s.PausedAt)
	assert.True(t, pausedAt.Equal(*s.PausedAt))

	s, err = repo.GetSession(context.Background(), "user_2", "session_1")
	assert.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXReadingSessionRepository_ListSessions(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXReadingSessionRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(readingSessionRowColumns).
		AddRow("session_2", "user_1", "in_progress", 5, 0, 0, 0, 0, now, nil, nil).
		AddRow("session_1", "user_1", "completed", 5, 5, 4, 9000, 0, now.Add(-time.Hour), now.Add(-30*time.Minute), nil)
	mock.ExpectQuery(`FROM reading_sessions WHERE user_id = :1 ORDER BY started_at DESC`).
		WithArgs("user_1").
		WillReturnRows(rows)

	sessions, err := repo.ListSessions(context.Background(), "user_1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "session_2", sessions[0].ID)
	assert.NotNil(t, sessions[1].CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXReadingSessionRepository_IncrementCounters(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXReadingSessionRepository(db)

	query := `SET images_reviewed = images_reviewed \+ 1,\s+total_time_ms = total_time_ms \+ :1,\s+correct_count = correct_count \+ :2\s+WHERE session_id = :3`
	mock.ExpectExec(query).WithArgs(int64(1500), 1, "session_1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs(int64(800), 0, "session_1").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.IncrementCounters(context.Background(), "session_1", 1500, true))
	assert.NoError(t, repo.IncrementCounters(context.Background(), "session_1", 800, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXReadingSessionRepository_MarkPaused(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXReadingSessionRepository(db)
	at := time.Now()

	query := `UPDATE reading_sessions SET status = :1, paused_at = :2\s+WHERE session_id = :3 AND user_id = :4 AND status = :5`
	mock.ExpectExec(query).
		WithArgs("paused", at, "session_1", "user_1", "in_progress").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).
		WithArgs("paused", at, "session_1", "user_1", "in_progress").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.MarkPaused(context.Background(), "user_1", "session_1", at)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkPaused(context.Background(), "user_1", "session_1", at)
	require.NoError(t, err)
	assert.False(t, ok, "second pause must not match an already paused row")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXReadingSessionRepository_MarkResumed(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXReadingSessionRepository(db)

	mock.ExpectExec(`SET status = :1, paused_at = NULL, pause_duration_ms = pause_duration_ms \+ :2\s+WHERE session_id = :3 AND user_id = :4 AND status = :5`).
		WithArgs("in_progress", int64(2500), "session_1", "user_1", "paused").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.MarkResumed(context.Background(), "user_1", "session_1", 2500)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXReadingSessionRepository_MarkCompletedAndQuit(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXReadingSessionRepository(db)
	at := time.Now()
	query := regexp.QuoteMeta(`UPDATE reading_sessions SET status = :1, completed_at = :2 WHERE session_id = :3 AND user_id = :4`)

	mock.ExpectExec(query).WithArgs("completed", at, "session_1", "user_1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs("quit", at, "session_missing", "user_1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(query).WithArgs("quit", at, "session_1", "user_1").WillReturnError(errors.New("ORA-00054"))

	assert.NoError(t, repo.MarkCompleted(context.Background(), "user_1", "session_1", at))
	assert.NoError(t, repo.MarkQuit(context.Background(), "user_1", "session_missing", at))
	assert.Error(t, repo.MarkQuit(context.Background(), "user_1", "session_1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXSessionResponseRepository(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXSessionResponseRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO session_responses (`+responseColumns+`) VALUES`)).
		WithArgs("resp_1", "session_1", "img_1", "pneumonia", "Pneumonia", 1, int64(1200), now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateResponse(ctx, &domain.SessionResponse{
		ID: "resp_1", SessionID: "session_1", ImageID: "img_1", UserDiagnosis: "pneumonia",
		ActualCategory: "Pneumonia", IsCorrect: true, TimeTakenMs: 1200, CreatedAt: now,
	})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"RESPONSE_ID", "SESSION_ID", "IMAGE_ID", "USER_DIAGNOSIS", "ACTUAL_CATEGORY", "IS_CORRECT", "TIME_TAKEN_MS", "CREATED_AT"}).
		AddRow("resp_1", "session_1", "img_1", "pneumonia", "Pneumonia", 1, 1200, now).
		AddRow("resp_2", "session_1", "img_2", "normal", "Fracture", 0, 900, now.Add(time.Second))
	mock.ExpectQuery(`FROM session_responses WHERE session_id = :1 ORDER BY created_at`).
		WithArgs("session_1").
		WillReturnRows(rows)

	responses, err := repo.ListResponses(ctx, "session_1")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.True(t, responses[0].IsCorrect)
	assert.False(t, responses[1].IsCorrect)
	assert.Equal(t, "Fracture", responses[1].ActualCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}
