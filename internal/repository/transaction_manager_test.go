package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestTransactionManager_Commit(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM user_sessions`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		_, ok := GetExecutor(ctx, db).(*sqlx.Tx)
		assert.True(t, ok, "executor inside the callback must be the transaction")
		return NewSQLXAuthSessionRepository(db).DeleteSessionsByUserID(ctx, "user_1")
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	tm := NewTransactionManagerAdapter(db)

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_NestedReusesOuter(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return tm.WithTransaction(ctx, func(inner context.Context) error {
			assert.Equal(t, ctx.Value(TransactionContextKey), inner.Value(TransactionContextKey))
			return nil
		})
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
