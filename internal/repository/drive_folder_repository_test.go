package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"medread/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var folderRowColumns = []string{"FOLDER_ID", "USER_ID", "DRIVE_FOLDER_ID", "FOLDER_NAME", "CATEGORY", "SYNCED_AT", "IMAGE_COUNT", "CREATED_AT"}

func TestSQLXDriveFolderRepository_CreateAndList(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXDriveFolderRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO drive_folders (`+folderColumns+`) VALUES`)).
		WithArgs("folder_1", "user_1", "drive-abc", "Chest films", "Pneumonia", nil, 0, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateFolder(ctx, &domain.DriveFolder{
		ID: "folder_1", UserID: "user_1", DriveFolderID: "drive-abc",
		FolderName: "Chest films", Category: "Pneumonia", CreatedAt: now,
	})
	require.NoError(t, err)

	synced := now.Add(time.Minute)
	rows := sqlmock.NewRows(folderRowColumns).
		AddRow("folder_1", "user_1", "drive-abc", "Chest films", "Pneumonia", nil, 0, now).
		AddRow("folder_2", "user_1", "drive-def", "Wrists", "Fracture", synced, 0, now)
	mock.ExpectQuery(`FROM drive_folders WHERE user_id = :1 ORDER BY created_at`).
		WithArgs("user_1").
		WillReturnRows(rows)

	folders, err := repo.ListFolders(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Nil(t, folders[0].SyncedAt)
	require.NotNil(t, folders[1].SyncedAt)
	assert.True(t, synced.Equal(*folders[1].SyncedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXDriveFolderRepository_GetFolder_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXDriveFolderRepository(db)

	mock.ExpectQuery(`FROM drive_folders WHERE folder_id = :1 AND user_id = :2`).
		WithArgs("folder_x", "user_1").
		WillReturnError(sql.ErrNoRows)

	f, err := repo.GetFolder(context.Background(), "user_1", "folder_x")
	assert.NoError(t, err)
	assert.Nil(t, f)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXDriveFolderRepository_DeleteAndMarkSynced(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXDriveFolderRepository(db)
	ctx := context.Background()
	at := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE drive_folders SET synced_at = :1 WHERE folder_id = :2 AND user_id = :3`)).
		WithArgs(at, "folder_1", "user_1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM drive_folders WHERE folder_id = :1 AND user_id = :2`)).
		WithArgs("folder_1", "user_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSynced(ctx, "user_1", "folder_1", at))
	assert.NoError(t, repo.DeleteFolder(ctx, "user_1", "folder_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
