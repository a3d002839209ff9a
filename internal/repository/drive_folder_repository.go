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

const folderColumns = `folder_id, user_id, drive_folder_id, folder_name, category, synced_at, image_count, created_at`

type sqlxDriveFolderRepository struct {
	db DBTX
}

func NewSQLXDriveFolderRepository(db *sqlx.DB) domain.DriveFolderRepository {
	return &sqlxDriveFolderRepository{db: db}
}

func toDomainFolder(m *models.DriveFolder) *domain.DriveFolder {
	return &domain.DriveFolder{
		ID:            m.ID,
		UserID:        m.UserID,
		DriveFolderID: m.DriveFolderID,
		FolderName:    m.FolderName,
		Category:      m.Category,
		SyncedAt:      util.NullTimeToPtr(m.SyncedAt),
		ImageCount:    m.ImageCount,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *sqlxDriveFolderRepository) CreateFolder(ctx context.Context, f *domain.DriveFolder) error {
	query := `INSERT INTO drive_folders (` + folderColumns + `) VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		f.ID, f.UserID, f.DriveFolderID, f.FolderName, f.Category,
		util.TimePtrToNullTime(f.SyncedAt), f.ImageCount, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create drive folder: %w", err)
	}
	return nil
}

func (r *sqlxDriveFolderRepository) ListFolders(ctx context.Context, userID string) ([]*domain.DriveFolder, error) {
	var ms []models.DriveFolder
	query := `SELECT ` + folderColumns + ` FROM drive_folders WHERE user_id = :1 ORDER BY created_at`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ms, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list drive folders: %w", err)
	}
	folders := make([]*domain.DriveFolder, 0, len(ms))
	for i := range ms {
		folders = append(folders, toDomainFolder(&ms[i]))
	}
	return folders, nil
}

// GetFolder returns (nil, nil) when the folder is missing or owned by someone else.
func (r *sqlxDriveFolderRepository) GetFolder(ctx context.Context, userID, folderID string) (*domain.DriveFolder, error) {
	var m models.DriveFolder
	query := `SELECT ` + folderColumns + ` FROM drive_folders WHERE folder_id = :1 AND user_id = :2`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, folderID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get drive folder: %w", err)
	}
	return toDomainFolder(&m), nil
}

func (r *sqlxDriveFolderRepository) DeleteFolder(ctx context.Context, userID, folderID string) error {
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM drive_folders WHERE folder_id = :1 AND user_id = :2`, folderID, userID); err != nil {
		return fmt.Errorf("failed to delete drive folder: %w", err)
	}
	return nil
}

func (r *sqlxDriveFolderRepository) MarkSynced(ctx context.Context, userID, folderID string, at time.Time) error {
	query := `UPDATE drive_folders SET synced_at = :1 WHERE folder_id = :2 AND user_id = :3`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, at, folderID, userID); err != nil {
		return fmt.Errorf("failed to mark drive folder synced: %w", err)
	}
	return nil
}
