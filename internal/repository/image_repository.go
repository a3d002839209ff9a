package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"medread/internal/domain"
	"medread/internal/repository/models"
	"medread/internal/util"

	"github.com/jmoiron/sqlx"
)

const imageColumns = `image_id, user_id, filename, category, source, drive_file_id, drive_folder_id, image_data, created_at`

// sqlxImageRepository implements domain.ImageRepository. Every statement filters on user_id.
type sqlxImageRepository struct {
	db DBTX
}

func NewSQLXImageRepository(db *sqlx.DB) domain.ImageRepository {
	return &sqlxImageRepository{db: db}
}

func toDomainImage(m *models.Image) *domain.Image {
	if m == nil {
		return nil
	}
	return &domain.Image{
		ID:            m.ID,
		UserID:        m.UserID,
		Filename:      m.Filename,
		Category:      m.Category,
		Source:        domain.ImageSource(m.Source),
		DriveFileID:   m.DriveFileID.String,
		DriveFolderID: m.DriveFolderID.String,
		ImageData:     m.ImageData.String,
		CreatedAt:     m.CreatedAt,
	}
}

func toDomainImages(ms []models.Image) []*domain.Image {
	images := make([]*domain.Image, 0, len(ms))
	for i := range ms {
		images = append(images, toDomainImage(&ms[i]))
	}
	return images
}

func (r *sqlxImageRepository) CreateImage(ctx context.Context, img *domain.Image) error {
	query := `INSERT INTO images (` + imageColumns + `) VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9)`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		img.ID,
		img.UserID,
		img.Filename,
		img.Category,
		string(img.Source),
		util.StringToNullString(img.DriveFileID),
		util.StringToNullString(img.DriveFolderID),
		util.StringToNullString(img.ImageData),
		img.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

// ListImages returns the user's images, optionally restricted to an exact category.
func (r *sqlxImageRepository) ListImages(ctx context.Context, userID, category string) ([]*domain.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE user_id = :1`
	args := []interface{}{userID}
	if category != "" {
		query += ` AND category = :2`
		args = append(args, category)
	}
	query += ` ORDER BY created_at`

	var ms []models.Image
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return toDomainImages(ms), nil
}

// GetImage returns (nil, nil) when the image is missing or owned by someone else.
func (r *sqlxImageRepository) GetImage(ctx context.Context, userID, imageID string) (*domain.Image, error) {
	var m models.Image
	query := `SELECT ` + imageColumns + ` FROM images WHERE image_id = :1 AND user_id = :2`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, imageID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return toDomainImage(&m), nil
}

// DeleteImage reports whether a row owned by userID was removed.
func (r *sqlxImageRepository) DeleteImage(ctx context.Context, userID, imageID string) (bool, error) {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM images WHERE image_id = :1 AND user_id = :2`, imageID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete image: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *sqlxImageRepository) DeleteImagesByDriveFolder(ctx context.Context, userID, driveFolderID string) (int64, error) {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM images WHERE user_id = :1 AND drive_folder_id = :2`, userID, driveFolderID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete folder images: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func (r *sqlxImageRepository) CountImages(ctx context.Context, userID string) (int, error) {
	var count int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM images WHERE user_id = :1`, userID); err != nil {
		return 0, fmt.Errorf("failed to count images: %w", err)
	}
	return count, nil
}

// SampleImages lets Oracle shuffle the user's rows and keeps the first n.
func (r *sqlxImageRepository) SampleImages(ctx context.Context, userID string, n int) ([]*domain.Image, error) {
	if n <= 0 {
		return []*domain.Image{}, nil
	}
	query := `SELECT ` + imageColumns + ` FROM images WHERE user_id = :1 ORDER BY DBMS_RANDOM.VALUE FETCH FIRST :2 ROWS ONLY`
	var ms []models.Image
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &ms, query, userID, n); err != nil {
		return nil, fmt.Errorf("failed to sample images: %w", err)
	}
	return toDomainImages(ms), nil
}

func (r *sqlxImageRepository) CountByCategory(ctx context.Context, userID string) ([]domain.CategoryCount, error) {
	query := `SELECT category, COUNT(*) AS image_count FROM images WHERE user_id = :1 GROUP BY category ORDER BY category`
	var rows []models.CategoryCount
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to aggregate images by category: %w", err)
	}
	counts := make([]domain.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.CategoryCount{Category: row.Category, Count: row.Count})
	}
	return counts, nil
}

func (r *sqlxImageRepository) ListCategories(ctx context.Context, userID string) ([]string, error) {
	categories := []string{}
	query := `SELECT DISTINCT category FROM images WHERE user_id = :1 ORDER BY category`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &categories, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
