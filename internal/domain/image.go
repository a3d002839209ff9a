package domain

import (
	"context"
	"time"
)

// ImageSource tells where an image record came from.
type ImageSource string

const (
	ImageSourceUpload ImageSource = "upload"
	ImageSourceDrive  ImageSource = "drive"
)

// Image is a categorized training image owned by one user.
type Image struct {
	ID            string
	UserID        string
	Filename      string
	Category      string
	Source        ImageSource
	DriveFileID   string
	DriveFolderID string
	ImageData     string
	CreatedAt     time.Time
}

// CategoryCount is one row of the per-category image aggregation.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ImageStats summarizes a user's catalog.
type ImageStats struct {
	Categories []CategoryCount `json:"categories"`
	Total      int             `json:"total"`
}

// DriveFolder is a registered external folder bound to a category.
type DriveFolder struct {
	ID            string
	UserID        string
	DriveFolderID string
	FolderName    string
	Category      string
	SyncedAt      *time.Time
	ImageCount    int
	CreatedAt     time.Time
}

// ImageRepository defines the interface for image persistence. Every method is scoped to userID.
type ImageRepository interface {
	CreateImage(ctx context.Context, image *Image) error
	ListImages(ctx context.Context, userID, category string) ([]*Image, error)
	GetImage(ctx context.Context, userID, imageID string) (*Image, error)
	DeleteImage(ctx context.Context, userID, imageID string) (bool, error)
	DeleteImagesByDriveFolder(ctx context.Context, userID, driveFolderID string) (int64, error)
	CountImages(ctx context.Context, userID string) (int, error)
	// SampleImages draws up to n distinct images uniformly at random using the store's sampling.
	SampleImages(ctx context.Context, userID string, n int) ([]*Image, error)
	CountByCategory(ctx context.Context, userID string) ([]CategoryCount, error)
	ListCategories(ctx context.Context, userID string) ([]string, error)
}

// DriveFolderRepository defines the interface for drive folder persistence.
type DriveFolderRepository interface {
	CreateFolder(ctx context.Context, folder *DriveFolder) error
	ListFolders(ctx context.Context, userID string) ([]*DriveFolder, error)
	GetFolder(ctx context.Context, userID, folderID string) (*DriveFolder, error)
	DeleteFolder(ctx context.Context, userID, folderID string) error
	MarkSynced(ctx context.Context, userID, folderID string, at time.Time) error
}
