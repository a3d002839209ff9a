package models

import (
	"database/sql"
	"time"
)

// Image represents a row of the IMAGES table. IMAGE_DATA is a CLOB holding a data URI.
type Image struct {
	ID            string         `db:"IMAGE_ID"`
	UserID        string         `db:"USER_ID"`
	Filename      string         `db:"FILENAME"`
	Category      string         `db:"CATEGORY"`
	Source        string         `db:"SOURCE"`
	DriveFileID   sql.NullString `db:"DRIVE_FILE_ID"`
	DriveFolderID sql.NullString `db:"DRIVE_FOLDER_ID"`
	ImageData     sql.NullString `db:"IMAGE_DATA"`
	CreatedAt     time.Time      `db:"CREATED_AT"`
}

// CategoryCount is a GROUP BY row over IMAGES.
type CategoryCount struct {
	Category string `db:"CATEGORY"`
	Count    int    `db:"IMAGE_COUNT"`
}

// DriveFolder represents a row of the DRIVE_FOLDERS table.
type DriveFolder struct {
	ID            string       `db:"FOLDER_ID"`
	UserID        string       `db:"USER_ID"`
	DriveFolderID string       `db:"DRIVE_FOLDER_ID"`
	FolderName    string       `db:"FOLDER_NAME"`
	Category      string       `db:"CATEGORY"`
	SyncedAt      sql.NullTime `db:"SYNCED_AT"`
	ImageCount    int          `db:"IMAGE_COUNT"`
	CreatedAt     time.Time    `db:"CREATED_AT"`
}
