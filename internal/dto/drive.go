package dto

import (
	"time"

	"medread/internal/domain"
)

// CreateDriveFolderRequest is the body of POST /drive/folders.
// @Description Drive folder registration
type CreateDriveFolderRequest struct {
	DriveFolderID string `json:"drive_folder_id"`
	FolderName    string `json:"folder_name"`
	Category      string `json:"category"`
}

// DriveFolderResponse represents a registered Drive folder.
type DriveFolderResponse struct {
	FolderID      string     `json:"folder_id"`
	UserID        string     `json:"user_id"`
	DriveFolderID string     `json:"drive_folder_id"`
	FolderName    string     `json:"folder_name"`
	Category      string     `json:"category"`
	SyncedAt      *time.Time `json:"synced_at,omitempty"`
	ImageCount    int        `json:"image_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SyncFolderResponse is returned by the sync endpoint, which does not fetch anything.
type SyncFolderResponse struct {
	Message  string `json:"message"`
	FolderID string `json:"folder_id"`
	Note     string `json:"note"`
}

func ToDriveFolderResponse(f *domain.DriveFolder) DriveFolderResponse {
	return DriveFolderResponse{
		FolderID:      f.ID,
		UserID:        f.UserID,
		DriveFolderID: f.DriveFolderID,
		FolderName:    f.FolderName,
		Category:      f.Category,
		SyncedAt:      f.SyncedAt,
		ImageCount:    f.ImageCount,
		CreatedAt:     f.CreatedAt,
	}
}

func ToDriveFolderResponses(folders []*domain.DriveFolder) []DriveFolderResponse {
	out := make([]DriveFolderResponse, 0, len(folders))
	for _, f := range folders {
		out = append(out, ToDriveFolderResponse(f))
	}
	return out
}
