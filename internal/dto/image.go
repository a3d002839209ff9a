package dto

import (
	"time"

	"medread/internal/domain"
)

// ImageResponse represents an image record. image_data is a data URI for uploads.
// @Description Image record
type ImageResponse struct {
	ImageID       string    `json:"image_id"`
	UserID        string    `json:"user_id"`
	Filename      string    `json:"filename"`
	Category      string    `json:"category"`
	Source        string    `json:"source"`
	DriveFileID   string    `json:"drive_file_id,omitempty"`
	DriveFolderID string    `json:"drive_folder_id,omitempty"`
	ImageData     string    `json:"image_data,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CategoryCountResponse is one row of the stats aggregate.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ImageStatsResponse
// @Description Image counts per category
type ImageStatsResponse struct {
	Categories []CategoryCountResponse `json:"categories"`
	Total      int                     `json:"total"`
}

func ToImageResponse(img *domain.Image) ImageResponse {
	return ImageResponse{
		ImageID:       img.ID,
		UserID:        img.UserID,
		Filename:      img.Filename,
		Category:      img.Category,
		Source:        string(img.Source),
		DriveFileID:   img.DriveFileID,
		DriveFolderID: img.DriveFolderID,
		ImageData:     img.ImageData,
		CreatedAt:     img.CreatedAt,
	}
}

func ToImageResponses(images []*domain.Image) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, ToImageResponse(img))
	}
	return out
}

func ToImageStatsResponse(stats *domain.ImageStats) ImageStatsResponse {
	resp := ImageStatsResponse{
		Categories: make([]CategoryCountResponse, 0, len(stats.Categories)),
		Total:      stats.Total,
	}
	for _, c := range stats.Categories {
		resp.Categories = append(resp.Categories, CategoryCountResponse{Category: c.Category, Count: c.Count})
	}
	return resp
}
