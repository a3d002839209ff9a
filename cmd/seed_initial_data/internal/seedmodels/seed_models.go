package seedmodels

// SeedImage is one image file of the demo catalog. File is relative to the seed file.
type SeedImage struct {
	File        string `json:"file"`
	Category    string `json:"category"`
	ContentType string `json:"content_type"`
}

// SeedFolder is a Drive folder registration.
type SeedFolder struct {
	DriveFolderID string `json:"drive_folder_id"`
	FolderName    string `json:"folder_name"`
	Category      string `json:"category"`
}

// SeedUser is a demo account together with its catalog.
type SeedUser struct {
	Email   string       `json:"email"`
	Name    string       `json:"name"`
	Folders []SeedFolder `json:"folders"`
	Images  []SeedImage  `json:"images"`
}
