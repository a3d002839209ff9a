package validation

import (
	"strings"
	"unicode/utf8"

	"medread/internal/domain"
)

const (
	maxCategoryLength  = 50
	maxDiagnosisLength = 100
	maxNameLength      = 200
	maxIDLength        = 128
)

// Validator provides request validation functionality
type Validator struct {
	maxImageCount int
}

// NewValidator creates a validator; counts above maxImageCount are rejected.
func NewValidator(maxImageCount int) *Validator {
	if maxImageCount <= 0 {
		maxImageCount = 500
	}
	return &Validator{maxImageCount: maxImageCount}
}

// ValidateLoginRequest checks the external session id.
func (v *Validator) ValidateLoginRequest(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	}
	return errors
}

// ValidateCount checks a requested image count (random sample size or session size).
func (v *Validator) ValidateCount(field string, count int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if count < 1 || count > v.maxImageCount {
		errors = append(errors, domain.NewOutOfRangeError(field, count, 1, v.maxImageCount))
	}
	return errors
}

// ValidateUpload checks the multipart upload fields.
func (v *Validator) ValidateUpload(hasFile bool, category string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if !hasFile {
		errors = append(errors, domain.NewMissingFieldError("file"))
	}
	errors = append(errors, validateCategory(category)...)
	return errors
}

// ValidateCreateFolder checks a Drive folder registration.
func (v *Validator) ValidateCreateFolder(driveFolderID, folderName, category string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = append(errors, validateRequiredText("drive_folder_id", driveFolderID, maxIDLength)...)
	errors = append(errors, validateRequiredText("folder_name", folderName, maxNameLength)...)
	errors = append(errors, validateCategory(category)...)
	return errors
}

// ValidateSubmitResponse checks one diagnosis submission. A nil timeTakenMs means the field was absent.
func (v *Validator) ValidateSubmitResponse(imageID, diagnosis string, timeTakenMs *int64) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = append(errors, validateRequiredText("image_id", imageID, maxIDLength)...)
	errors = append(errors, validateRequiredText("diagnosis", diagnosis, maxDiagnosisLength)...)
	if timeTakenMs == nil {
		errors = append(errors, domain.NewMissingFieldError("time_taken_ms"))
	} else if *timeTakenMs < 0 {
		errors = append(errors, domain.NewInvalidFormatError("time_taken_ms", *timeTakenMs))
	}
	return errors
}

// ValidateCategoryFilter allows an empty filter.
func (v *Validator) ValidateCategoryFilter(category string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if n := utf8.RuneCountInString(category); n > maxCategoryLength {
		errors = append(errors, domain.NewOutOfRangeError("category", n, 0, maxCategoryLength))
	}
	return errors
}

func validateCategory(category string) domain.ValidationErrors {
	return validateRequiredText("category", category, maxCategoryLength)
}

func validateRequiredText(field, value string, max int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(value) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if n := utf8.RuneCountInString(value); n > max {
		errors = append(errors, domain.NewOutOfRangeError(field, n, 1, max))
	}
	return errors
}
