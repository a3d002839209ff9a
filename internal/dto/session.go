package dto

import (
	"time"

	"medread/internal/domain"
)

// StartSessionRequest is the body of POST /sessions/start. A nil count means the configured default.
// @Description Reading session start parameters
type StartSessionRequest struct {
	ImageCount *int `json:"image_count"`
}

// SubmitResponseRequest is the body of POST /sessions/{id}/response.
// @Description One diagnosis for one image
type SubmitResponseRequest struct {
	ImageID     string `json:"image_id"`
	Diagnosis   string `json:"diagnosis"`
	TimeTakenMs *int64 `json:"time_taken_ms"`
}

// ReadingSessionResponse represents a reading session.
type ReadingSessionResponse struct {
	SessionID       string     `json:"session_id"`
	UserID          string     `json:"user_id"`
	Status          string     `json:"status"`
	TotalImages     int        `json:"total_images"`
	ImagesReviewed  int        `json:"images_reviewed"`
	CorrectCount    int        `json:"correct_count"`
	TotalTimeMs     int64      `json:"total_time_ms"`
	PauseDurationMs int64      `json:"pause_duration_ms"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	PausedAt        *time.Time `json:"paused_at,omitempty"`
}

// SessionAnswerResponse represents one recorded answer.
type SessionAnswerResponse struct {
	ResponseID     string    `json:"response_id"`
	SessionID      string    `json:"session_id"`
	ImageID        string    `json:"image_id"`
	UserDiagnosis  string    `json:"user_diagnosis"`
	ActualCategory string    `json:"actual_category"`
	IsCorrect      bool      `json:"is_correct"`
	TimeTakenMs    int64     `json:"time_taken_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// StartSessionResponse hands the sampled working set to the caller. The set is not stored.
// @Description New session and its images
type StartSessionResponse struct {
	Session ReadingSessionResponse `json:"session"`
	Images  []ImageResponse        `json:"images"`
}

// SubmitResponseResult is the verdict for one answer.
// @Description Verdict for a submitted diagnosis
type SubmitResponseResult struct {
	ResponseID     string `json:"response_id"`
	IsCorrect      bool   `json:"is_correct"`
	ActualCategory string `json:"actual_category"`
}

// SessionDetailResponse is a session with all of its answers.
type SessionDetailResponse struct {
	Session   ReadingSessionResponse  `json:"session"`
	Responses []SessionAnswerResponse `json:"responses"`
}

func ToReadingSessionResponse(s *domain.ReadingSession) ReadingSessionResponse {
	return ReadingSessionResponse{
		SessionID:       s.ID,
		UserID:          s.UserID,
		Status:          string(s.Status),
		TotalImages:     s.TotalImages,
		ImagesReviewed:  s.ImagesReviewed,
		CorrectCount:    s.CorrectCount,
		TotalTimeMs:     s.TotalTimeMs,
		PauseDurationMs: s.PauseDurationMs,
		StartedAt:       s.StartedAt,
		CompletedAt:     s.CompletedAt,
		PausedAt:        s.PausedAt,
	}
}

func ToReadingSessionResponses(sessions []*domain.ReadingSession) []ReadingSessionResponse {
	out := make([]ReadingSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, ToReadingSessionResponse(s))
	}
	return out
}

func ToSessionAnswerResponses(responses []*domain.SessionResponse) []SessionAnswerResponse {
	out := make([]SessionAnswerResponse, 0, len(responses))
	for _, r := range responses {
		out = append(out, SessionAnswerResponse{
			ResponseID:     r.ID,
			SessionID:      r.SessionID,
			ImageID:        r.ImageID,
			UserDiagnosis:  r.UserDiagnosis,
			ActualCategory: r.ActualCategory,
			IsCorrect:      r.IsCorrect,
			TimeTakenMs:    r.TimeTakenMs,
			CreatedAt:      r.CreatedAt,
		})
	}
	return out
}
