package handler

import (
	"fmt"

	"medread/internal/domain"
	"medread/internal/dto"
	"medread/internal/middleware"
	"medread/internal/service"
	"medread/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	sessionService service.ReadingSessionService
	validator      *validation.Validator
	defaultCount   int
}

func NewSessionHandler(sessionService service.ReadingSessionService, validator *validation.Validator, defaultCount int) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		validator:      validator,
		defaultCount:   defaultCount,
	}
}

// StartSession begins a reading session over a random sample of the caller's images.
// @Summary Start reading session
// @Description image_count defaults to 20 and is clamped to the number of owned images.
// @Tags sessions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest false "Session parameters"
// @Success 200 {object} dto.StartSessionResponse
// @Failure 400 {object} middleware.ErrorResponse "No images or invalid count"
// @Router /sessions/start [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req dto.StartSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
		}
	}
	count := h.defaultCount
	if req.ImageCount != nil {
		count = *req.ImageCount
	}
	if errs := h.validator.ValidateCount("image_count", count); len(errs) > 0 {
		return errs
	}

	session, images, err := h.sessionService.Start(c.UserContext(), user.ID, count)
	if err != nil {
		return err
	}
	return c.JSON(dto.StartSessionResponse{
		Session: dto.ToReadingSessionResponse(session),
		Images:  dto.ToImageResponses(images),
	})
}

// SubmitResponse records one diagnosis.
// @Summary Submit diagnosis
// @Tags sessions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitResponseRequest true "Diagnosis"
// @Success 200 {object} dto.SubmitResponseResult
// @Failure 400 {object} middleware.ErrorResponse "Session inactive or invalid request"
// @Failure 404 {object} middleware.ErrorResponse "Session or image not found"
// @Router /sessions/{id}/response [post]
func (h *SessionHandler) SubmitResponse(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req dto.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}
	if errs := h.validator.ValidateSubmitResponse(req.ImageID, req.Diagnosis, req.TimeTakenMs); len(errs) > 0 {
		return errs
	}

	resp, err := h.sessionService.SubmitResponse(c.UserContext(), user.ID, c.Params("id"), service.SubmitResponseInput{
		ImageID:     req.ImageID,
		Diagnosis:   req.Diagnosis,
		TimeTakenMs: *req.TimeTakenMs,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.SubmitResponseResult{
		ResponseID:     resp.ID,
		IsCorrect:      resp.IsCorrect,
		ActualCategory: resp.ActualCategory,
	})
}

// PauseSession
// @Summary Pause session
// @Tags sessions
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ErrorResponse "Session not in progress"
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/pause [post]
func (h *SessionHandler) PauseSession(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	if err := h.sessionService.Pause(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Session paused"})
}

// ResumeSession
// @Summary Resume session
// @Tags sessions
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ErrorResponse "Session not paused"
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/resume [post]
func (h *SessionHandler) ResumeSession(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	if err := h.sessionService.Resume(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Session resumed"})
}

// CompleteSession
// @Summary Complete session
// @Tags sessions
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionDetailResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/complete [post]
func (h *SessionHandler) CompleteSession(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	session, responses, err := h.sessionService.Complete(c.UserContext(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SessionDetailResponse{
		Session:   dto.ToReadingSessionResponse(session),
		Responses: dto.ToSessionAnswerResponses(responses),
	})
}

// QuitSession abandons a session. Unknown ids succeed without effect.
// @Summary Quit session
// @Tags sessions
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.MessageResponse
// @Router /sessions/{id}/quit [post]
func (h *SessionHandler) QuitSession(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	if err := h.sessionService.Quit(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Session quit"})
}

// ListSessions
// @Summary List sessions
// @Tags sessions
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.ReadingSessionResponse
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	sessions, err := h.sessionService.List(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToReadingSessionResponses(sessions))
}

// GetSession
// @Summary Session detail
// @Tags sessions
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionDetailResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	session, responses, err := h.sessionService.Get(c.UserContext(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SessionDetailResponse{
		Session:   dto.ToReadingSessionResponse(session),
		Responses: dto.ToSessionAnswerResponses(responses),
	})
}

// ExportCSV downloads the session's answers plus a summary.
// @Summary Export session as CSV
// @Tags sessions
// @Security ApiKeyAuth
// @Produce text/csv
// @Param id path string true "Session ID"
// @Success 200 {string} string "CSV document"
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/csv [get]
func (h *SessionHandler) ExportCSV(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	sessionID := c.Params("id")
	data, err := h.sessionService.ExportCSV(c.UserContext(), user.ID, sessionID)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=session_%s.csv", sessionID))
	return c.Send(data)
}
