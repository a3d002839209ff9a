package handler

import (
	"medread/internal/domain"
	"medread/internal/dto"
	"medread/internal/middleware"
	"medread/internal/service"
	"medread/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type DriveHandler struct {
	folderService service.DriveFolderService
	validator     *validation.Validator
}

func NewDriveHandler(folderService service.DriveFolderService, validator *validation.Validator) *DriveHandler {
	return &DriveHandler{folderService: folderService, validator: validator}
}

// CreateFolder registers a Drive folder.
// @Summary Register Drive folder
// @Tags drive
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDriveFolderRequest true "Folder"
// @Success 200 {object} dto.DriveFolderResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid request"
// @Router /drive/folders [post]
func (h *DriveHandler) CreateFolder(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateDriveFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}
	if errs := h.validator.ValidateCreateFolder(req.DriveFolderID, req.FolderName, req.Category); len(errs) > 0 {
		return errs
	}

	folder, err := h.folderService.AddFolder(c.UserContext(), user.ID, req.DriveFolderID, req.FolderName, req.Category)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToDriveFolderResponse(folder))
}

// ListFolders
// @Summary List Drive folders
// @Tags drive
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.DriveFolderResponse
// @Router /drive/folders [get]
func (h *DriveHandler) ListFolders(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	folders, err := h.folderService.ListFolders(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToDriveFolderResponses(folders))
}

// DeleteFolder removes the folder and every image imported from it.
// @Summary Delete Drive folder
// @Tags drive
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Folder ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse "Folder not found"
// @Router /drive/folders/{id} [delete]
func (h *DriveHandler) DeleteFolder(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	if err := h.folderService.DeleteFolder(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Folder and images deleted"})
}

// SyncFolder stamps synced_at. Nothing is fetched from Drive.
// @Summary Sync Drive folder
// @Tags drive
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Folder ID"
// @Success 200 {object} dto.SyncFolderResponse
// @Failure 404 {object} middleware.ErrorResponse "Folder not found"
// @Router /drive/sync/{id} [post]
func (h *DriveHandler) SyncFolder(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	result, err := h.folderService.SyncFolder(c.UserContext(), user.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SyncFolderResponse{
		Message:  "Folder synced",
		FolderID: result.FolderID,
		Note:     result.Note,
	})
}
