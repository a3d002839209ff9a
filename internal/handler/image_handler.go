package handler

import (
	"io"

	"medread/internal/domain"
	"medread/internal/dto"
	"medread/internal/middleware"
	"medread/internal/service"
	"medread/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	imageService service.ImageService
	validator    *validation.Validator
}

func NewImageHandler(imageService service.ImageService, validator *validation.Validator) *ImageHandler {
	return &ImageHandler{imageService: imageService, validator: validator}
}

// ListImages
// @Summary List images
// @Description Lists the caller's images, optionally filtered by category.
// @Tags images
// @Security ApiKeyAuth
// @Produce json
// @Param category query string false "Category filter (case-insensitive)"
// @Success 200 {array} dto.ImageResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /images [get]
func (h *ImageHandler) ListImages(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	category, _ := c.Locals(middleware.ValidatedCategoryKey).(string)

	images, err := h.imageService.ListImages(c.UserContext(), user.ID, category)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToImageResponses(images))
}

// UploadImage stores one image inline.
// @Summary Upload image
// @Tags images
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param category formData string true "Diagnostic category"
// @Success 200 {object} dto.ImageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Missing file or category"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /images/upload [post]
func (h *ImageHandler) UploadImage(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	fileHeader, fileErr := c.FormFile("file")
	category := c.FormValue("category")
	if errs := h.validator.ValidateUpload(fileErr == nil, category); len(errs) > 0 {
		return errs
	}

	f, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("failed to open uploaded file", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return domain.NewInternalError("failed to read uploaded file", err)
	}

	img, err := h.imageService.UploadImage(c.UserContext(), user.ID, service.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Category:    category,
		Data:        data,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.ToImageResponse(img))
}

// DeleteImage
// @Summary Delete image
// @Tags images
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse "Image not found"
// @Router /images/{id} [delete]
func (h *ImageHandler) DeleteImage(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	if err := h.imageService.DeleteImage(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Image deleted"})
}

// RandomImages samples images uniformly from the caller's catalog.
// @Summary Random images
// @Tags images
// @Security ApiKeyAuth
// @Produce json
// @Param count query int false "Sample size" default(20)
// @Success 200 {array} dto.ImageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid count"
// @Router /images/random [get]
func (h *ImageHandler) RandomImages(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	count, _ := c.Locals(middleware.ValidatedCountKey).(int)

	images, err := h.imageService.RandomImages(c.UserContext(), user.ID, count)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToImageResponses(images))
}

// Stats
// @Summary Image counts per category
// @Tags images
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ImageStatsResponse
// @Router /images/stats [get]
func (h *ImageHandler) Stats(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	stats, err := h.imageService.Stats(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToImageStatsResponse(stats))
}

// Categories lists the distinct categories among the caller's images.
// @Summary List categories
// @Tags categories
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (h *ImageHandler) Categories(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	categories, err := h.imageService.Categories(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(categories)
}
