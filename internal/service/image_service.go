package service

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"medread/internal/cache"
	"medread/internal/domain"
	"medread/internal/logger"
	"medread/internal/util"

	"go.uber.org/zap"
)

const defaultImageContentType = "image/jpeg"

// UploadImageInput carries one uploaded file.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Category    string
	Data        []byte
}

// ImageService manages the caller's image catalog. Every operation is scoped to userID.
type ImageService interface {
	ListImages(ctx context.Context, userID, category string) ([]*domain.Image, error)
	UploadImage(ctx context.Context, userID string, in UploadImageInput) (*domain.Image, error)
	DeleteImage(ctx context.Context, userID, imageID string) error
	RandomImages(ctx context.Context, userID string, count int) ([]*domain.Image, error)
	Stats(ctx context.Context, userID string) (*domain.ImageStats, error)
	Categories(ctx context.Context, userID string) ([]string, error)
}

type imageServiceImpl struct {
	imageRepo domain.ImageRepository
	views     *imageViewCache
	now       func() time.Time
}

// NewImageService creates an ImageService. c may be nil to disable caching.
func NewImageService(imageRepo domain.ImageRepository, c domain.Cache, statsTTL time.Duration) ImageService {
	return &imageServiceImpl{
		imageRepo: imageRepo,
		views:     newImageViewCache(c, statsTTL),
		now:       time.Now,
	}
}

func (s *imageServiceImpl) ListImages(ctx context.Context, userID, category string) ([]*domain.Image, error) {
	images, err := s.imageRepo.ListImages(ctx, userID, util.NormalizeCategory(category))
	if err != nil {
		return nil, domain.NewInternalError("failed to list images", err)
	}
	return images, nil
}

// UploadImage stores the payload inline as a data URI. The category is lower-cased.
func (s *imageServiceImpl) UploadImage(ctx context.Context, userID string, in UploadImageInput) (*domain.Image, error) {
	contentType := strings.TrimSpace(in.ContentType)
	if contentType == "" {
		contentType = defaultImageContentType
	}

	img := &domain.Image{
		ID:        util.NewPrefixedID("img"),
		UserID:    userID,
		Filename:  in.Filename,
		Category:  util.NormalizeCategory(in.Category),
		Source:    domain.ImageSourceUpload,
		ImageData: "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(in.Data),
		CreatedAt: s.now().UTC(),
	}

	if err := s.imageRepo.CreateImage(ctx, img); err != nil {
		return nil, domain.NewInternalError("failed to store image", err)
	}
	s.views.invalidate(ctx, userID)

	logger.Get().Info("Image uploaded",
		zap.String("user_id", userID),
		zap.String("image_id", img.ID),
		zap.String("category", img.Category),
		zap.Int("bytes", len(in.Data)),
	)
	return img, nil
}

func (s *imageServiceImpl) DeleteImage(ctx context.Context, userID, imageID string) error {
	deleted, err := s.imageRepo.DeleteImage(ctx, userID, imageID)
	if err != nil {
		return domain.NewInternalError("failed to delete image", err)
	}
	if !deleted {
		return domain.NewImageNotFoundError(imageID)
	}
	s.views.invalidate(ctx, userID)
	return nil
}

// RandomImages returns up to count distinct images drawn by the store.
func (s *imageServiceImpl) RandomImages(ctx context.Context, userID string, count int) ([]*domain.Image, error) {
	images, err := s.imageRepo.SampleImages(ctx, userID, count)
	if err != nil {
		return nil, domain.NewInternalError("failed to sample images", err)
	}
	return images, nil
}

func (s *imageServiceImpl) Stats(ctx context.Context, userID string) (*domain.ImageStats, error) {
	var stats domain.ImageStats
	err := s.views.load(ctx, userID, cache.ImageStatsKey(userID), &stats, func(ctx context.Context) (interface{}, error) {
		counts, err := s.imageRepo.CountByCategory(ctx, userID)
		if err != nil {
			return nil, err
		}
		total := 0
		for _, c := range counts {
			total += c.Count
		}
		return &domain.ImageStats{Categories: counts, Total: total}, nil
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to compute image stats", err)
	}
	if stats.Categories == nil {
		stats.Categories = []domain.CategoryCount{}
	}
	return &stats, nil
}

func (s *imageServiceImpl) Categories(ctx context.Context, userID string) ([]string, error) {
	var categories []string
	err := s.views.load(ctx, userID, cache.CategoriesKey(userID), &categories, func(ctx context.Context) (interface{}, error) {
		return s.imageRepo.ListCategories(ctx, userID)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to list categories", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}
