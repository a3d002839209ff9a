package service

import (
	"context"
	"time"

	"medread/internal/domain"
	"medread/internal/logger"
	"medread/internal/util"

	"go.uber.org/zap"
)

// DriveSyncNote is returned by SyncFolder. No images are fetched from Drive.
const DriveSyncNote = "Upload images manually or connect Google Drive API for auto-sync"

// SyncResult reports a folder sync.
type SyncResult struct {
	FolderID string
	SyncedAt time.Time
	Note     string
}

// DriveFolderService manages registered Drive folders.
type DriveFolderService interface {
	AddFolder(ctx context.Context, userID, driveFolderID, folderName, category string) (*domain.DriveFolder, error)
	ListFolders(ctx context.Context, userID string) ([]*domain.DriveFolder, error)
	// DeleteFolder removes the folder and every image of userID imported from it.
	DeleteFolder(ctx context.Context, userID, folderID string) error
	// SyncFolder only stamps synced_at.
	SyncFolder(ctx context.Context, userID, folderID string) (*SyncResult, error)
}

type driveFolderServiceImpl struct {
	folderRepo domain.DriveFolderRepository
	imageRepo  domain.ImageRepository
	txManager  domain.TransactionManager
	views      *imageViewCache
	now        func() time.Time
}

func NewDriveFolderService(
	folderRepo domain.DriveFolderRepository,
	imageRepo domain.ImageRepository,
	txManager domain.TransactionManager,
	c domain.Cache,
) DriveFolderService {
	return &driveFolderServiceImpl{
		folderRepo: folderRepo,
		imageRepo:  imageRepo,
		txManager:  txManager,
		views:      newImageViewCache(c, 0),
		now:        time.Now,
	}
}

func (s *driveFolderServiceImpl) AddFolder(ctx context.Context, userID, driveFolderID, folderName, category string) (*domain.DriveFolder, error) {
	folder := &domain.DriveFolder{
		ID:            util.NewPrefixedID("folder"),
		UserID:        userID,
		DriveFolderID: driveFolderID,
		FolderName:    folderName,
		Category:      util.NormalizeCategory(category),
		ImageCount:    0,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.folderRepo.CreateFolder(ctx, folder); err != nil {
		return nil, domain.NewInternalError("failed to register drive folder", err)
	}
	return folder, nil
}

func (s *driveFolderServiceImpl) ListFolders(ctx context.Context, userID string) ([]*domain.DriveFolder, error) {
	folders, err := s.folderRepo.ListFolders(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list drive folders", err)
	}
	return folders, nil
}

func (s *driveFolderServiceImpl) DeleteFolder(ctx context.Context, userID, folderID string) error {
	var removed int64
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		folder, err := s.folderRepo.GetFolder(txCtx, userID, folderID)
		if err != nil {
			return domain.NewInternalError("failed to load drive folder", err)
		}
		if folder == nil {
			return domain.NewFolderNotFoundError(folderID)
		}
		if err := s.folderRepo.DeleteFolder(txCtx, userID, folderID); err != nil {
			return domain.NewInternalError("failed to delete drive folder", err)
		}
		removed, err = s.imageRepo.DeleteImagesByDriveFolder(txCtx, userID, folder.DriveFolderID)
		if err != nil {
			return domain.NewInternalError("failed to delete drive folder images", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed > 0 {
		s.views.invalidate(ctx, userID)
	}
	logger.Get().Info("Drive folder deleted",
		zap.String("user_id", userID),
		zap.String("folder_id", folderID),
		zap.Int64("images_removed", removed),
	)
	return nil
}

func (s *driveFolderServiceImpl) SyncFolder(ctx context.Context, userID, folderID string) (*SyncResult, error) {
	folder, err := s.folderRepo.GetFolder(ctx, userID, folderID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load drive folder", err)
	}
	if folder == nil {
		return nil, domain.NewFolderNotFoundError(folderID)
	}

	at := s.now().UTC()
	if err := s.folderRepo.MarkSynced(ctx, userID, folderID, at); err != nil {
		return nil, domain.NewInternalError("failed to mark drive folder synced", err)
	}
	return &SyncResult{FolderID: folderID, SyncedAt: at, Note: DriveSyncNote}, nil
}
