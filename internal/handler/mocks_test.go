package handler_test

import (
	"context"
	"time"

	"medread/internal/domain"
	"medread/internal/service"
)

// --- Manual Mocks ---

type MockAuthService struct {
	LoginFunc        func(ctx context.Context, externalSessionID string) (*service.LoginResult, error)
	AuthenticateFunc func(ctx context.Context, token string) (*domain.User, error)
	LogoutFunc       func(ctx context.Context, token string) error
}

func (m *MockAuthService) Login(ctx context.Context, externalSessionID string) (*service.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, externalSessionID)
	}
	panic("MockAuthService.LoginFunc not implemented")
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	panic("MockAuthService.AuthenticateFunc not implemented")
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	panic("MockAuthService.LogoutFunc not implemented")
}

type MockImageService struct {
	ListImagesFunc   func(ctx context.Context, userID, category string) ([]*domain.Image, error)
	UploadImageFunc  func(ctx context.Context, userID string, in service.UploadImageInput) (*domain.Image, error)
	DeleteImageFunc  func(ctx context.Context, userID, imageID string) error
	RandomImagesFunc func(ctx context.Context, userID string, count int) ([]*domain.Image, error)
	StatsFunc        func(ctx context.Context, userID string) (*domain.ImageStats, error)
	CategoriesFunc   func(ctx context.Context, userID string) ([]string, error)
}

func (m *MockImageService) ListImages(ctx context.Context, userID, category string) ([]*domain.Image, error) {
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx, userID, category)
	}
	panic("MockImageService.ListImagesFunc not implemented")
}

func (m *MockImageService) UploadImage(ctx context.Context, userID string, in service.UploadImageInput) (*domain.Image, error) {
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, userID, in)
	}
	panic("MockImageService.UploadImageFunc not implemented")
}

func (m *MockImageService) DeleteImage(ctx context.Context, userID, imageID string) error {
	if m.DeleteImageFunc != nil {
		return m.DeleteImageFunc(ctx, userID, imageID)
	}
	panic("MockImageService.DeleteImageFunc not implemented")
}

func (m *MockImageService) RandomImages(ctx context.Context, userID string, count int) ([]*domain.Image, error) {
	if m.RandomImagesFunc != nil {
		return m.RandomImagesFunc(ctx, userID, count)
	}
	panic("MockImageService.RandomImagesFunc not implemented")
}

func (m *MockImageService) Stats(ctx context.Context, userID string) (*domain.ImageStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, userID)
	}
	panic("MockImageService.StatsFunc not implemented")
}

func (m *MockImageService) Categories(ctx context.Context, userID string) ([]string, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx, userID)
	}
	panic("MockImageService.CategoriesFunc not implemented")
}

type MockDriveFolderService struct {
	AddFolderFunc    func(ctx context.Context, userID, driveFolderID, folderName, category string) (*domain.DriveFolder, error)
	ListFoldersFunc  func(ctx context.Context, userID string) ([]*domain.DriveFolder, error)
	DeleteFolderFunc func(ctx context.Context, userID, folderID string) error
	SyncFolderFunc   func(ctx context.Context, userID, folderID string) (*service.SyncResult, error)
}

func (m *MockDriveFolderService) AddFolder(ctx context.Context, userID, driveFolderID, folderName, category string) (*domain.DriveFolder, error) {
	if m.AddFolderFunc != nil {
		return m.AddFolderFunc(ctx, userID, driveFolderID, folderName, category)
	}
	panic("MockDriveFolderService.AddFolderFunc not implemented")
}

func (m *MockDriveFolderService) ListFolders(ctx context.Context, userID string) ([]*domain.DriveFolder, error) {
	if m.ListFoldersFunc != nil {
		return m.ListFoldersFunc(ctx, userID)
	}
	panic("MockDriveFolderService.ListFoldersFunc not implemented")
}

func (m *MockDriveFolderService) DeleteFolder(ctx context.Context, userID, folderID string) error {
	if m.DeleteFolderFunc != nil {
		return m.DeleteFolderFunc(ctx, userID, folderID)
	}
	panic("MockDriveFolderService.DeleteFolderFunc not implemented")
}

func (m *MockDriveFolderService) SyncFolder(ctx context.Context, userID, folderID string) (*service.SyncResult, error) {
	if m.SyncFolderFunc != nil {
		return m.SyncFolderFunc(ctx, userID, folderID)
	}
	panic("MockDriveFolderService.SyncFolderFunc not implemented")
}

type MockReadingSessionService struct {
	StartFunc          func(ctx context.Context, userID string, count int) (*domain.ReadingSession, []*domain.Image, error)
	SubmitResponseFunc func(ctx context.Context, userID, sessionID string, in service.SubmitResponseInput) (*domain.SessionResponse, error)
	PauseFunc          func(ctx context.Context, userID, sessionID string) error
	ResumeFunc         func(ctx context.Context, userID, sessionID string) error
	CompleteFunc       func(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, []*domain.SessionResponse, error)
	QuitFunc           func(ctx context.Context, userID, sessionID string) error
	GetFunc            func(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, []*domain.SessionResponse, error)
	ListFunc           func(ctx context.Context, userID string) ([]*domain.ReadingSession, error)
	ExportCSVFunc      func(ctx context.Context, userID, sessionID string) ([]byte, error)
}

func (m *MockReadingSessionService) Start(ctx context.Context, userID string, count int) (*domain.ReadingSession, []*domain.Image, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, userID, count)
	}
	panic("MockReadingSessionService.StartFunc not implemented")
}

func (m *MockReadingSessionService) SubmitResponse(ctx context.Context, userID, sessionID string, in service.SubmitResponseInput) (*domain.SessionResponse, error) {
	if m.SubmitResponseFunc != nil {
		return m.SubmitResponseFunc(ctx, userID, sessionID, in)
	}
	panic("MockReadingSessionService.SubmitResponseFunc not implemented")
}

func (m *MockReadingSessionService) Pause(ctx context.Context, userID, sessionID string) error {
	if m.PauseFunc != nil {
		return m.PauseFunc(ctx, userID, sessionID)
	}
	panic("MockReadingSessionService.PauseFunc not implemented")
}

func (m *MockReadingSessionService) Resume(ctx context.Context, userID, sessionID string) error {
	if m.ResumeFunc != nil {
		return m.ResumeFunc(ctx, userID, sessionID)
	}
	panic("MockReadingSessionService.ResumeFunc not implemented")
}

func (m *MockReadingSessionService) Complete(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, []*domain.SessionResponse, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, userID, sessionID)
	}
	panic("MockReadingSessionService.CompleteFunc not implemented")
}

func (m *MockReadingSessionService) Quit(ctx context.Context, userID, sessionID string) error {
	if m.QuitFunc != nil {
		return m.QuitFunc(ctx, userID, sessionID)
	}
	panic("MockReadingSessionService.QuitFunc not implemented")
}

func (m *MockReadingSessionService) Get(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, []*domain.SessionResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, sessionID)
	}
	panic("MockReadingSessionService.GetFunc not implemented")
}

func (m *MockReadingSessionService) List(ctx context.Context, userID string) ([]*domain.ReadingSession, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	panic("MockReadingSessionService.ListFunc not implemented")
}

func (m *MockReadingSessionService) ExportCSV(ctx context.Context, userID, sessionID string) ([]byte, error) {
	if m.ExportCSVFunc != nil {
		return m.ExportCSVFunc(ctx, userID, sessionID)
	}
	panic("MockReadingSessionService.ExportCSVFunc not implemented")
}

type MockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// MockCache only answers Ping; readiness never touches cached values.
type MockCache struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	return "", domain.ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (m *MockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
