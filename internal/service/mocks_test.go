package service

import (
	"context"
	"time"

	"medread/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUserProfile(ctx context.Context, userID, name, picture string) error {
	return m.Called(ctx, userID, name, picture).Error(0)
}

// --- MockAuthSessionRepository ---
type MockAuthSessionRepository struct {
	mock.Mock
}

func (m *MockAuthSessionRepository) CreateSession(ctx context.Context, s *domain.AuthSession) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockAuthSessionRepository) GetSessionByToken(ctx context.Context, token string) (*domain.AuthSession, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthSession), args.Error(1)
}

func (m *MockAuthSessionRepository) DeleteSessionsByUserID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAuthSessionRepository) DeleteSessionByToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// --- MockSessionBroker ---
type MockSessionBroker struct {
	mock.Mock
}

func (m *MockSessionBroker) FetchSessionData(ctx context.Context, externalSessionID string) (*domain.ExternalIdentity, error) {
	args := m.Called(ctx, externalSessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExternalIdentity), args.Error(1)
}

// --- MockTransactionManager runs fn inline ---
type MockTransactionManager struct{}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- MockImageRepository ---
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) CreateImage(ctx context.Context, img *domain.Image) error {
	return m.Called(ctx, img).Error(0)
}

func (m *MockImageRepository) ListImages(ctx context.Context, userID, category string) ([]*domain.Image, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Image), args.Error(1)
}

func (m *MockImageRepository) GetImage(ctx context.Context, userID, imageID string) (*domain.Image, error) {
	args := m.Called(ctx, userID, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Image), args.Error(1)
}

func (m *MockImageRepository) DeleteImage(ctx context.Context, userID, imageID string) (bool, error) {
	args := m.Called(ctx, userID, imageID)
	return args.Bool(0), args.Error(1)
}

func (m *MockImageRepository) DeleteImagesByDriveFolder(ctx context.Context, userID, driveFolderID string) (int64, error) {
	args := m.Called(ctx, userID, driveFolderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImageRepository) CountImages(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockImageRepository) SampleImages(ctx context.Context, userID string, n int) ([]*domain.Image, error) {
	args := m.Called(ctx, userID, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Image), args.Error(1)
}

func (m *MockImageRepository) CountByCategory(ctx context.Context, userID string) ([]domain.CategoryCount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

func (m *MockImageRepository) ListCategories(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- MockDriveFolderRepository ---
type MockDriveFolderRepository struct {
	mock.Mock
}

func (m *MockDriveFolderRepository) CreateFolder(ctx context.Context, f *domain.DriveFolder) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockDriveFolderRepository) ListFolders(ctx context.Context, userID string) ([]*domain.DriveFolder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DriveFolder), args.Error(1)
}

func (m *MockDriveFolderRepository) GetFolder(ctx context.Context, userID, folderID string) (*domain.DriveFolder, error) {
	args := m.Called(ctx, userID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DriveFolder), args.Error(1)
}

func (m *MockDriveFolderRepository) DeleteFolder(ctx context.Context, userID, folderID string) error {
	return m.Called(ctx, userID, folderID).Error(0)
}

func (m *MockDriveFolderRepository) MarkSynced(ctx context.Context, userID, folderID string, at time.Time) error {
	return m.Called(ctx, userID, folderID, at).Error(0)
}

// --- MockReadingSessionRepository ---
type MockReadingSessionRepository struct {
	mock.Mock
}

func (m *MockReadingSessionRepository) CreateSession(ctx context.Context, s *domain.ReadingSession) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockReadingSessionRepository) GetSession(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, error) {
	args := m.Called(ctx, userID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReadingSession), args.Error(1)
}

func (m *MockReadingSessionRepository) ListSessions(ctx context.Context, userID string) ([]*domain.ReadingSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReadingSession), args.Error(1)
}

func (m *MockReadingSessionRepository) IncrementCounters(ctx context.Context, sessionID string, timeTakenMs int64, correct bool) error {
	return m.Called(ctx, sessionID, timeTakenMs, correct).Error(0)
}

func (m *MockReadingSessionRepository) MarkPaused(ctx context.Context, userID, sessionID string, at time.Time) (bool, error) {
	args := m.Called(ctx, userID, sessionID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockReadingSessionRepository) MarkResumed(ctx context.Context, userID, sessionID string, pauseMs int64) (bool, error) {
	args := m.Called(ctx, userID, sessionID, pauseMs)
	return args.Bool(0), args.Error(1)
}

func (m *MockReadingSessionRepository) MarkCompleted(ctx context.Context, userID, sessionID string, at time.Time) error {
	return m.Called(ctx, userID, sessionID, at).Error(0)
}

func (m *MockReadingSessionRepository) MarkQuit(ctx context.Context, userID, sessionID string, at time.Time) error {
	return m.Called(ctx, userID, sessionID, at).Error(0)
}

// --- MockSessionResponseRepository ---
type MockSessionResponseRepository struct {
	mock.Mock
}

func (m *MockSessionResponseRepository) CreateResponse(ctx context.Context, r *domain.SessionResponse) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockSessionResponseRepository) ListResponses(ctx context.Context, sessionID string) ([]*domain.SessionResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SessionResponse), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
