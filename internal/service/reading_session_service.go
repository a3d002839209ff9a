package service

import (
	"context"
	"time"

	"medread/internal/domain"
	"medread/internal/logger"
	"medread/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SubmitResponseInput is one diagnosis for one image.
type SubmitResponseInput struct {
	ImageID     string
	Diagnosis   string
	TimeTakenMs int64
}

// ReadingSessionService runs timed reading sessions.
//
// States: in_progress -> paused -> in_progress -> completed, or in_progress -> quit.
// completed and quit are terminal, but Complete itself does not check the prior state.
type ReadingSessionService interface {
	// Start clamps count to the number of owned images and returns the sampled working set.
	Start(ctx context.Context, userID string, count int) (*domain.ReadingSession, []*domain.Image, error)
	SubmitResponse(ctx context.Context, userID, sessionID string, in SubmitResponseInput) (*domain.SessionResponse, error)
	Pause(ctx context.Context, userID, sessionID string) error
	Resume(ctx context.Context, userID, sessionID string) error
	Complete(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, []*domain.SessionResponse, error)
	// Quit succeeds without effect when the session does not exist.
	Quit(ctx context.Context, userID, sessionID string) error
	Get(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, []*domain.SessionResponse, error)
	List(ctx context.Context, userID string) ([]*domain.ReadingSession, error)
	ExportCSV(ctx context.Context, userID, sessionID string) ([]byte, error)
}

type readingSessionServiceImpl struct {
	sessionRepo  domain.ReadingSessionRepository
	responseRepo domain.SessionResponseRepository
	imageRepo    domain.ImageRepository
	txManager    domain.TransactionManager
	now          func() time.Time
}

func NewReadingSessionService(
	sessionRepo domain.ReadingSessionRepository,
	responseRepo domain.SessionResponseRepository,
	imageRepo domain.ImageRepository,
	txManager domain.TransactionManager,
) ReadingSessionService {
	return &readingSessionServiceImpl{
		sessionRepo:  sessionRepo,
		responseRepo: responseRepo,
		imageRepo:    imageRepo,
		txManager:    txManager,
		now:          time.Now,
	}
}

func (s *readingSessionServiceImpl) Start(ctx context.Context, userID string, count int) (*domain.ReadingSession, []*domain.Image, error) {
	owned, err := s.imageRepo.CountImages(ctx, userID)
	if err != nil {
		return nil, nil, domain.NewInternalError("failed to count images", err)
	}
	if owned == 0 {
		return nil, nil, domain.NewNoImagesError()
	}
	if count > owned {
		count = owned
	}

	session := &domain.ReadingSession{
		ID:          util.NewPrefixedID("session"),
		UserID:      userID,
		Status:      domain.StatusInProgress,
		TotalImages: count,
		StartedAt:   s.now().UTC(),
	}

	var images []*domain.Image
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.sessionRepo.CreateSession(gctx, session); err != nil {
			return domain.NewInternalError("failed to create reading session", err)
		}
		return nil
	})
	g.Go(func() error {
		sample, err := s.imageRepo.SampleImages(gctx, userID, count)
		if err != nil {
			return domain.NewInternalError("failed to sample images", err)
		}
		images = sample
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	logger.Get().Info("Reading session started",
		zap.String("user_id", userID),
		zap.String("session_id", session.ID),
		zap.Int("total_images", session.TotalImages),
	)
	return session, images, nil
}

func (s *readingSessionServiceImpl) SubmitResponse(ctx context.Context, userID, sessionID string, in SubmitResponseInput) (*domain.SessionResponse, error) {
	session, err := s.getOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Status.Active() {
		return nil, domain.NewInactiveSessionError(session.Status)
	}

	image, err := s.imageRepo.GetImage(ctx, userID, in.ImageID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load image", err)
	}
	if image == nil {
		return nil, domain.NewImageNotFoundError(in.ImageID)
	}

	response := &domain.SessionResponse{
		ID:             util.NewPrefixedID("resp"),
		SessionID:      sessionID,
		ImageID:        in.ImageID,
		UserDiagnosis:  util.NormalizeCategory(in.Diagnosis),
		ActualCategory: util.NormalizeCategory(image.Category),
		IsCorrect:      util.SameCategory(in.Diagnosis, image.Category),
		TimeTakenMs:    in.TimeTakenMs,
		CreatedAt:      s.now().UTC(),
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.responseRepo.CreateResponse(txCtx, response); err != nil {
			return domain.NewInternalError("failed to record response", err)
		}
		if err := s.sessionRepo.IncrementCounters(txCtx, sessionID, response.TimeTakenMs, response.IsCorrect); err != nil {
			return domain.NewInternalError("failed to update session counters", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (s *readingSessionServiceImpl) Pause(ctx context.Context, userID, sessionID string) error {
	session, err := s.getOwned(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if session.Status != domain.StatusInProgress {
		return domain.NewNotInProgressError(session.Status)
	}

	ok, err := s.sessionRepo.MarkPaused(ctx, userID, sessionID, s.now().UTC())
	if err != nil {
		return domain.NewInternalError("failed to pause session", err)
	}
	if !ok {
		// Another request changed the status between the read and the update.
		return domain.NewNotInProgressError(s.currentStatus(ctx, userID, sessionID))
	}
	return nil
}

func (s *readingSessionServiceImpl) Resume(ctx context.Context, userID, sessionID string) error {
	session, err := s.getOwned(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if session.Status != domain.StatusPaused {
		return domain.NewNotPausedError(session.Status)
	}

	var elapsedMs int64
	if session.PausedAt != nil {
		elapsedMs = s.now().Sub(*session.PausedAt).Milliseconds()
		if elapsedMs < 0 {
			elapsedMs = 0
		}
	}

	ok, err := s.sessionRepo.MarkResumed(ctx, userID, sessionID, elapsedMs)
	if err != nil {
		return domain.NewInternalError("failed to resume session", err)
	}
	if !ok {
		return domain.NewNotPausedError(s.currentStatus(ctx, userID, sessionID))
	}
	return nil
}

func (s *readingSessionServiceImpl) Complete(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, []*domain.SessionResponse, error) {
	if _, err := s.getOwned(ctx, userID, sessionID); err != nil {
		return nil, nil, err
	}
	if err := s.sessionRepo.MarkCompleted(ctx, userID, sessionID, s.now().UTC()); err != nil {
		return nil, nil, domain.NewInternalError("failed to complete session", err)
	}

	session, responses, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	logger.Get().Info("Reading session completed",
		zap.String("user_id", userID),
		zap.String("session_id", sessionID),
		zap.Int("images_reviewed", session.ImagesReviewed),
		zap.Int("correct_count", session.CorrectCount),
	)
	return session, responses, nil
}

func (s *readingSessionServiceImpl) Quit(ctx context.Context, userID, sessionID string) error {
	if err := s.sessionRepo.MarkQuit(ctx, userID, sessionID, s.now().UTC()); err != nil {
		return domain.NewInternalError("failed to quit session", err)
	}
	logger.Get().Info("Reading session quit", zap.String("user_id", userID), zap.String("session_id", sessionID))
	return nil
}

func (s *readingSessionServiceImpl) Get(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, []*domain.SessionResponse, error) {
	session, err := s.getOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	responses, err := s.responseRepo.ListResponses(ctx, sessionID)
	if err != nil {
		return nil, nil, domain.NewInternalError("failed to list session responses", err)
	}
	return session, responses, nil
}

func (s *readingSessionServiceImpl) List(ctx context.Context, userID string) ([]*domain.ReadingSession, error) {
	sessions, err := s.sessionRepo.ListSessions(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to list reading sessions", err)
	}
	return sessions, nil
}

func (s *readingSessionServiceImpl) ExportCSV(ctx context.Context, userID, sessionID string) ([]byte, error) {
	session, responses, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	data, err := RenderSessionCSV(session, responses)
	if err != nil {
		return nil, domain.NewInternalError("failed to render session csv", err)
	}
	return data, nil
}

func (s *readingSessionServiceImpl) getOwned(ctx context.Context, userID, sessionID string) (*domain.ReadingSession, error) {
	session, err := s.sessionRepo.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load reading session", err)
	}
	if session == nil {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return session, nil
}

func (s *readingSessionServiceImpl) currentStatus(ctx context.Context, userID, sessionID string) domain.SessionStatus {
	session, err := s.sessionRepo.GetSession(ctx, userID, sessionID)
	if err != nil || session == nil {
		return "unknown"
	}
	return session.Status
}
