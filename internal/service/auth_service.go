package service

import (
	"context"
	"fmt"
	"time"

	"medread/internal/config"
	"medread/internal/domain"
	"medread/internal/logger"
	"medread/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	tokenIssuer     = "medread"
	minSecretLength = 32
	defaultTokenTTL = 7 * 24 * time.Hour
)

// LoginResult is the outcome of a successful session exchange.
type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService exchanges broker sessions for local bearer tokens and resolves them per request.
type AuthService interface {
	Login(ctx context.Context, externalSessionID string) (*LoginResult, error)
	// Authenticate resolves a bearer to its user. Expiry is checked lazily here.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	// Logout deletes the given token. An empty token is a no-op.
	Logout(ctx context.Context, token string) error
}

type authServiceImpl struct {
	userRepo  domain.UserRepository
	tokenRepo domain.AuthSessionRepository
	broker    domain.SessionBroker
	txManager domain.TransactionManager
	secret    []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	userRepo domain.UserRepository,
	tokenRepo domain.AuthSessionRepository,
	broker domain.SessionBroker,
	txManager domain.TransactionManager,
	authCfg config.AuthConfig,
) (AuthService, error) {
	if len(authCfg.TokenSecret) < minSecretLength {
		return nil, fmt.Errorf("auth.token_secret must be at least %d bytes long", minSecretLength)
	}
	ttl := authCfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &authServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		broker:    broker,
		txManager: txManager,
		secret:    []byte(authCfg.TokenSecret),
		tokenTTL:  ttl,
		now:       time.Now,
	}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, externalSessionID string) (*LoginResult, error) {
	identity, err := s.broker.FetchSessionData(ctx, externalSessionID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	result := &LoginResult{ExpiresAt: now.Add(s.tokenTTL)}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.upsertUser(txCtx, identity, now)
		if err != nil {
			return err
		}

		token := identity.SessionToken
		if token == "" {
			token, err = s.mintToken(user.ID, now, result.ExpiresAt)
			if err != nil {
				return domain.NewInternalError("failed to mint session token", err)
			}
		}

		// One active token per user.
		if err := s.tokenRepo.DeleteSessionsByUserID(txCtx, user.ID); err != nil {
			return domain.NewInternalError("failed to revoke previous sessions", err)
		}
		if err := s.tokenRepo.CreateSession(txCtx, &domain.AuthSession{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Token:     token,
			ExpiresAt: result.ExpiresAt,
			CreatedAt: now,
		}); err != nil {
			return domain.NewInternalError("failed to store session", err)
		}

		result.User = user
		result.Token = token
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("User logged in", zap.String("user_id", result.User.ID), zap.Time("expires_at", result.ExpiresAt))
	return result, nil
}

// upsertUser keys on email. Only name and picture change for an existing user.
func (s *authServiceImpl) upsertUser(ctx context.Context, identity *domain.ExternalIdentity, now time.Time) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, identity.Email)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}

	if user == nil {
		user = &domain.User{
			ID:        util.NewPrefixedID("user"),
			Email:     identity.Email,
			Name:      identity.Name,
			Picture:   identity.Picture,
			CreatedAt: now,
		}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, domain.NewInternalError("failed to create user", err)
		}
		return user, nil
	}

	if err := s.userRepo.UpdateUserProfile(ctx, user.ID, identity.Name, identity.Picture); err != nil {
		return nil, domain.NewInternalError("failed to update user", err)
	}
	user.Name = identity.Name
	user.Picture = identity.Picture
	return user, nil
}

// mintToken signs an opaque bearer. The stored row stays authoritative; the signature is never checked.
func (s *authServiceImpl) mintToken(userID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authServiceImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.NewUnauthenticatedError()
	}

	session, err := s.tokenRepo.GetSessionByToken(ctx, token)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up session", err)
	}
	if session == nil {
		return nil, domain.NewInvalidSessionError()
	}
	if session.Expired(s.now()) {
		return nil, domain.NewSessionExpiredError()
	}

	user, err := s.userRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError()
	}
	return user, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.tokenRepo.DeleteSessionByToken(ctx, token); err != nil {
		return domain.NewInternalError("failed to delete session", err)
	}
	return nil
}
