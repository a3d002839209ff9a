package domain

import (
	"context"
	"time"
)

// User is an account created on first login through the session-exchange broker.
type User struct {
	ID        string
	Email     string
	Name      string
	Picture   string
	CreatedAt time.Time
}

// AuthSession maps an opaque bearer token to its owner.
type AuthSession struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at now. Both sides are compared in UTC.
func (s *AuthSession) Expired(now time.Time) bool {
	return s.ExpiresAt.UTC().Before(now.UTC())
}

// ExternalIdentity is the identity payload returned by the session-exchange broker.
type ExternalIdentity struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUserProfile(ctx context.Context, userID, name, picture string) error
}

// AuthSessionRepository persists bearer tokens.
type AuthSessionRepository interface {
	CreateSession(ctx context.Context, session *AuthSession) error
	GetSessionByToken(ctx context.Context, token string) (*AuthSession, error)
	DeleteSessionsByUserID(ctx context.Context, userID string) error
	DeleteSessionByToken(ctx context.Context, token string) error
}

// SessionBroker exchanges an external session id for identity data.
type SessionBroker interface {
	FetchSessionData(ctx context.Context, externalSessionID string) (*ExternalIdentity, error)
}

// TransactionManager runs fn inside a single store transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
