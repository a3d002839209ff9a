package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"medread/internal/domain"
	"medread/internal/repository/models"
	"medread/internal/util"

	"github.com/jmoiron/sqlx"
)

const userColumns = `user_id, email, name, picture, created_at`

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db DBTX
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Picture:   m.Picture.String,
		CreatedAt: m.CreatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   util.StringToNullString(u.Picture),
		CreatedAt: u.CreatedAt,
	}
}

// CreateUser inserts a new user. ID and email are immutable afterwards.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	m := fromDomainUser(user)
	query := `INSERT INTO users (` + userColumns + `) VALUES (:1, :2, :3, :4, :5)`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, m.ID, m.Email, m.Name, m.Picture, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) getOne(ctx context.Context, where string, arg string) (*domain.User, error) {
	var m models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + ` = :1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainUser(&m), nil
}

// GetUserByID returns (nil, nil) when the user does not exist.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	u, err := r.getOne(ctx, "user_id", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns (nil, nil) when no user has this email.
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.getOne(ctx, "email", email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// UpdateUserProfile updates only name and picture.
func (r *sqlxUserRepository) UpdateUserProfile(ctx context.Context, userID, name, picture string) error {
	query := `UPDATE users SET name = :1, picture = :2 WHERE user_id = :3`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, name, util.StringToNullString(picture), userID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
