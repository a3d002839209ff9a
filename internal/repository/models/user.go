package models

import (
	"database/sql"
	"time"
)

// User represents a row of the USERS table.
type User struct {
	ID        string         `db:"USER_ID"`
	Email     string         `db:"EMAIL"`
	Name      string         `db:"NAME"`
	Picture   sql.NullString `db:"PICTURE"`
	CreatedAt time.Time      `db:"CREATED_AT"`
}

// UserSession represents a row of the USER_SESSIONS table (bearer tokens).
type UserSession struct {
	ID           string    `db:"SESSION_ID"`
	UserID       string    `db:"USER_ID"`
	SessionToken string    `db:"SESSION_TOKEN"`
	ExpiresAt    time.Time `db:"EXPIRES_AT"`
	CreatedAt    time.Time `db:"CREATED_AT"`
}
