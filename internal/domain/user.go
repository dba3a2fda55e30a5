// internal/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns exercise log entries.
// Users are immutable after creation and are never deleted.
type User struct {
	ID        string    `db:"id" json:"id"`                 // Primary key, UUID assigned at creation
	Username  string    `db:"username" json:"username"`     // Display name, trimmed, not required unique
	CreatedAt time.Time `db:"created_at" json:"created_at"` // Timestamp of creation
}

// NewUser creates a new User instance with a fresh id.
func NewUser(username string) *User {
	return &User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
}
