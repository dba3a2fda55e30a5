// internal/domain/exercise.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exercise represents a single logged activity entry owned by one User.
// Entries are immutable after creation and are never deleted or updated.
type Exercise struct {
	ID          string    `db:"id" json:"id"`                   // Primary key, UUID assigned at creation
	UserID      string    `db:"user_id" json:"user_id"`         // Owning user's id
	Description string    `db:"description" json:"description"` // What was done, non-empty
	Duration    int       `db:"duration" json:"duration"`       // Duration in minutes
	Date        time.Time `db:"date" json:"date"`               // When the exercise happened
	CreatedAt   time.Time `db:"created_at" json:"created_at"`   // Timestamp of record creation
}

// NewExercise creates a new Exercise instance owned by userID.
func NewExercise(userID, description string, duration int, date time.Time) *Exercise {
	return &Exercise{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
