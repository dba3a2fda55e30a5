// internal/repository/exercise_repo.go
package repository

import (
	"context"
	"time"

	"fitlog-tracker/internal/domain"
)

// LogFilter carries the optional constraints for an exercise log query.
// A nil bound means the filter is not applied for that side; a Limit of
// zero (or less) means no truncation.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// ExerciseRepository defines the interface for exercise data operations.
type ExerciseRepository interface {
	// CreateExercise adds a new exercise record using the provided DBExecutor.
	CreateExercise(ctx context.Context, q DBExecutor, exercise *domain.Exercise) error
	// ListByUser retrieves a user's exercises matching the filter, sorted
	// ascending by date.
	ListByUser(ctx context.Context, q DBExecutor, userID string, filter LogFilter) ([]domain.Exercise, error)
	// CountByUser returns the total number of exercises recorded for a user.
	CountByUser(ctx context.Context, q DBExecutor, userID string) (int64, error)
}
