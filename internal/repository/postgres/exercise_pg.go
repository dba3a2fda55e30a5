// internal/repository/postgres/exercise_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fitlog-tracker/internal/domain"
	"fitlog-tracker/internal/repository"
)

// ExerciseRepository implements repository.ExerciseRepository for PostgreSQL.
type ExerciseRepository struct{}

// NewExerciseRepository creates a new ExerciseRepository.
func NewExerciseRepository(db *sqlx.DB) repository.ExerciseRepository {
	return &ExerciseRepository{}
}

// CreateExercise inserts a new exercise record into the database.
func (r *ExerciseRepository) CreateExercise(ctx context.Context, q repository.DBExecutor, exercise *domain.Exercise) error {
	query := `INSERT INTO exercises (id, user_id, description, duration, date, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.ExecContext(ctx, query,
		exercise.ID,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
		exercise.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's exercises matching the filter, sorted
// ascending by date. The WHERE clause is assembled from the optional date
// bounds; the LIMIT is applied only when positive.
func (r *ExerciseRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string, filter repository.LogFilter) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}

	query := `SELECT id, user_id, description, duration, date, created_at
              FROM exercises WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date ASC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	if err := q.SelectContext(ctx, &exercises, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list exercises for user %s: %w", userID, err)
	}
	return exercises, nil
}

// CountByUser returns the total number of exercises recorded for a user.
func (r *ExerciseRepository) CountByUser(ctx context.Context, q repository.DBExecutor, userID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM exercises WHERE user_id = $1`
	if err := q.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count exercises for user %s: %w", userID, err)
	}
	return count, nil
}
