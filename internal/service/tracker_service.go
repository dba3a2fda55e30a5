// internal/service/tracker_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fitlog-tracker/internal/domain"
	"fitlog-tracker/internal/repository"
	"fitlog-tracker/internal/util"
	"fitlog-tracker/internal/validation"
)

// TrackerService defines the interface for exercise-log business logic.
type TrackerService interface {
	// CreateUser registers a new user with the given display name.
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	// ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]domain.User, error)
	// AddExercise records an exercise entry for an existing user. The raw
	// duration may be a number or a numeric string; an absent or
	// unparsable date falls back to the current time.
	AddExercise(ctx context.Context, userID, description string, duration any, date string) (*domain.User, *domain.Exercise, error)
	// GetLog returns a user's exercises filtered by the optional from/to
	// date bounds and truncated to limit entries, sorted ascending by date.
	GetLog(ctx context.Context, userID, from, to, limit string) (*domain.User, []domain.Exercise, error)
}

// trackerService implements the TrackerService interface.
type trackerService struct {
	dbExecutor   repository.DBExecutor
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewTrackerService creates a new instance of TrackerService.
func NewTrackerService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
) TrackerService {
	return &trackerService{
		dbExecutor:   dbExecutor,
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// CreateUser registers a new user. Usernames are trimmed but not required
// to be unique, so a single insert suffices.
func (s *trackerService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	name, err := validation.Username(username)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(name)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// ListUsers returns all registered users.
func (s *trackerService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// AddExercise records an exercise entry for an existing user. The user is
// resolved before any field validation so a missing user always answers
// as not-found regardless of the other fields.
func (s *trackerService) AddExercise(ctx context.Context, userID, description string, duration any, date string) (*domain.User, *domain.Exercise, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	desc, err := validation.Description(description)
	if err != nil {
		return nil, nil, err
	}
	minutes, err := validation.Duration(duration)
	if err != nil {
		return nil, nil, err
	}
	when := validation.Date(date)

	exercise := domain.NewExercise(user.ID, desc, minutes, when)
	if err := s.exerciseRepo.CreateExercise(ctx, s.dbExecutor, exercise); err != nil {
		return nil, nil, fmt.Errorf("add exercise: %w", err)
	}
	return user, exercise, nil
}

// GetLog returns a user's filtered exercise log. Unparsable date bounds
// are dropped and a non-positive or non-numeric limit means no truncation.
func (s *trackerService) GetLog(ctx context.Context, userID, from, to, limit string) (*domain.User, []domain.Exercise, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	filter := repository.LogFilter{Limit: validation.Limit(limit)}
	if t, ok := validation.DateBound(from); ok {
		filter.From = &t
	}
	if t, ok := validation.DateBound(to); ok {
		filter.To = &t
	}

	exercises, err := s.exerciseRepo.ListByUser(ctx, s.dbExecutor, user.ID, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("get log: %w", err)
	}
	return user, exercises, nil
}

// findUser resolves a caller-supplied user id. A structurally invalid id
// is answered as not-found without touching the database.
func (s *trackerService) findUser(ctx context.Context, userID string) (*domain.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, util.ErrUserNotFound
	}
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}
	return user, nil
}
