// internal/api/handler/tracker_test.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitlog-tracker/internal/api/types"
	"fitlog-tracker/internal/domain"
	"fitlog-tracker/internal/util"
	"fitlog-tracker/internal/validation"
)

// MockTrackerService is a mock implementation of service.TrackerService.
type MockTrackerService struct {
	mock.Mock
}

func (m *MockTrackerService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockTrackerService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockTrackerService) AddExercise(ctx context.Context, userID, description string, duration any, date string) (*domain.User, *domain.Exercise, error) {
	args := m.Called(ctx, userID, description, duration, date)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*domain.Exercise), args.Error(2)
}

func (m *MockTrackerService) GetLog(ctx context.Context, userID, from, to, limit string) (*domain.User, []domain.Exercise, error) {
	args := m.Called(ctx, userID, from, to, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).([]domain.Exercise), args.Error(2)
}

func newTestRouter(svc *MockTrackerService) http.Handler {
	h := NewTrackerHandler(svc, util.GetLogger())
	r := chi.NewRouter()
	r.Post("/api/users", h.CreateUser)
	r.Get("/api/users", h.ListUsers)
	r.Post("/api/users/{userID}/exercises", h.AddExercise)
	r.Get("/api/users/{userID}/logs", h.GetLog)
	return r
}

func TestCreateUserHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockTrackerService)
		user := &domain.User{ID: uuid.NewString(), Username: "alice"}
		svc.On("CreateUser", mock.Anything, "alice").Return(user, nil).Once()

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice"}`))
		newTestRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp types.UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("Invalid input yields 400 with error body", func(t *testing.T) {
		svc := new(MockTrackerService)
		svc.On("CreateUser", mock.Anything, "").Return(nil, &validation.Error{Msg: "username is required"}).Once()

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":""}`))
		newTestRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "username is required", resp["error"])
	})

	t.Run("Malformed body yields 400", func(t *testing.T) {
		svc := new(MockTrackerService)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{"))
		newTestRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Service failure yields opaque 500", func(t *testing.T) {
		svc := new(MockTrackerService)
		svc.On("CreateUser", mock.Anything, "alice").Return(nil, assert.AnError).Once()

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"username":"alice"}`))
		newTestRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Server error", resp["error"])
	})
}

func TestListUsersHandler(t *testing.T) {
	svc := new(MockTrackerService)
	users := []domain.User{
		{ID: uuid.NewString(), Username: "alice"},
		{ID: uuid.NewString(), Username: "bob"},
	}
	svc.On("ListUsers", mock.Anything).Return(users, nil).Once()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	newTestRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []types.UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "bob", resp[1].Username)
}

func TestAddExerciseHandler(t *testing.T) {
	t.Run("Success renders the human-readable date", func(t *testing.T) {
		svc := new(MockTrackerService)
		user := &domain.User{ID: uuid.NewString(), Username: "alice"}
		exercise := &domain.Exercise{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Description: "morning run",
			Duration:    15,
			Date:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		}
		svc.On("AddExercise", mock.Anything, user.ID, "morning run", json.Number("15"), "").
			Return(user, exercise, nil).Once()

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users/"+user.ID+"/exercises",
			strings.NewReader(`{"description":"morning run","duration":15}`))
		newTestRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp types.ExerciseResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "Mon Jan 01 2024", resp.Date)
		assert.Equal(t, 15, resp.Duration)
	})

	t.Run("Unknown user answers 200 with the stable error body", func(t *testing.T) {
		svc := new(MockTrackerService)
		id := uuid.NewString()
		svc.On("AddExercise", mock.Anything, id, "run", json.Number("10"), "").
			Return(nil, nil, util.ErrUserNotFound).Once()

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users/"+id+"/exercises",
			strings.NewReader(`{"description":"run","duration":10}`))
		newTestRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Couldn't find user", resp["error"])
	})
}

func TestGetLogHandler(t *testing.T) {
	t.Run("Count always equals the log length", func(t *testing.T) {
		svc := new(MockTrackerService)
		user := &domain.User{ID: uuid.NewString(), Username: "alice"}
		exercises := []domain.Exercise{
			{Description: "run", Duration: 15, Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
			{Description: "swim", Duration: 30, Date: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)},
		}
		svc.On("GetLog", mock.Anything, user.ID, "2024-01-01", "2024-01-31", "2").
			Return(user, exercises, nil).Once()

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/users/"+user.ID+"/logs?from=2024-01-01&to=2024-01-31&limit=2", nil)
		newTestRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp types.LogResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, len(resp.Log), resp.Count)
		require.Len(t, resp.Log, 2)
		assert.Equal(t, "run", resp.Log[0].Description)
		assert.Equal(t, "Tue Jan 02 2024", resp.Log[1].Date)
	})

	t.Run("Empty log still carries an empty array", func(t *testing.T) {
		svc := new(MockTrackerService)
		user := &domain.User{ID: uuid.NewString(), Username: "alice"}
		svc.On("GetLog", mock.Anything, user.ID, "", "", "").
			Return(user, []domain.Exercise{}, nil).Once()

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID+"/logs", nil)
		newTestRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"log":[]`)
		assert.Contains(t, rr.Body.String(), `"count":0`)
	})
}
