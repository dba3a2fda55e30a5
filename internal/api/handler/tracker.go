// internal/api/handler/tracker.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fitlog-tracker/internal/api/types"
	"fitlog-tracker/internal/domain"
	"fitlog-tracker/internal/metrics"
	"fitlog-tracker/internal/service"
	"fitlog-tracker/internal/util"
	"fitlog-tracker/internal/validation"
)

// DefaultTimeout is the per-request timeout applied by the router.
const DefaultTimeout = 15 * time.Second

// notFoundMessage is the stable error message for an unknown user;
// existing clients depend on both the key and the message.
const notFoundMessage = "Couldn't find user"

// TrackerHandler handles HTTP requests for users and their exercise logs.
type TrackerHandler struct {
	service service.TrackerService
	logger  *slog.Logger
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(svc service.TrackerService, logger *slog.Logger) *TrackerHandler {
	return &TrackerHandler{
		service: svc,
		logger:  logger,
	}
}

// Helper function to send JSON responses.
func (h *TrackerHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses. An unknown user deliberately
// answers 200 with an error body for compatibility with existing clients;
// everything unrecognized becomes an opaque 500.
func (h *TrackerHandler) respondWithError(w http.ResponseWriter, err error) {
	switch {
	case util.IsError(err, util.ErrUserNotFound):
		h.respondWithJSON(w, http.StatusOK, map[string]string{"error": notFoundMessage})
	case util.IsError(err, util.ErrInvalidInput):
		h.respondWithJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.logger.Error("Unhandled service error", "error", err)
		h.respondWithJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
	}
}

// CreateUserRequest represents the request body for user registration.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// CreateUser handles user registration.
// POST /api/users
func (h *TrackerHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	user, err := h.service.CreateUser(r.Context(), req.Username)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	metrics.UsersCreated.Inc()
	h.respondWithJSON(w, http.StatusOK, types.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// ListUsers handles the user listing request.
// GET /api/users
func (h *TrackerHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	resp := make([]types.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, types.UserResponse{ID: u.ID, Username: u.Username})
	}
	h.respondWithJSON(w, http.StatusOK, resp)
}

// AddExerciseRequest represents the request body for recording an exercise.
// Duration is decoded loosely because clients send it both as a number and
// as a numeric string.
type AddExerciseRequest struct {
	Description string `json:"description"`
	Duration    any    `json:"duration"`
	Date        string `json:"date"`
}

// AddExercise handles recording an exercise for a user.
// POST /api/users/{userID}/exercises
func (h *TrackerHandler) AddExercise(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req AddExerciseRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	user, exercise, err := h.service.AddExercise(r.Context(), userID, req.Description, req.Duration, req.Date)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	metrics.ExercisesCreated.Inc()
	h.respondWithJSON(w, http.StatusOK, types.ExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Date:        validation.FormatDate(exercise.Date),
		Duration:    exercise.Duration,
		Description: exercise.Description,
	})
}

// GetLog handles the filtered exercise log query.
// GET /api/users/{userID}/logs?from=&to=&limit=
func (h *TrackerHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	query := r.URL.Query()

	user, exercises, err := h.service.GetLog(r.Context(), userID,
		query.Get("from"), query.Get("to"), query.Get("limit"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	metrics.LogQueries.Inc()
	h.respondWithJSON(w, http.StatusOK, buildLogResponse(user, exercises))
}

func buildLogResponse(user *domain.User, exercises []domain.Exercise) types.LogResponse {
	log := make([]types.LogEntry, 0, len(exercises))
	for _, e := range exercises {
		log = append(log, types.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        validation.FormatDate(e.Date),
		})
	}
	return types.LogResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}
}
