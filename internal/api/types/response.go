// internal/api/types/response.go
package types

// UserResponse is the payload returned for a created or listed user.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ExerciseResponse is the payload returned after recording an exercise.
// ID carries the owning user's id, matching the reference contract.
type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// LogEntry is a single exercise within a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the payload returned for a filtered exercise log query.
type LogResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}
