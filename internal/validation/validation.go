// internal/validation/validation.go
package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"fitlog-tracker/internal/util"
)

// DateLayout is the human-readable calendar-date rendering used in API
// responses, e.g. "Mon Jan 01 2024".
const DateLayout = "Mon Jan 02 2006"

// dateLayouts are the formats accepted for caller-supplied date strings,
// tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	DateLayout,
}

// Error is a user-facing input validation failure. It unwraps to
// util.ErrInvalidInput so callers can match it with errors.Is while the
// message stays clean for the response body.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return util.ErrInvalidInput }

// Username trims surrounding whitespace and rejects empty values.
func Username(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return "", &Error{Msg: "username is required"}
	}
	return username, nil
}

// Description trims surrounding whitespace and rejects empty values.
func Description(raw string) (string, error) {
	description := strings.TrimSpace(raw)
	if description == "" {
		return "", &Error{Msg: "description is required"}
	}
	return description, nil
}

// Duration coerces the raw request value into a whole number of minutes.
// JSON bodies may carry the duration as a number or as a numeric string;
// anything that does not parse as a finite number is rejected. Fractional
// values are truncated toward zero.
func Duration(raw any) (int, error) {
	var s string
	switch v := raw.(type) {
	case nil:
		return 0, &Error{Msg: "duration is required"}
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &Error{Msg: "duration must be a number"}
		}
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		s = v.String()
	case string:
		s = strings.TrimSpace(v)
	default:
		return 0, &Error{Msg: "duration must be a number"}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &Error{Msg: "duration must be a number"}
	}
	return int(f), nil
}

// Date parses a caller-supplied exercise date. An empty or unparsable
// value falls back to the current time; this never fails the request.
func Date(raw string) time.Time {
	if t, ok := parseDate(raw); ok {
		return t
	}
	return time.Now().UTC()
}

// DateBound parses an optional from/to query bound. The second return
// value reports whether the bound should be applied; an unparsable bound
// is simply absent, never an error.
func DateBound(raw string) (time.Time, bool) {
	return parseDate(raw)
}

// Limit parses the optional result-count cap. Absent, non-numeric, zero
// or negative values all mean "no truncation" and yield 0.
func Limit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// FormatDate renders t in the response date format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
