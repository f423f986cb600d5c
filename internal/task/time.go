package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout used for timestamps in the task file.
const timeLayout = "2006-01-02 15:04:05"

// Time is a timestamp stored at second precision in local time,
// serialized as "YYYY-MM-DD HH:MM:SS".
type Time struct {
	time.Time
}

// Now returns the current local time truncated to second precision.
func Now() Time {
	return Time{time.Now().Local().Truncate(time.Second)}
}

// String returns the timestamp in the persisted layout.
func (t Time) String() string {
	return t.Format(timeLayout)
}

// MarshalJSON serializes the timestamp in the persisted layout.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(timeLayout))
}

// UnmarshalJSON parses a timestamp in the persisted layout.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse timestamp: %w", err)
	}

	parsed, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}

	t.Time = parsed
	return nil
}
