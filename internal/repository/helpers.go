package repository

import (
	"encoding/json"
	"strconv"
	"strings"
)

const dateLayout = "2006-01-02"

// weekdaysToString serializes a weekday index set for SQLite storage,
// e.g. []int{0, 2, 4} -> "0,2,4".
func weekdaysToString(days []int) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}

// parseWeekdays deserializes a stored weekday set. Malformed entries are
// skipped; validation happens at the domain layer.
func parseWeekdays(s string) []int {
	if s == "" {
		return nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	return days
}

// warningsToJSON serializes a warning list for SQLite storage. Nil
// round-trips as an empty list.
func warningsToJSON(warnings []string) string {
	if len(warnings) == 0 {
		return "[]"
	}
	data, err := json.Marshal(warnings)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// parseWarnings deserializes a stored warning list.
func parseWarnings(s string) []string {
	if s == "" || s == "[]" {
		return nil
	}
	var warnings []string
	if err := json.Unmarshal([]byte(s), &warnings); err != nil {
		return nil
	}
	return warnings
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
