package utils

import "time"

// ParseDate parses a YYYY-MM-DD query parameter.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}

// DaysInclusive counts the days between two dates, both ends included.
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
