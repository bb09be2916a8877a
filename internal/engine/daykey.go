package engine

import (
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey formats the calendar day t falls on in loc as YYYY-MM-DD.
// A nil loc uses t's own location.
func DayKey(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key into midnight UTC of that civil date.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.Parse(dayKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key: %q", key)
	}
	return t, nil
}

// AddDays shifts a day key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDayKey(key)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(dayKeyLayout), nil
}

// RecentDayKeys returns the n calendar days ending at today, newest first:
// [today, yesterday, ...]. Callers that render oldest-to-newest reverse it.
// Date arithmetic runs on the civil date so DST shifts cannot skip or repeat a day.
func RecentDayKeys(today string, n int) []string {
	t, err := ParseDayKey(today)
	if err != nil || n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, t.AddDate(0, 0, -i).Format(dayKeyLayout))
	}
	return out
}
