package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKeyUsesLocalCalendarDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	late := time.Date(2026, 10, 16, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-16", DayKey(late, time.UTC))
	assert.Equal(t, "2026-10-15", DayKey(late, ny))
}

func TestRecentDayKeysAcrossDST(t *testing.T) {
	got := RecentDayKeys("2026-11-02", 3)
	assert.Equal(t, []string{"2026-11-02", "2026-11-01", "2026-10-31"}, got)
	assert.Nil(t, RecentDayKeys("2026-11-02", 0))
	assert.Nil(t, RecentDayKeys("nope", 3))

	next, err := AddDays("2026-12-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2027-01-01", next)
}
