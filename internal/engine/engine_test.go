package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eratracker/internal/storage"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

type fixedRand struct{ n int }

func (r fixedRand) IntN(n int) int { return r.n % n }

func newTestService(t *testing.T, opts ...Option) (*Service, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV(storage.DefaultHistory)
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithLocation(time.UTC),
		WithRand(fixedRand{}),
	}
	svc := NewService(context.Background(), kv, append(base, opts...)...)
	return svc, kv
}

func TestAddWinCompletesExactlyOnce(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= DefaultGemTarget+2; i++ {
		res := svc.AddWin(ctx)
		if res.Facets != i {
			t.Fatalf("call %d: facets=%d, want %d", i, res.Facets, i)
		}
		if res.JustCompleted != (i == DefaultGemTarget) {
			t.Fatalf("call %d: JustCompleted=%v", i, res.JustCompleted)
		}
		if res.Completed != (i >= DefaultGemTarget) {
			t.Fatalf("call %d: Completed=%v", i, res.Completed)
		}
	}
	if got := svc.Shrine().Level; got != 1 {
		t.Fatalf("shrine level=%d, want 1", got)
	}
	if got := svc.Gem().Percent; got != 100 {
		t.Fatalf("percent=%d, want 100", got)
	}
}

func TestResetAndRefillDoesNotAdvanceShrineAgain(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res := svc.FillGem(ctx)
	require.True(t, res.JustCompleted)
	require.True(t, res.ShrineAdvanced)

	svc.SetGemNotes(ctx, "notes  \n")
	assert.Equal(t, "notes", svc.Gem().Notes)

	res = svc.ResetToday(ctx)
	assert.Equal(t, 0, res.Facets)
	assert.True(t, res.Completed)
	assert.Empty(t, svc.Gem().Notes)

	res = svc.SetWins(ctx, DefaultGemTarget)
	assert.False(t, res.JustCompleted)
	assert.Equal(t, 1, svc.Shrine().Level)
}

func TestSetWinsClampsAtZero(t *testing.T) {
	svc, _ := newTestService(t)
	res := svc.SetWins(context.Background(), -4)
	assert.Equal(t, 0, res.Facets)
	assert.Equal(t, 0, res.Percent)
	assert.False(t, res.Completed)
}

func TestGemTargetOption(t *testing.T) {
	svc, _ := newTestService(t, WithGemTarget(3))
	ctx := context.Background()
	svc.AddWin(ctx)
	svc.AddWin(ctx)
	res := svc.AddWin(ctx)
	assert.True(t, res.JustCompleted)
	assert.Equal(t, 3, res.Target)
}

func TestGemPercent(t *testing.T) {
	cases := []struct {
		facets, target, want int
	}{
		{0, 8, 0},
		{1, 8, 13},
		{3, 8, 38},
		{8, 8, 100},
		{20, 8, 100},
		{-1, 8, 0},
		{5, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GemPercent(tc.facets, tc.target), "GemPercent(%d, %d)", tc.facets, tc.target)
	}
}

func TestShrineNeverExceedsItemCount(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	day := testNow
	svc.now = func() time.Time { return day }
	for i := 0; i < len(ShrineItems)+3; i++ {
		svc.FillGem(ctx)
		day = day.AddDate(0, 0, 1)
	}
	assert.Equal(t, len(ShrineItems), svc.Shrine().Level)
}

func TestSetBricksClamps(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, tc := range []struct{ in, want int }{
		{-5, 0}, {0, 0}, {7, 7}, {12, 12}, {13, 12}, {1000, 12},
	} {
		res := svc.SetBricks(ctx, tc.in)
		assert.Equal(t, tc.want, res.Bricks, "SetBricks(%d)", tc.in)
	}
}

func TestAddBrickStopsAtCapacity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < BrickCapacity; i++ {
		require.True(t, svc.AddBrick(ctx).Changed)
	}
	res := svc.AddBrick(ctx)
	assert.False(t, res.Changed)
	assert.Equal(t, BrickCapacity, res.Bricks)
	assert.True(t, svc.Wall().Full)
}

func TestCompleteWall(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.SetBricks(ctx, 7)
	_, err := svc.CompleteWall(ctx)
	var rej RejectionError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "cannot complete wall: 7 of 12 bricks placed", err.Error())
	w := svc.Wall()
	assert.Equal(t, 7, w.Bricks)
	assert.Equal(t, 0, w.Walls)

	svc.SetBricks(ctx, BrickCapacity)
	res, err := svc.CompleteWall(ctx)
	require.NoError(t, err)
	assert.True(t, res.Finished)
	assert.Equal(t, 0, res.Bricks)
	assert.Equal(t, 1, res.Walls)
	assert.Equal(t, BrickCapacity, res.Total)

	svc.SetBricks(ctx, 4)
	res = svc.ResetWall(ctx)
	assert.Equal(t, 0, res.Bricks)
	assert.Equal(t, 1, res.Walls)
}

func TestGardenToggleWindow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.ToggleBloom(ctx, "2026-10-09")
	require.NoError(t, err)
	assert.True(t, res.Bloom)
	assert.Equal(t, 1, res.Week)

	for _, key := range []string{"2026-10-08", "2026-10-16", "not-a-day"} {
		_, err := svc.ToggleBloom(ctx, key)
		var rej RejectionError
		assert.True(t, errors.As(err, &rej), key)
	}

	today := svc.ToggleTodayBloom(ctx)
	assert.True(t, today.Bloom)
	assert.Equal(t, 2, today.Week)
	assert.True(t, svc.BloomToday(ctx).Bloom)

	v := svc.Garden()
	require.Len(t, v.Days, BloomWindow)
	assert.Equal(t, "2026-10-09", v.Days[0].Key)
	assert.Equal(t, "2026-10-15", v.Days[BloomWindow-1].Key)
	assert.True(t, v.Days[BloomWindow-1].Today)
	assert.Equal(t, 2, v.Count)
	assert.Equal(t, 2, svc.WeeklyBloomCount())
}

func TestResetRecentWindowCreatesNoRecords(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ToggleBloom(ctx, "2026-10-12")
	require.NoError(t, err)
	svc.BloomToday(ctx)

	before := len(svc.Snapshot().Days)
	n := svc.ResetRecentWindow(ctx, BloomWindow)
	assert.Equal(t, before, n)
	assert.Len(t, svc.Snapshot().Days, before)
	assert.Equal(t, 0, svc.Garden().Count)
}

func TestTogglePlacementRespectsLocks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res := svc.TogglePlacement(ctx, "candle")
	assert.True(t, res.Locked)
	assert.False(t, res.Changed)
	var locked LockedError
	require.True(t, errors.As(res.Err(), &locked))
	assert.Equal(t, 1, locked.RequiredLevel)
	assert.Empty(t, svc.Snapshot().Shrine.Placed)

	unknown := svc.TogglePlacement(ctx, "dragon")
	assert.False(t, unknown.Known)
	assert.Error(t, unknown.Err())

	svc.FillGem(ctx)
	res = svc.TogglePlacement(ctx, "candle")
	assert.True(t, res.Changed)
	assert.True(t, res.Placed)
	assert.NoError(t, res.Err())
	assert.Equal(t, []string{"candle"}, svc.Snapshot().Shrine.Placed)

	assert.True(t, svc.TogglePlacement(ctx, "crystal").Locked)

	res = svc.TogglePlacement(ctx, "candle")
	assert.False(t, res.Placed)
	assert.Empty(t, svc.Snapshot().Shrine.Placed)
}

func TestChapterTitle(t *testing.T) {
	cases := []struct {
		in   ChapterInput
		want string
	}{
		{ChapterInput{}, "The Quiet Prologue"},
		{ChapterInput{MonthBlooms: 1}, "The Awakening Era"},
		{ChapterInput{MonthWins: 40}, "The Spark Era"},
		{ChapterInput{MonthWins: 40, MonthBlooms: 10}, "The Blooming Era"},
		{ChapterInput{Walls: 2}, "The Architect Era"},
		{ChapterInput{MonthWins: 100, MonthBlooms: 15, Walls: 5}, "The Golden Era"},
		{ChapterInput{MonthWins: 160, MonthBlooms: 20, Walls: 3}, "The Coronation Era"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ChapterTitle(tc.in), "%+v", tc.in)
	}
}
