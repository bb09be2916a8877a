package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTarotIndexIsByteSum(t *testing.T) {
	assert.Equal(t, 3, TarotIndex("2026-10-15"))
	assert.Equal(t, 4, TarotIndex("2026-10-16"))
	assert.Equal(t, "hermit", Cards[TarotIndex("2026-10-15")].ID)
}

func TestAssignIfAbsentIsStable(t *testing.T) {
	svc, kv := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, "hermit", svc.Tarot().ID)

	first, err := svc.AssignIfAbsent(ctx, "2026-10-16")
	require.NoError(t, err)
	second, err := svc.AssignIfAbsent(ctx, "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, "empress", first)
	assert.Equal(t, first, second)

	_, err = svc.AssignIfAbsent(ctx, "yesterday")
	assert.Error(t, err)

	reopened := NewService(ctx, kv, WithClock(svc.now), WithRand(fixedRand{}))
	assert.Equal(t, "empress", *reopened.Day("2026-10-16").TarotID)
}

func TestStoredCardIsNeverRedrawn(t *testing.T) {
	svc, _ := newTestService(t)
	blob := `{"version":2,"days":{"2026-10-15":{"tarotId":"sun"}}}`
	require.NoError(t, svc.Restore(context.Background(), blob))
	assert.Equal(t, "sun", svc.Tarot().ID)
}

func TestCardByIDFallsBack(t *testing.T) {
	c, ok := CardByID("fool")
	assert.False(t, ok)
	assert.Equal(t, Cards[0], c)
}
