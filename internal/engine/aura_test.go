package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseDigit(t *testing.T) {
	cases := []struct {
		token string
		want  int
		ok    bool
	}{
		{"222", 2, true},
		{"5", 5, true},
		{" 444 ", 4, true},
		{"１１３", 3, true},
		{"1213", 2, true},
		{"111", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"０５５", 5, true},
	}
	for _, tc := range cases {
		got, ok := BaseDigit(tc.token)
		assert.Equal(t, tc.ok, ok, "BaseDigit(%q)", tc.token)
		assert.Equal(t, tc.want, got, "BaseDigit(%q)", tc.token)
	}
}

func TestDominantTheme(t *testing.T) {
	cases := []struct {
		name string
		log  []string
		want int
		ok   bool
	}{
		{"majority", []string{"222", "333", "222"}, 2, true},
		{"tie goes low", []string{"333", "222"}, 2, true},
		{"empty", nil, 0, false},
		{"nothing recognized", []string{"11", "x"}, 0, false},
		{"single", []string{"55"}, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DominantTheme(tc.log)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLogTokenJournal(t *testing.T) {
	svc, _ := newTestService(t, WithRand(fixedRand{n: 1}))
	ctx := context.Background()

	assert.False(t, svc.LogToken(ctx, "   ").Logged)
	assert.Empty(t, svc.Aura().Log)

	res := svc.LogToken(ctx, "333")
	require.True(t, res.Logged)
	assert.True(t, res.Added)
	assert.Equal(t, "[09:30] 333: Play opens new doors; curiosity leads.\n", res.Line)

	res = svc.LogToken(ctx, "3")
	assert.False(t, res.Added)

	res = svc.LogToken(ctx, "hello")
	assert.False(t, res.HasBase)
	assert.Equal(t, "[09:30] hello: A gentle message arrives.\n", res.Line)

	v := svc.Aura()
	assert.Equal(t, []int{3}, v.Numbers)
	assert.Equal(t, []string{"333", "3", "hello"}, v.Log)
	assert.Equal(t, 3, v.Dominant)
	assert.Equal(t, "#B0306A", v.Color)
	assert.Len(t, v.JournalLines(), 3)
}

func TestLogInputSplits(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.Nil(t, svc.LogInput(ctx, " , | "))

	out := svc.LogInput(ctx, "555, 22|4  444")
	require.Len(t, out, 4)
	v := svc.Aura()
	assert.Equal(t, []string{"555", "22", "4", "444"}, v.Log)
	assert.Equal(t, []int{5, 2, 4}, v.Numbers)
	assert.Equal(t, []string{"#7393B3", "#FFA07A", "#8E7CC3"}, v.Colors)
	assert.Equal(t, 4, v.Dominant)
}

func TestAuraNeutralWithoutLog(t *testing.T) {
	svc, _ := newTestService(t)
	v := svc.AuraFor("2026-01-01")
	assert.False(t, v.HasDominant)
	assert.Equal(t, NeutralAuraColor, v.Color)
	_, exists := svc.Snapshot().Days["2026-01-01"]
	assert.False(t, exists)
}

func TestAuraMessagesKeepBrowserText(t *testing.T) {
	svc, _ := newTestService(t, WithRand(fixedRand{n: 0}))
	ctx := context.Background()

	res := svc.LogToken(ctx, "222")
	assert.Equal(t, "[09:30] 222: Support is near — small steady steps matter.\n", res.Line)
	res = svc.LogToken(ctx, "444")
	assert.Equal(t, "[09:30] 444: Grounding energy — build one reliable habit.\n", res.Line)
}
