package root

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eratracker/internal/engine"
)

type cli struct {
	t       *testing.T
	cfgFile string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ERA_STORAGE_DRIVER", "sqlite")
	t.Setenv("ERA_DB_PATH", filepath.Join(dir, "era.db"))
	t.Setenv("ERA_LOG_FILE", filepath.Join(dir, "era.log"))
	return &cli{t: t, cfgFile: filepath.Join(dir, "config.yaml")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", c.cfgFile}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "era %v", args)
	return out
}

func TestGemFillUnlocksShrine(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("gem", "add")
	assert.Contains(t, out, "1 / 8")

	out = c.mustRun("gem", "set", "8")
	assert.Contains(t, out, "GEM COMPLETE")
	assert.Contains(t, out, "Candle unlocked")

	out = c.mustRun("shrine", "place", "candle")
	assert.Contains(t, out, "Placed")

	_, err := c.run("shrine", "place", "crown")
	var locked engine.LockedError
	assert.True(t, errors.As(err, &locked))
}

func TestDestructiveCommandsNeedYes(t *testing.T) {
	c := newCLI(t)
	c.mustRun("gem", "set", "3")

	for _, args := range [][]string{
		{"gem", "reset"},
		{"garden", "reset-week"},
		{"wall", "reset"},
		{"restore", "1"},
	} {
		_, err := c.run(args...)
		require.Error(t, err, "era %v", args)
		assert.Equal(t, 2, exitCode(err), "era %v", args)
	}
	assert.Contains(t, c.mustRun("gem"), "3 / 8")

	assert.Contains(t, c.mustRun("gem", "reset", "--yes"), "0 / 8")
}

func TestWallCompleteRejectsPartialWall(t *testing.T) {
	c := newCLI(t)
	c.mustRun("wall", "set", "7")

	_, err := c.run("wall", "complete")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "7 of 12 bricks placed")
	assert.Equal(t, 2, exitCode(err))

	c.mustRun("wall", "set", "99")
	out := c.mustRun("wall", "complete")
	assert.Contains(t, out, "wall #1")
}

func TestAuraAndExport(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("aura", "log", "222,", "4")
	assert.Contains(t, out, "222: ")
	assert.Contains(t, c.mustRun("aura", "show"), "dominant 2")

	out = c.mustRun("export")
	assert.Contains(t, out, "Era Tracker report for")
	assert.Contains(t, out, "Aura: 2, 4 (dominant 2)")
}

func TestHistoryAndRestore(t *testing.T) {
	c := newCLI(t)
	c.mustRun("gem", "set", "5")

	out := c.mustRun("history")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "#2")

	c.mustRun("restore", "1", "--yes")
	assert.Contains(t, c.mustRun("gem"), "0 / 8")

	_, err := c.run("restore", "abc", "--yes")
	assert.Error(t, err)
}

func TestConfigShowReflectsEnv(t *testing.T) {
	c := newCLI(t)
	t.Setenv("ERA_GEM_TARGET", "5")

	out := c.mustRun("config", "show")
	assert.Contains(t, out, "gem_target: 5")
	assert.Contains(t, out, "driver: sqlite")

	c.mustRun("config", "init")
	_, err := c.run("config", "init")
	assert.Error(t, err)
}

func TestInvalidConfigIsReported(t *testing.T) {
	c := newCLI(t)
	t.Setenv("ERA_STORAGE_DRIVER", "redis")
	_, err := c.run("status")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}

func TestStatsValidatesDays(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("stats", "--days", "0")
	assert.Error(t, err)
	assert.Contains(t, c.mustRun("stats"), "Last 7 days")
}
