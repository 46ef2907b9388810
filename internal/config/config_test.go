package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/warren/internal/level"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1900, cfg.Screen.Width)
	assert.Equal(t, 900, cfg.Screen.ViewHeight)
	assert.Equal(t, 100, cfg.Screen.HUDHeight)
	assert.Equal(t, 1000, cfg.Screen.TotalHeight())
	assert.Equal(t, 950, cfg.Render.RayCount)
	assert.InDelta(t, 66*math.Pi/180, cfg.Render.FOV(), 1e-9)
	assert.Equal(t, level.TierSmall, cfg.Level.StartTier())
	assert.NoError(t, cfg.validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warren.yaml")
	data := []byte("screen:\n  width: 800\n  view_height: 600\nlevel:\n  tier: large\n  seed: 99\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Screen.Width)
	assert.Equal(t, 600, cfg.Screen.ViewHeight)
	assert.Equal(t, level.TierLarge, cfg.Level.StartTier())
	assert.Equal(t, int64(99), cfg.Level.Seed)
	// Untouched sections keep their defaults.
	assert.Equal(t, 950, cfg.Render.RayCount)
	assert.Equal(t, 7.0, cfg.Player.MoveSpeed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/warren.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero width":   "screen:\n  width: 0\n",
		"no rays":      "render:\n  ray_count: 0\n",
		"fov too wide": "render:\n  fov_degrees: 200\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "warren.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestStartTierNames(t *testing.T) {
	for name, want := range map[string]level.Tier{
		"small":  level.TierSmall,
		"medium": level.TierMedium,
		"large":  level.TierLarge,
		"bogus":  level.TierSmall,
		"":       level.TierSmall,
	} {
		l := LevelConfig{Tier: name}
		assert.Equal(t, want, l.StartTier(), "tier name %q", name)
	}
}
