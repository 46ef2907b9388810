// Package config loads the engine settings file. All values have working
// defaults so the game runs without any file present.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/warren/internal/level"
)

// Config is the root of the engine settings.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Render RenderConfig `yaml:"render"`
	Player PlayerConfig `yaml:"player"`
	Level  LevelConfig  `yaml:"level"`
}

// ScreenConfig fixes the output surface layout: the 3D viewport plus the
// reserved HUD strip below it.
type ScreenConfig struct {
	Width      int `yaml:"width"`
	ViewHeight int `yaml:"view_height"`
	HUDHeight  int `yaml:"hud_height"`
}

// TotalHeight is the full frame height including the HUD strip.
func (s ScreenConfig) TotalHeight() int {
	return s.ViewHeight + s.HUDHeight
}

// RenderConfig tunes the raycasting pass.
type RenderConfig struct {
	FOVDegrees      float64 `yaml:"fov_degrees"`
	RayCount        int     `yaml:"ray_count"`
	MaxViewDistance float64 `yaml:"max_view_distance"` // World units
	VisionRadius    float64 `yaml:"vision_radius"`     // Fog-of-war radius, world units
}

// FOV returns the field of view in radians.
func (r RenderConfig) FOV() float64 {
	return r.FOVDegrees * math.Pi / 180
}

// PlayerConfig tunes movement.
type PlayerConfig struct {
	MoveSpeed float64 `yaml:"move_speed"` // World units per frame
	RotSpeed  float64 `yaml:"rot_speed"`  // Radians per frame
}

// LevelConfig selects the starting tier and generation seed.
type LevelConfig struct {
	Tier string `yaml:"tier"` // "small", "medium", or "large"
	Seed int64  `yaml:"seed"` // 0 = random
}

// StartTier maps the configured tier name to a level tier.
func (l LevelConfig) StartTier() level.Tier {
	switch l.Tier {
	case "medium":
		return level.TierMedium
	case "large":
		return level.TierLarge
	default:
		return level.TierSmall
	}
}

// Default returns the reference configuration: 1900x900 viewport with a
// 100px HUD strip and one ray per two screen columns.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:      1900,
			ViewHeight: 900,
			HUDHeight:  100,
		},
		Render: RenderConfig{
			FOVDegrees:      66,
			RayCount:        950,
			MaxViewDistance: 32 * level.BlockSize,
			VisionRadius:    5 * level.BlockSize,
		},
		Player: PlayerConfig{
			MoveSpeed: 7.0,
			RotSpeed:  math.Pi / 33,
		},
		Level: LevelConfig{
			Tier: "small",
		},
	}
}

// Load reads a YAML settings file, layering it over the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.ViewHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Screen.Width, c.Screen.ViewHeight)
	}
	if c.Render.RayCount <= 0 {
		return fmt.Errorf("ray_count must be positive, got %d", c.Render.RayCount)
	}
	if c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180 {
		return fmt.Errorf("fov_degrees must be in (0, 180), got %v", c.Render.FOVDegrees)
	}
	return nil
}
