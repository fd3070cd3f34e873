// Package config provides the visualizer's tunables. Defaults match the
// original fantasy-console dimensions; a JSON file can override them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all settings for a run.
type Config struct {
	Screen ScreenConfig `json:"screen"`
	Viewer ViewerConfig `json:"viewer"`
	Scene  SceneConfig  `json:"scene"`
}

// ScreenConfig defines the logical screen and the window scale.
type ScreenConfig struct {
	Width   int     `json:"width"`   // Logical width in pixels
	Height  int     `json:"height"`  // Logical height in pixels
	Padding float64 `json:"padding"` // Inset of the boundary walls from each edge
	Scale   int     `json:"scale"`   // Window pixels per logical pixel
}

// ViewerConfig defines the viewer and its ray fan.
type ViewerConfig struct {
	FOVDegrees   float64 `json:"fov_degrees"`   // Total fan width, one ray per degree
	MoveSpeed    float64 `json:"move_speed"`    // Units moved per active direction per tick
	MarkerRadius float64 `json:"marker_radius"` // Radius of the viewer's circle marker
}

// SceneConfig defines obstacle generation.
type SceneConfig struct {
	Seed int64 `json:"seed"` // Random seed; 0 means seed from the clock
}

// Default returns the stock configuration: a 240x136 field with padding 2,
// a 90 degree fan, and a 4x window scale.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:   240,
			Height:  136,
			Padding: 2,
			Scale:   4,
		},
		Viewer: ViewerConfig{
			FOVDegrees:   90,
			MoveSpeed:    1,
			MarkerRadius: 2,
		},
		Scene: SceneConfig{
			Seed: 0,
		},
	}
}

// Load loads configuration from a JSON file, merged over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a runnable setup.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Scale <= 0 {
		return fmt.Errorf("invalid window scale %d", c.Screen.Scale)
	}
	if c.Screen.Padding < 0 || c.Screen.Padding*2 >= float64(c.Screen.Width) || c.Screen.Padding*2 >= float64(c.Screen.Height) {
		return fmt.Errorf("padding %g does not fit the screen", c.Screen.Padding)
	}
	if c.Viewer.FOVDegrees < 2 || c.Viewer.FOVDegrees > 360 {
		return fmt.Errorf("field of view %g degrees out of range", c.Viewer.FOVDegrees)
	}
	return nil
}
