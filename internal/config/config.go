// Package config handles cube client configuration loading and management.
package config

import (
	"errors"
	"fmt"
	gomath "math"
)

// Config holds all client settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Cube     CubeConfig     `yaml:"cube"`
	Camera   CameraConfig   `yaml:"camera"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CubeConfig holds the cube's proportions and turn speeds.
type CubeConfig struct {
	CubeLength   float32 `yaml:"cube_length"`   // side length of one unit cell
	Gap          float32 `yaml:"gap"`           // spacing between cells
	RotateSpeed  float32 `yaml:"rotate_speed"`  // rotation-ball angle multiplier
	ShuffleTurns int     `yaml:"shuffle_turns"` // moves per shuffle
	ShuffleSpeed float32 `yaml:"shuffle_speed"` // radians per second, 0 = instant
	Seed         uint64  `yaml:"seed"`          // shuffle seed, 0 = random
}

// CameraConfig holds the initial view.
type CameraConfig struct {
	Distance float32 `yaml:"distance"`
	Pitch    float32 `yaml:"pitch"` // radians
	Yaw      float32 `yaml:"yaw"`   // radians, pi faces the front
	FovDeg   float32 `yaml:"fov_deg"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Volume float32 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
}

// DebugConfig holds developer aids.
type DebugConfig struct {
	ShowSelection bool   `yaml:"show_selection"` // outline the turning layer
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Cube: CubeConfig{
			CubeLength:   10.0,
			Gap:          0.15,
			RotateSpeed:  1.5,
			ShuffleTurns: 20,
			ShuffleSpeed: 9.42,
		},
		Camera: CameraConfig{
			Distance: 90,
			Pitch:    0.45,
			Yaw:      3.69,
			FovDeg:   45,
		},
		Audio: AudioConfig{
			Volume: 0.8,
		},
		Debug: DebugConfig{
			ShowSelection: true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings the cube cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Cube.CubeLength <= 0 {
		errs = append(errs, fmt.Errorf("cube: cube_length %v must be positive", c.Cube.CubeLength))
	}
	if c.Cube.Gap < 0 {
		errs = append(errs, fmt.Errorf("cube: gap %v must not be negative", c.Cube.Gap))
	}
	if c.Cube.RotateSpeed <= 0 {
		errs = append(errs, fmt.Errorf("cube: rotate_speed %v must be positive", c.Cube.RotateSpeed))
	}
	if c.Cube.ShuffleTurns < 0 {
		errs = append(errs, fmt.Errorf("cube: shuffle_turns %d must not be negative", c.Cube.ShuffleTurns))
	}
	if c.Camera.Pitch <= -gomath.Pi/2 || c.Camera.Pitch >= gomath.Pi/2 {
		errs = append(errs, fmt.Errorf("camera: pitch %v must be in (-pi/2, pi/2)", c.Camera.Pitch))
	}
	if c.Camera.FovDeg <= 0 || c.Camera.FovDeg >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov_deg %v must be in (0, 180)", c.Camera.FovDeg))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio: volume %v must be in [0, 1]", c.Audio.Volume))
	}
	return errors.Join(errs...)
}
