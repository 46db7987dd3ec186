// Package config loads the virtual mouse configuration.
//
// Every option has a fixed default calibrated for a 640x480 camera; a
// config.yaml in the working directory or in ~/.virtualmouse overrides
// individual values.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/osamah-s7s/virtualmouse/internal/control"
)

// referenceWidth is the camera width the pinch threshold was tuned at.
// The threshold scales with the configured width so pinches behave the
// same at other resolutions.
const referenceWidth = 640

// Config holds the full application configuration.
type Config struct {
	// CameraPriorities is the device probe order; the first device that
	// delivers a frame wins.
	CameraPriorities []int
	CameraWidth      int
	CameraHeight     int

	// ActivityThreshold is the changed-pixel percentage above which the
	// scene counts as active.
	ActivityThreshold float64

	// ListenAddr is the diagnostics HTTP server address.
	ListenAddr string

	// Control is the gesture engine tuning.
	Control control.Config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("camera.priorities", []int{2, 0, 1, 3, 4})
	v.SetDefault("camera.width", 640)
	v.SetDefault("camera.height", 480)
	v.SetDefault("camera.activity_threshold", 1.0)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("pointer.margin", 100)
	v.SetDefault("pointer.smoothing", 7.0)
	v.SetDefault("pinch.threshold", 40.0)
	v.SetDefault("drag.hold", "300ms")
	v.SetDefault("click.cooldown", "300ms")
	v.SetDefault("scroll.base", 5.0)
	v.SetDefault("scroll.max", 20.0)
	v.SetDefault("scroll.interval", "20ms")
	v.SetDefault("scroll.history", 3)
	v.SetDefault("scroll.neutral_ratio", 0.2)
	v.SetDefault("scroll.threshold", 0.5)
	v.SetDefault("scroll.boost", 15.0)
}

// DefaultDataDir returns the directory holding the settings database.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".virtualmouse"
	}
	return filepath.Join(homeDir, ".virtualmouse")
}

// Load reads config.yaml from the working directory or ~/.virtualmouse and
// applies it over the defaults. A missing config file is not an error.
func Load() (*Config, error) {
	return LoadWithOverrides(nil)
}

// LoadWithOverrides loads the configuration and then applies persisted
// tuning overrides on top of both the defaults and config.yaml. Override
// keys use the same dotted paths as the config file, values are parsed the
// same way.
func LoadWithOverrides(overrides map[string]string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".virtualmouse"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		CameraPriorities:  v.GetIntSlice("camera.priorities"),
		CameraWidth:       v.GetInt("camera.width"),
		CameraHeight:      v.GetInt("camera.height"),
		ActivityThreshold: v.GetFloat64("camera.activity_threshold"),
		ListenAddr:        v.GetString("server.addr"),
	}

	ctl := control.Config{
		FrameWidth:         cfg.CameraWidth,
		FrameHeight:        cfg.CameraHeight,
		FrameMargin:        v.GetInt("pointer.margin"),
		Smoothing:          v.GetFloat64("pointer.smoothing"),
		PinchThreshold:     v.GetFloat64("pinch.threshold"),
		DragHold:           v.GetDuration("drag.hold"),
		ClickCooldown:      v.GetDuration("click.cooldown"),
		ScrollBase:         v.GetFloat64("scroll.base"),
		ScrollMax:          v.GetFloat64("scroll.max"),
		ScrollInterval:     v.GetDuration("scroll.interval"),
		ScrollHistory:      v.GetInt("scroll.history"),
		ScrollNeutralRatio: v.GetFloat64("scroll.neutral_ratio"),
		ScrollThreshold:    v.GetFloat64("scroll.threshold"),
		ScrollBoost:        v.GetFloat64("scroll.boost"),
	}

	// The pinch threshold is resolution-relative.
	ctl.PinchThreshold *= float64(cfg.CameraWidth) / referenceWidth

	cfg.Control = ctl
	return cfg, nil
}
