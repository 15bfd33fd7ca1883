// Package config loads, validates and renders plrefresh configuration
// documents. YAML and TOML are both accepted; fields missing from a document
// keep their defaults.
package config

import (
	"time"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

// Footer kinds accepted by footer.kind.
const (
	FooterBack  = "back"
	FooterAuto  = "auto"
	FooterPlain = "plain"
)

// Config is the full plrefresh configuration document.
type Config struct {
	Header    HeaderConfig    `yaml:"header" toml:"header"`
	Footer    FooterConfig    `yaml:"footer" toml:"footer"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Store     StoreConfig     `yaml:"store" toml:"store"`
	Log       LogConfig       `yaml:"log" toml:"log"`
	Demo      DemoConfig      `yaml:"demo" toml:"demo"`
}

// HeaderConfig tunes the pull-down header. Height is in terminal rows.
type HeaderConfig struct {
	Height                   float64 `yaml:"height" toml:"height" validate:"gt=0,lte=20"`
	AutomaticallyChangeAlpha bool    `yaml:"automatically_change_alpha" toml:"automatically_change_alpha"`
	LastUpdatedKey           string  `yaml:"last_updated_key" toml:"last_updated_key" validate:"storage_key"`
}

// FooterConfig selects and tunes the load-more footer.
type FooterConfig struct {
	Kind                 string  `yaml:"kind" toml:"kind" validate:"footer_kind"`
	Height               float64 `yaml:"height" toml:"height" validate:"gt=0,lte=20"`
	IgnoredBottomInset   float64 `yaml:"ignored_bottom_inset" toml:"ignored_bottom_inset" validate:"gte=0"`
	AutomaticallyRefresh bool    `yaml:"automatically_refresh" toml:"automatically_refresh"`
	TriggerPercent       float64 `yaml:"trigger_percent" toml:"trigger_percent" validate:"gt=0,lte=1"`
	// AutoTriggerTimes is the auto footer's per-gesture budget; -1 removes
	// the cap.
	AutoTriggerTimes int `yaml:"auto_trigger_times" toml:"auto_trigger_times" validate:"eq=-1|min=1"`
}

// AnimationConfig sets the two animation durations.
type AnimationConfig struct {
	Fast time.Duration `yaml:"fast" toml:"fast" validate:"gt=0"`
	Slow time.Duration `yaml:"slow" toml:"slow" validate:"gt=0"`
}

// StoreConfig locates the last-updated store. An empty Path resolves to
// the per-user default.
type StoreConfig struct {
	Backend string `yaml:"backend" toml:"backend" validate:"oneof=file memory none"`
	Path    string `yaml:"path,omitempty" toml:"path,omitempty"`
}

// LogConfig mirrors logger.Options.
type LogConfig struct {
	Level         string `yaml:"level" toml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	HumanReadable bool   `yaml:"human_readable" toml:"human_readable"`
	File          string `yaml:"file,omitempty" toml:"file,omitempty"`
}

// DemoConfig drives the interactive feed.
type DemoConfig struct {
	Items     int           `yaml:"items" toml:"items" validate:"gte=0,lte=10000"`
	PageSize  int           `yaml:"page_size" toml:"page_size" validate:"gte=1,lte=1000"`
	MaxPages  int           `yaml:"max_pages" toml:"max_pages" validate:"gte=1"`
	LoadDelay time.Duration `yaml:"load_delay" toml:"load_delay" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Header: HeaderConfig{
			Height:                   3,
			AutomaticallyChangeAlpha: true,
			LastUpdatedKey:           refresh.DefaultLastUpdatedTimeKey,
		},
		Footer: FooterConfig{
			Kind:                 FooterBack,
			Height:               2,
			AutomaticallyRefresh: true,
			TriggerPercent:       1,
			AutoTriggerTimes:     1,
		},
		Animation: AnimationConfig{
			Fast: refresh.DefaultFastAnimation,
			Slow: refresh.DefaultSlowAnimation,
		},
		Store: StoreConfig{Backend: "file"},
		Log:   LogConfig{Level: "info", HumanReadable: true},
		Demo: DemoConfig{
			Items:     30,
			PageSize:  10,
			MaxPages:  3,
			LoadDelay: 600 * time.Millisecond,
		},
	}
}

// HeaderOptions translates the header and animation sections into library
// options.
func (c *Config) HeaderOptions() []refresh.Option {
	return []refresh.Option{
		refresh.WithExtent(c.Header.Height),
		refresh.WithAutomaticallyChangeAlpha(c.Header.AutomaticallyChangeAlpha),
		refresh.WithAnimationDurations(c.Animation.Fast, c.Animation.Slow),
	}
}

// FooterOptions translates the footer and animation sections into library
// options.
func (c *Config) FooterOptions() []refresh.Option {
	return []refresh.Option{
		refresh.WithExtent(c.Footer.Height),
		refresh.WithAnimationDurations(c.Animation.Fast, c.Animation.Slow),
	}
}
