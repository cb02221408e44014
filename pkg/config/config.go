// Package config holds the tunable parameters of the navigation controller
// and loads overrides from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from either a Go duration
// string ("300ms") or a bare integer of milliseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var ms int
	if err := value.Decode(&ms); err != nil {
		return fmt.Errorf("duration must be a string or integer milliseconds: %w", err)
	}
	*d = Duration(time.Duration(ms) * time.Millisecond)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config carries every tunable the controller reads. The hover-close delay
// and scroll threshold were inherited as observed values without a documented
// rationale, so both stay configurable with those values as defaults.
type Config struct {
	// CompactBreakpoint is the terminal width, in columns, below which the
	// compact (off-canvas) menu replaces the desktop dropdowns.
	CompactBreakpoint int `yaml:"compact_breakpoint"`

	// HoverCloseDelay is the grace period between the pointer leaving a
	// dropdown trigger/panel and the dropdown closing.
	HoverCloseDelay Duration `yaml:"hover_close_delay"`

	// ScrollThreshold is the content offset, in lines, past which the header
	// gets its scrolled treatment.
	ScrollThreshold int `yaml:"scroll_threshold"`

	// EdgeMargin is the minimum gap, in columns, kept between an open
	// dropdown panel and the terminal edges.
	EdgeMargin int `yaml:"edge_margin"`

	// WheelLines is how many content lines one wheel step scrolls.
	WheelLines int `yaml:"wheel_lines"`
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		CompactBreakpoint: 96,
		HoverCloseDelay:   Duration(300 * time.Millisecond),
		ScrollThreshold:   50,
		EdgeMargin:        2,
		WheelLines:        3,
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Defaults(), err
	}
	return cfg, nil
}

// Validate rejects values the controller cannot work with.
func (c Config) Validate() error {
	if c.CompactBreakpoint < 0 {
		return fmt.Errorf("compact_breakpoint must not be negative")
	}
	if c.HoverCloseDelay < 0 {
		return fmt.Errorf("hover_close_delay must not be negative")
	}
	if c.ScrollThreshold < 0 {
		return fmt.Errorf("scroll_threshold must not be negative")
	}
	if c.EdgeMargin < 0 {
		return fmt.Errorf("edge_margin must not be negative")
	}
	if c.WheelLines < 1 {
		return fmt.Errorf("wheel_lines must be at least 1")
	}
	return nil
}
