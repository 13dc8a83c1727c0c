package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PONG_"

// Load layers defaults, the optional TOML file and PONG_* environment overrides, then validates
func Load(path string, lookup LookupFunc) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if lookup != nil {
		if err := cfg.ApplyEnv(lookup); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML file over the current values
// Keys not present in the file keep their values; unknown keys are rejected
func (c *Config) LoadFile(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return nil
}

// envFloats maps environment suffixes to gameplay and display fields
func (c *Config) envFloats() map[string]*float64 {
	return map[string]*float64{
		"PADDLE_WIDTH":   &c.Gameplay.PaddleWidth,
		"PADDLE_HEIGHT":  &c.Gameplay.PaddleHeight,
		"PADDLE_SPEED":   &c.Gameplay.PaddleSpeed,
		"PADDLE_INSET":   &c.Gameplay.PaddleInset,
		"BALL_SIZE":      &c.Gameplay.BallSize,
		"BALL_SPEED":     &c.Gameplay.BallSpeed,
		"SPEED_INCREASE": &c.Gameplay.SpeedIncrease,
		"WALL_THICKNESS": &c.Gameplay.WallThickness,
		"SERVE_SPREAD":   &c.Gameplay.ServeSpread,
		"CELL_WIDTH":     &c.Display.CellWidth,
		"CELL_HEIGHT":    &c.Display.CellHeight,
	}
}

// ApplyEnv overrides values from PONG_* variables
// Key bindings use PONG_KEY_<ACTION>, e.g. PONG_KEY_LEFT_UP=w
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	for suffix, field := range c.envFloats() {
		if s, ok := lookup(EnvPrefix + suffix); ok && s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, suffix, s, err)
			}
			*field = v
		}
	}

	if s, ok := lookup(EnvPrefix + "SEED"); ok && s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q: %v", ErrInvalid, EnvPrefix, s, err)
		}
		c.Seed = v
	}
	if s, ok := lookup(EnvPrefix + "DEBUG"); ok && s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%w: %sDEBUG=%q: %v", ErrInvalid, EnvPrefix, s, err)
		}
		c.Debug = v
	}
	if s, ok := lookup(EnvPrefix + "COLOR"); ok && s != "" {
		c.Display.Color = s
	}

	durations := map[string]*Duration{
		"FRAME_INTERVAL": &c.Timing.FrameInterval,
		"HOLD_WINDOW":    &c.Timing.HoldWindow,
	}
	for suffix, field := range durations {
		if s, ok := lookup(EnvPrefix + suffix); ok && s != "" {
			v, err := time.ParseDuration(s)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, suffix, s, err)
			}
			field.Duration = v
		}
	}

	if c.Keys == nil {
		c.Keys = make(map[string]string)
	}
	for _, action := range []string{"left_up", "left_down", "right_up", "right_down", "quit"} {
		if s, ok := lookup(EnvPrefix + "KEY_" + strings.ToUpper(action)); ok && s != "" {
			c.Keys[action] = s
		}
	}
	return nil
}

// normaliseKey folds case so "A" and "a" count as one key
func normaliseKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
