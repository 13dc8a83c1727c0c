package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/vmath"
)

// ErrInvalid wraps every configuration rejection
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of both front-ends
type Config struct {
	Gameplay GameplayConfig    `toml:"gameplay"`
	Display  DisplayConfig     `toml:"display"`
	Window   WindowConfig      `toml:"window"`
	Timing   TimingConfig      `toml:"timing"`
	Keys     map[string]string `toml:"keys"` // action name → key name

	// Seed 0 picks a time-based seed
	Seed  uint64 `toml:"seed"`
	Debug bool   `toml:"debug"`
}

// GameplayConfig holds simulation sizes and speeds in world units
type GameplayConfig struct {
	PaddleWidth   float64 `toml:"paddle_width"`
	PaddleHeight  float64 `toml:"paddle_height"`
	PaddleSpeed   float64 `toml:"paddle_speed"`
	PaddleInset   float64 `toml:"paddle_inset"`
	BallSize      float64 `toml:"ball_size"`
	BallSpeed     float64 `toml:"ball_speed"`
	SpeedIncrease float64 `toml:"speed_increase"`
	WallThickness float64 `toml:"wall_thickness"`
	ServeSpread   float64 `toml:"serve_spread"`
}

// DisplayConfig controls the terminal projection
type DisplayConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	Color      string  `toml:"color"` // auto, 256, truecolor
}

// WindowConfig controls the graphical front-end
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// TimingConfig controls the terminal frame loop
type TimingConfig struct {
	FrameInterval Duration `toml:"frame_interval"`
	HoldWindow    Duration `toml:"hold_window"`
}

// Duration decodes TOML strings like "16ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the classic game settings
func Default() *Config {
	return &Config{
		Gameplay: GameplayConfig{
			PaddleWidth:   constants.PaddleWidth,
			PaddleHeight:  constants.PaddleHeight,
			PaddleSpeed:   constants.PaddleSpeed,
			PaddleInset:   constants.PaddleInset,
			BallSize:      constants.BallSize,
			BallSpeed:     constants.BallSpeed,
			SpeedIncrease: constants.BallSpeedIncrease,
			WallThickness: constants.WallThickness,
			ServeSpread:   constants.ServeSpread,
		},
		Display: DisplayConfig{
			CellWidth:  constants.CellWidth,
			CellHeight: constants.CellHeight,
			Color:      "auto",
		},
		Window: WindowConfig{
			Width:  constants.WindowWidth,
			Height: constants.WindowHeight,
			Title:  constants.WindowTitle,
		},
		Timing: TimingConfig{
			FrameInterval: Duration{constants.FrameUpdateInterval},
			HoldWindow:    Duration{constants.KeyHoldWindow},
		},
		Keys: map[string]string{
			"left_up":    "a",
			"left_down":  "z",
			"right_up":   "j",
			"right_down": "n",
		},
	}
}

// Tuning converts gameplay settings into simulation constants
func (c *Config) Tuning() engine.Tuning {
	t := engine.DefaultTuning()
	g := c.Gameplay
	t.PaddleSize = vmath.Vec2{X: g.PaddleWidth, Y: g.PaddleHeight}
	t.PaddleSpeed = g.PaddleSpeed
	t.PaddleInset = g.PaddleInset
	t.BallSize = g.BallSize
	t.BallSpeed = g.BallSpeed
	t.SpeedIncrease = g.SpeedIncrease
	t.WallThickness = g.WallThickness
	t.ServeSpread = g.ServeSpread
	return t
}

// Validate rejects settings that no viewport could run
func (c *Config) Validate() error {
	g := c.Gameplay
	if err := c.validateFinite(); err != nil {
		return err
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"gameplay.paddle_width", g.PaddleWidth},
		{"gameplay.paddle_height", g.PaddleHeight},
		{"gameplay.paddle_speed", g.PaddleSpeed},
		{"gameplay.ball_size", g.BallSize},
		{"gameplay.ball_speed", g.BallSpeed},
		{"gameplay.wall_thickness", g.WallThickness},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.v)
		}
	}

	if g.SpeedIncrease < 1 {
		return fmt.Errorf("%w: gameplay.speed_increase must be at least 1, got %v", ErrInvalid, g.SpeedIncrease)
	}
	if g.ServeSpread < 0 {
		return fmt.Errorf("%w: gameplay.serve_spread must not be negative, got %v", ErrInvalid, g.ServeSpread)
	}
	if g.PaddleInset < 0 {
		return fmt.Errorf("%w: gameplay.paddle_inset must not be negative, got %v", ErrInvalid, g.PaddleInset)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Timing.FrameInterval.Duration <= 0 {
		return fmt.Errorf("%w: timing.frame_interval must be positive", ErrInvalid)
	}
	if c.Timing.HoldWindow.Duration <= 0 {
		return fmt.Errorf("%w: timing.hold_window must be positive", ErrInvalid)
	}

	return c.validateKeys()
}

// validateFinite rejects NaN and ±Inf in any float setting
func (c *Config) validateFinite() error {
	g := c.Gameplay
	fields := []struct {
		name string
		v    float64
	}{
		{"gameplay.paddle_width", g.PaddleWidth},
		{"gameplay.paddle_height", g.PaddleHeight},
		{"gameplay.paddle_speed", g.PaddleSpeed},
		{"gameplay.paddle_inset", g.PaddleInset},
		{"gameplay.ball_size", g.BallSize},
		{"gameplay.ball_speed", g.BallSpeed},
		{"gameplay.speed_increase", g.SpeedIncrease},
		{"gameplay.wall_thickness", g.WallThickness},
		{"gameplay.serve_spread", g.ServeSpread},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
	}
	for _, f := range fields {
		if !isFinite(f.v) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalid, f.name, f.v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c *Config) validateKeys() error {
	required := []string{"left_up", "left_down", "right_up", "right_down"}
	for _, a := range required {
		if c.Keys[a] == "" {
			return fmt.Errorf("%w: keys.%s is not bound", ErrInvalid, a)
		}
	}

	owner := make(map[string]string, len(c.Keys))
	for action, key := range c.Keys {
		if _, ok := input.ActionByName(action); !ok {
			return fmt.Errorf("%w: keys.%s is not an action", ErrInvalid, action)
		}
		k := normaliseKey(key)
		if prev, dup := owner[k]; dup {
			return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, key, prev, action)
		}
		owner[k] = action
	}
	return nil
}

// ValidateField checks that a viewport of viewW×viewH world units can hold the game
func (c *Config) ValidateField(viewW, viewH float64) error {
	if !isFinite(viewW) || !isFinite(viewH) {
		return fmt.Errorf("%w: field size %vx%v", ErrInvalid, viewW, viewH)
	}
	if err := c.validateFinite(); err != nil {
		return err
	}

	g := c.Gameplay
	bounds := engine.NewFieldBounds(viewW, viewH, g.WallThickness)

	lo, hi := bounds.PaddleRange(g.PaddleHeight / 2)
	if lo > hi {
		return fmt.Errorf("%w: field height %.0f too small for paddle height %.0f", ErrInvalid, viewH, g.PaddleHeight)
	}

	leftX := bounds.Left + g.PaddleInset + g.PaddleWidth/2
	rightX := bounds.Right - g.PaddleInset - g.PaddleWidth/2
	if leftX+g.BallSize >= rightX {
		return fmt.Errorf("%w: field width %.0f too small for paddles and ball", ErrInvalid, viewW)
	}
	return nil
}
