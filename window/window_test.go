package window

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/systems"
	"github.com/lixenwraith/pong/vmath"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

var defaultKeys = map[string]string{
	"left_up":    "a",
	"left_down":  "z",
	"right_up":   "j",
	"right_down": "n",
}

func newTestGame(t *testing.T, pressed map[ebiten.Key]bool) *Game {
	t.Helper()
	kb, err := BuildKeyBindings(defaultKeys)
	require.NoError(t, err)

	loop := engine.NewLoop(engine.NewWorld(1280, 720, engine.DefaultTuning(), fixedRand(0.5)))
	systems.Install(loop)

	g := NewGame(loop, kb)
	g.isPressed = func(k ebiten.Key) bool { return pressed[k] }
	g.tps = func() int { return 60 }
	return g
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("A")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyA, k)

	k, err = ParseKey("up")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyArrowUp, k)

	_, err = ParseKey("hyper")
	assert.Error(t, err)
}

func TestBuildKeyBindings(t *testing.T) {
	kb, err := BuildKeyBindings(defaultKeys)
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyA, kb.LeftUp)
	assert.Equal(t, ebiten.KeyZ, kb.LeftDown)
	assert.Equal(t, ebiten.KeyJ, kb.RightUp)
	assert.Equal(t, ebiten.KeyN, kb.RightDown)
	assert.Equal(t, []ebiten.Key{ebiten.KeyEscape}, kb.Quit)

	_, err = BuildKeyBindings(map[string]string{"left_up": "a", "left_down": "a", "right_up": "j", "right_down": "n"})
	assert.Error(t, err, "duplicate key")

	_, err = BuildKeyBindings(map[string]string{"left_up": "a"})
	assert.Error(t, err, "missing bindings")
}

func TestGameUpdateStepsLoop(t *testing.T) {
	g := newTestGame(t, map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeyN: true})

	require.NoError(t, g.Update())

	w := g.loop.World()
	assert.InDelta(t, 500.0/60, w.Paddles[0].Position.Y, 1e-9)
	assert.InDelta(t, -500.0/60, w.Paddles[1].Position.Y, 1e-9)
	assert.InDelta(t, 1.0/60, w.DeltaTime, 1e-12)
	assert.Equal(t, int64(1), w.FrameNumber)
}

func TestGameUpdateEscapeTerminates(t *testing.T) {
	g := newTestGame(t, map[ebiten.Key]bool{ebiten.KeyEscape: true})

	err := g.Update()
	assert.True(t, errors.Is(err, ebiten.Termination))
	assert.Equal(t, int64(0), g.loop.World().FrameNumber)
}

func TestGameLayout(t *testing.T) {
	g := newTestGame(t, nil)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}

func TestToScreen(t *testing.T) {
	vp := vmath.Vec2{X: 800, Y: 480}

	x, y := toScreen(vp, 0, 0)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 240.0, y)

	x, y = toScreen(vp, -400, 240)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestToRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 77, G: 77, B: 77, A: 255}, toRGBA(render.RgbWall))
	assert.Equal(t, color.RGBA{A: 255}, toRGBA(render.RgbBackground))
}
