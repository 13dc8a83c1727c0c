package window

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/vmath"
)

// debug font cell size, used to centre labels
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// KeyReader reports whether a key is currently down
type KeyReader func(ebiten.Key) bool

// Game runs the simulation loop inside ebiten's fixed-rate Update
type Game struct {
	loop      *engine.Loop
	keys      KeyBindings
	isPressed KeyReader
	tps       func() int
}

// NewGame wires a loop to ebiten's keyboard and tick rate
func NewGame(loop *engine.Loop, keys KeyBindings) *Game {
	return &Game{
		loop:      loop,
		keys:      keys,
		isPressed: ebiten.IsKeyPressed,
		tps:       ebiten.TPS,
	}
}

// Update steps the simulation once per tick, dt = 1/TPS
func (g *Game) Update() error {
	for _, k := range g.keys.Quit {
		if g.isPressed(k) {
			return ebiten.Termination
		}
	}

	tps := g.tps()
	if tps <= 0 {
		return nil
	}
	g.loop.Step(g.snapshot(), 1/float64(tps))
	return nil
}

func (g *Game) snapshot() engine.InputSnapshot {
	return engine.InputSnapshot{
		LeftUp:    g.isPressed(g.keys.LeftUp),
		LeftDown:  g.isPressed(g.keys.LeftDown),
		RightUp:   g.isPressed(g.keys.RightUp),
		RightDown: g.isPressed(g.keys.RightDown),
	}
}

// Draw paints the current scene
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(render.RgbBackground))

	scene := render.BuildScene(g.loop.World())
	for _, s := range scene.Shapes {
		x, y := toScreen(scene.Viewport, s.Box.Left(), s.Box.Top())
		vector.DrawFilledRect(screen,
			float32(x), float32(y),
			float32(s.Box.Half.X*2), float32(s.Box.Half.Y*2),
			toRGBA(render.ShapeColor(s.Kind)), false)
	}
	for _, l := range scene.Labels {
		x, y := toScreen(scene.Viewport, l.Position.X, l.Position.Y)
		ebitenutil.DebugPrintAt(screen, l.Text,
			int(x)-len(l.Text)*glyphWidth/2, int(y)-glyphHeight/2)
	}
}

// Layout keeps the logical screen at the world viewport size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.loop.World().Viewport
	return int(vp.X), int(vp.Y)
}

// toScreen maps centred y-up world coordinates to top-left y-down pixels
func toScreen(viewport vmath.Vec2, x, y float64) (float64, float64) {
	return x + viewport.X/2, viewport.Y/2 - y
}

func toRGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
