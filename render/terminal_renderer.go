package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
)

// TerminalRenderer draws the world onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	proj   Projection
	footer string
}

// NewTerminalRenderer creates a renderer projecting the world viewport onto the screen's current size
func NewTerminalRenderer(screen tcell.Screen, viewW, viewH float64) *TerminalRenderer {
	cols, rows := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		proj:   NewProjection(viewW, viewH, cols, rows),
		footer: constants.FooterText,
	}
}

// Resize rescales the projection; the field itself keeps its startup bounds
func (r *TerminalRenderer) Resize(cols, rows int) {
	r.proj = NewProjection(r.proj.viewW, r.proj.viewH, cols, rows)
}

// SetFooter replaces the help line drawn on the bottom row
func (r *TerminalRenderer) SetFooter(text string) {
	r.footer = text
}

// RenderFrame renders the entire game frame and shows it
func (r *TerminalRenderer) RenderFrame(world *engine.World) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	scene := BuildScene(world)
	for _, s := range scene.Shapes {
		r.drawShape(s, defaultStyle)
	}
	for _, l := range scene.Labels {
		col, row := r.proj.Cell(l.Position.X, l.Position.Y)
		r.drawText(col-len(l.Text)/2, row, l.Text, defaultStyle)
	}

	r.drawFooter(defaultStyle)
	r.screen.Show()
}

func (r *TerminalRenderer) drawShape(s Shape, defaultStyle tcell.Style) {
	var ch rune
	switch s.Kind {
	case ShapePaddle:
		ch = constants.PaddleChar
	case ShapeBall:
		ch = constants.BallChar
	case ShapeWall:
		ch = constants.WallChar
	default:
		ch = constants.DashChar
	}
	style := defaultStyle.Foreground(ShapeColor(s.Kind))

	c0, r0, c1, r1 := r.proj.Rect(s.Box)
	cols, rows := r.proj.Size()
	for row := max(r0, 0); row <= min(r1, rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, cols-1); col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	cols, rows := r.proj.Size()
	if y < 0 || y >= rows {
		return
	}
	for i, ch := range []rune(text) {
		if col := x + i; col >= 0 && col < cols {
			r.screen.SetContent(col, y, ch, nil, style)
		}
	}
}

// drawFooter centres the help line on the bottom row
func (r *TerminalRenderer) drawFooter(defaultStyle tcell.Style) {
	cols, rows := r.proj.Size()
	n := len([]rune(r.footer))
	if r.footer == "" || rows < 3 || n > cols {
		return
	}
	r.drawText((cols-n)/2, rows-1, r.footer, defaultStyle.Foreground(RgbFooter))
}
