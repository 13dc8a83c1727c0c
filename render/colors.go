package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)
	RgbPaddle     = tcell.NewRGBColor(255, 255, 255)
	RgbBall       = tcell.NewRGBColor(255, 255, 255)
	RgbWall       = tcell.NewRGBColor(77, 77, 77) // 0.3 gray, also the centre dashes
	RgbText       = tcell.NewRGBColor(255, 255, 255)
	RgbFooter     = tcell.NewRGBColor(140, 140, 140)
)

// ShapeColor returns the fill color for a scene shape
func ShapeColor(k ShapeKind) tcell.Color {
	switch k {
	case ShapePaddle:
		return RgbPaddle
	case ShapeBall:
		return RgbBall
	default:
		return RgbWall
	}
}
