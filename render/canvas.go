package render

import (
	"image"
	"image/color"
	"image/draw"
)

// DefaultBackground is the dark gray the composite is cleared to.
var DefaultBackground = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}

// Canvas is an in-memory Sink. Points outside the image are ignored.
type Canvas struct {
	img   *image.RGBA
	color color.RGBA
}

var _ Sink = &Canvas{}

// NewCanvas returns a width by height device pixel canvas filled with bg.
// A nil bg leaves the canvas transparent.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if bg != nil {
		draw.Draw(img, img.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
	}
	return &Canvas{
		img:   img,
		color: color.RGBA{A: 0xff},
	}
}

// SetDrawColor selects the opaque color used by subsequent DrawPoint calls.
func (c *Canvas) SetDrawColor(r, g, b uint8) {
	c.color = color.RGBA{r, g, b, 0xff}
}

// DrawPoint overwrites the pixel at (x, y) with the current draw color.
func (c *Canvas) DrawPoint(x, y int) {
	if !image.Pt(x, y).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, c.color)
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}
