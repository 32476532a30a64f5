/*
Package render turns decoded texture pixels into draw calls on a pixel sink.

Each logical pixel becomes a Scale by Scale block of device pixels, the way a
320x200 CGA screen is shown on a 640x400 window.
*/
package render

import (
	"image"
	"image/color"
)

// DefaultScale is the number of device pixels drawn per logical pixel along
// each axis.
const DefaultScale = 2

// Sink receives individual device pixels.
type Sink interface {
	SetDrawColor(r, g, b uint8)
	DrawPoint(x, y int)
}

// Plotter maps 2-bit color indices through a palette and draws them on a
// Sink.
type Plotter struct {
	Sink    Sink
	Palette color.Palette
	Scale   int
}

// NewPlotter returns a Plotter drawing on s with the given palette at
// DefaultScale.
func NewPlotter(s Sink, pal color.Palette) *Plotter {
	return &Plotter{
		Sink:    s,
		Palette: pal,
		Scale:   DefaultScale,
	}
}

func (p *Plotter) scale() int {
	if p.Scale < 1 {
		return 1
	}
	return p.Scale
}

func (p *Plotter) setColor(idx uint8) {
	var c color.Color = color.Black
	switch {
	case int(idx) < len(p.Palette):
		c = p.Palette[idx]
	case len(p.Palette) > 0:
		c = p.Palette[0]
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	p.Sink.SetDrawColor(rgba.R, rgba.G, rgba.B)
}

// PutPixel draws the logical pixel (x, y) with palette entry idx.
func (p *Plotter) PutPixel(x, y int, idx uint8) {
	p.setColor(idx)

	s := p.scale()
	for i := 0; i < s; i++ {
		for j := 0; j < s; j++ {
			p.Sink.DrawPoint(x*s+j, y*s+i)
		}
	}
}

// DrawTexture draws every pixel of m with its bounds translated by origin.
func (p *Plotter) DrawTexture(origin image.Point, m *image.Paletted) {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.PutPixel(origin.X+x, origin.Y+y, m.ColorIndexAt(x, y))
		}
	}
}

// Discard is a Sink that drops every pixel.
var Discard Sink = discard{}

type discard struct{}

func (discard) SetDrawColor(r, g, b uint8) {}
func (discard) DrawPoint(x, y int)         {}
