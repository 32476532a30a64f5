package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	r, g, b uint8
	x, y    int
}

// recorder logs every point together with the color it was drawn in.
type recorder struct {
	r, g, b uint8
	calls   []call
}

func (rec *recorder) SetDrawColor(r, g, b uint8) { rec.r, rec.g, rec.b = r, g, b }
func (rec *recorder) DrawPoint(x, y int) {
	rec.calls = append(rec.calls, call{rec.r, rec.g, rec.b, x, y})
}

var testPalette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x55, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0x55, 0xff, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
}

func TestPutPixelBlock(t *testing.T) {
	rec := &recorder{}
	p := NewPlotter(rec, testPalette)

	p.PutPixel(3, 5, 2)

	assert.Equal(t, []call{
		{0xff, 0x55, 0xff, 6, 10},
		{0xff, 0x55, 0xff, 7, 10},
		{0xff, 0x55, 0xff, 6, 11},
		{0xff, 0x55, 0xff, 7, 11},
	}, rec.calls)
}

func TestPutPixelScale(t *testing.T) {
	rec := &recorder{}
	p := &Plotter{Sink: rec, Palette: testPalette, Scale: 1}
	p.PutPixel(3, 5, 1)
	assert.Equal(t, []call{{0x55, 0xff, 0xff, 3, 5}}, rec.calls)

	rec.calls = nil
	p.Scale = 0
	p.PutPixel(1, 1, 3)
	assert.Equal(t, []call{{0xff, 0xff, 0xff, 1, 1}}, rec.calls)
}

func TestPutPixelOutsidePalette(t *testing.T) {
	rec := &recorder{}
	p := &Plotter{Sink: rec, Palette: testPalette[:2], Scale: 1}
	p.PutPixel(0, 0, 3)
	assert.Equal(t, []call{{0, 0, 0, 0, 0}}, rec.calls)

	rec.calls = nil
	p.Palette = nil
	p.PutPixel(0, 0, 1)
	assert.Equal(t, []call{{0, 0, 0, 0, 0}}, rec.calls)
}

func TestDrawTextureTranslates(t *testing.T) {
	m := image.NewPaletted(image.Rect(1, 0, 3, 1), testPalette)
	m.SetColorIndex(1, 0, 1)
	m.SetColorIndex(2, 0, 3)

	rec := &recorder{}
	p := &Plotter{Sink: rec, Palette: testPalette, Scale: 1}
	p.DrawTexture(image.Pt(10, 20), m)

	assert.Equal(t, []call{
		{0x55, 0xff, 0xff, 11, 20},
		{0xff, 0xff, 0xff, 12, 20},
	}, rec.calls)
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(4, 3, DefaultBackground)
	img := c.Image()
	require.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	assert.Equal(t, DefaultBackground, img.RGBAAt(2, 2))

	c.SetDrawColor(1, 2, 3)
	c.DrawPoint(1, 1)
	c.DrawPoint(-1, 0)
	c.DrawPoint(4, 0)
	c.DrawPoint(0, 3)

	assert.Equal(t, color.RGBA{1, 2, 3, 0xff}, img.RGBAAt(1, 1))
	assert.Equal(t, DefaultBackground, img.RGBAAt(0, 0))
}

func TestCanvasOverwrites(t *testing.T) {
	c := NewCanvas(1, 1, nil)
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(0, 0))

	c.SetDrawColor(0xff, 0xff, 0xff)
	c.DrawPoint(0, 0)
	c.SetDrawColor(0, 0, 0)
	c.DrawPoint(0, 0)
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, c.Image().RGBAAt(0, 0))
}
