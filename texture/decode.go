package texture

import (
	"fmt"
	"image"
	"image/color"
)

// Placement selects where the four fields of a packed byte land inside
// their 4 pixel block.
type Placement int

const (
	// Legacy places the field at shift 2*k at block offset 4-k. Every
	// block is drawn one pixel to the right and offset 0 is never written.
	// Existing Dig Dug texture sheets were produced this way.
	Legacy Placement = iota
	// Corrected places the field at shift 2*k at block offset 3-k, keeping
	// each block inside its own four columns.
	Corrected
)

var blockOffsets = [...][PixelsPerByte]int{
	Legacy:    {4, 3, 2, 1},
	Corrected: {3, 2, 1, 0},
}

func (p Placement) String() string {
	switch p {
	case Legacy:
		return "legacy"
	case Corrected:
		return "corrected"
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

func (p Placement) valid() bool {
	return p >= Legacy && p <= Corrected
}

// Bounds returns the pixel rectangle, relative to the texture origin, that
// a texture of the given dimensions covers once decoded.
func (p Placement) Bounds(width, height int) image.Rectangle {
	if width <= 0 || height <= 0 {
		return image.Rectangle{}
	}
	w := RoundUp4(width)
	if p == Legacy {
		return image.Rect(1, 0, w+1, height)
	}
	return image.Rect(0, 0, w, height)
}

// Decode unpacks data into a paletted image of color indices. Padding
// pixels introduced by rounding the width are kept.
func Decode(data []byte, width, height int, p Placement, pal color.Palette) (*image.Paletted, error) {
	if !p.valid() {
		return nil, fmt.Errorf("texture: unknown placement %v", p)
	}

	m := image.NewPaletted(p.Bounds(width, height), pal)
	if m.Rect.Empty() {
		return m, nil
	}

	if n := Stride(width, height); len(data) < n {
		return nil, fmt.Errorf("%dx%d texture needs %d bytes, got %d: %w", width, height, n, len(data), ErrOutOfBounds)
	}

	offsets := blockOffsets[p]
	w := RoundUp4(width)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < w; x += PixelsPerByte {
			b := data[i]
			for k, dx := range offsets {
				m.SetColorIndex(x+dx, y, b>>(k*bitsPerPixel)&pixelMask)
			}
			i++
		}
	}

	return m, nil
}

// DecodeRecord decodes r using its declared dimensions.
func DecodeRecord(r Record, p Placement, pal color.Palette) (*image.Paletted, error) {
	m, err := Decode(r.Data, int(r.Width), int(r.Height), p, pal)
	if err != nil {
		return nil, fmt.Errorf("texture at 0x%x: %w", r.Offset, err)
	}
	return m, nil
}
