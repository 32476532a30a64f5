package layout

import (
	"image"

	"cgarip/texture"
)

// Cursor is the running placement state shared by every group of a run.
type Cursor struct {
	X            int
	Y            int
	RowMaxHeight int
}

// Origin returns the position the next texture is drawn at.
func (c *Cursor) Origin() image.Point {
	return image.Pt(c.X, c.Y)
}

// Wrap moves the cursor to the start of the next row when a texture of the
// given declared width does not fit in canvasWidth. The test uses the raw
// width while Advance uses the rounded one.
func (c *Cursor) Wrap(width, canvasWidth, margin int) bool {
	if c.X+width <= canvasWidth {
		return false
	}
	c.X = 0
	c.Y += c.RowMaxHeight + margin
	c.RowMaxHeight = 0
	return true
}

// Advance records a placed texture and moves the cursor past it.
func (c *Cursor) Advance(width, height, margin int) {
	if height > c.RowMaxHeight {
		c.RowMaxHeight = height
	}
	c.X += texture.RoundUp4(width) + margin
}
