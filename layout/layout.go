/*
Package layout places a sequence of textures read from a raw buffer onto a
fixed width canvas.

Textures are laid out left to right with a margin between them. When the
next texture's declared width does not fit in what is left of the row, the
cursor moves down by the tallest texture of the row plus the margin.
*/
package layout

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cgarip/render"
	"cgarip/texture"
)

const (
	DefaultCanvasWidth  = 320
	DefaultCanvasHeight = 200
	DefaultMargin       = 3
)

// Placed describes a texture the engine has just drawn.
type Placed struct {
	Group  int
	Index  int
	Record texture.Record
	Origin image.Point
	Image  *image.Paletted
	// Wrapped is set when the texture started a new row.
	Wrapped bool
}

// VisitFunc is called once for every placed texture.
type VisitFunc func(Placed)

// Engine walks texture groups and emits their pixels through a Plotter.
type Engine struct {
	CanvasWidth int
	Margin      int
	Placement   texture.Placement
	// Strict rejects textures with a zero width or height.
	Strict bool

	// Plotter receives the decoded pixels. A nil Plotter only runs the
	// layout.
	Plotter *render.Plotter
	Visit   VisitFunc
	Logger  *slog.Logger
}

// New returns an Engine with the default canvas width and margin.
func New(p *render.Plotter) *Engine {
	return &Engine{
		CanvasWidth: DefaultCanvasWidth,
		Margin:      DefaultMargin,
		Placement:   texture.Legacy,
		Plotter:     p,
	}
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

func (e *Engine) palette() color.Palette {
	if e.Plotter == nil {
		return nil
	}
	return e.Plotter.Palette
}

// Run draws the textures of a single group, continuing from cur.
func (e *Engine) Run(buf []byte, g Group, cur *Cursor) error {
	return e.run(buf, 0, g, cur)
}

// RunGroups draws every group in order, sharing cur between them.
func (e *Engine) RunGroups(buf []byte, groups []Group, cur *Cursor) error {
	for i, g := range groups {
		if err := e.run(buf, i, g, cur); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) run(buf []byte, gi int, g Group, cur *Cursor) error {
	logger := e.logger().With("group", gi, "offset", fmt.Sprintf("0x%x", g.Offset))
	logger.Debug("drawing group", "textures", g.Count)

	off := g.Offset
	for i := 0; i < g.Count; i++ {
		r, err := texture.ParseRecord(buf, off)
		if err != nil {
			return fmt.Errorf("group %d (%v) texture %d: %w", gi, g, i, err)
		}
		if e.Strict && r.Empty() {
			return fmt.Errorf("group %d (%v) texture %d at 0x%x is %dx%d: %w",
				gi, g, i, off, r.Width, r.Height, texture.ErrMalformedHeader)
		}

		wrapped := cur.Wrap(int(r.Width), e.CanvasWidth, e.Margin)
		origin := cur.Origin()

		m, err := texture.DecodeRecord(r, e.Placement, e.palette())
		if err != nil {
			return fmt.Errorf("group %d (%v) texture %d: %w", gi, g, i, err)
		}
		if e.Plotter != nil {
			e.Plotter.DrawTexture(origin, m)
		}

		logger.Debug("texture", "index", i, "at", fmt.Sprintf("0x%x", off),
			"width", r.Width, "height", r.Height, "x", origin.X, "y", origin.Y, "wrapped", wrapped)

		cur.Advance(int(r.Width), int(r.Height), e.Margin)
		off += r.Size()

		if e.Visit != nil {
			e.Visit(Placed{
				Group:   gi,
				Index:   i,
				Record:  r,
				Origin:  origin,
				Image:   m,
				Wrapped: wrapped,
			})
		}
	}

	return nil
}
