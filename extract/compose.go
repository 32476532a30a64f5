package extract

import (
	"image"
	"image/color"
	"log/slog"

	"cgarip/layout"
	"cgarip/render"
	"cgarip/texture"
)

// Options controls how a binary is turned into a composite image.
type Options struct {
	Groups     []layout.Group
	Width      int
	Height     int
	Margin     int
	Scale      int
	Placement  texture.Placement
	Strict     bool
	Palette    color.Palette
	Background color.Color
	Visit      layout.VisitFunc
	Logger     *slog.Logger
}

// DefaultOptions returns the layout of the Dig Dug texture sheet.
func DefaultOptions(pal color.Palette) Options {
	return Options{
		Groups:     layout.DigDug,
		Width:      layout.DefaultCanvasWidth,
		Height:     layout.DefaultCanvasHeight,
		Margin:     layout.DefaultMargin,
		Scale:      render.DefaultScale,
		Placement:  texture.Legacy,
		Palette:    pal,
		Background: render.DefaultBackground,
	}
}

// Compose draws every group of buf onto a fresh canvas and returns the
// device resolution image together with the final cursor.
func Compose(buf []byte, o Options) (*image.RGBA, layout.Cursor, error) {
	canvas := render.NewCanvas(o.Width*o.Scale, o.Height*o.Scale, o.Background)

	e := layout.New(&render.Plotter{
		Sink:    canvas,
		Palette: o.Palette,
		Scale:   o.Scale,
	})
	e.CanvasWidth = o.Width
	e.Margin = o.Margin
	e.Placement = o.Placement
	e.Strict = o.Strict
	e.Visit = o.Visit
	e.Logger = o.Logger

	var cur layout.Cursor
	if err := e.RunGroups(buf, o.Groups, &cur); err != nil {
		return nil, cur, err
	}
	return canvas.Image(), cur, nil
}
