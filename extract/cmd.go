/*
Package extract implements the extract command: it loads game binaries,
composes their textures onto a CGA sized canvas and saves the result.
*/
package extract

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"cgarip/layout"
	"cgarip/palette"
	"cgarip/parallel"
	"cgarip/source"
	"cgarip/texture"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Files      []string `arg:"" help:"Game binary to extract textures from"`
	Dest       string   `help:"Destination folder for the composite image" default:"." type:"path"`
	Name       string   `help:"File name, without extension, of the composite image. Ignored when several binaries are given, the binary's name is used instead." default:"Screenshot"`
	Format     string   `help:"Output format of the composite image" enum:"bmp,png,gif,tiff" default:"bmp"`
	Force      bool     `help:"Overwrite existing destination files" default:"false"`
	Split      string   `help:"If given, also write every texture as its own PNG into this folder" type:"path"`
	Group      []string `help:"Texture group as OFFSET:COUNT, drawn in order and sharing one layout" default:"0x4270:103,0x579e:32,0x5a2e:63" group:"layout"`
	Width      int      `help:"Canvas width in CGA pixels" default:"320" group:"layout"`
	Height     int      `help:"Canvas height in CGA pixels" default:"200" group:"layout"`
	Margin     int      `help:"Gap between textures in CGA pixels" default:"3" group:"layout"`
	Corrected  bool     `help:"Keep each packed byte inside its own 4 pixel block instead of reproducing the legacy one pixel shift" default:"false" group:"layout"`
	Strict     bool     `help:"Fail on textures with a zero width or height" default:"false" group:"layout"`
	Scale      int      `help:"Device pixels per CGA pixel" default:"2" group:"render"`
	Palette    string   `help:"Palette name (cga1hi, cga1lo, cga0hi, cga0lo, gray4), PAL file in RIFF format or reference image" default:"cga1hi" group:"render"`
	Background string   `help:"Canvas background color as #RGB, #RGBA, #RRGGBB or #RRGGBBAA" default:"#1e1e1e" group:"render"`
	Fit        string   `help:"Resize the saved composite to WIDTHxHEIGHT, either may be 0 to keep the aspect ratio" group:"render"`

	Groups          []layout.Group `kong:"-"`
	Colors          color.Palette  `kong:"-"`
	BackgroundColor color.Color    `kong:"-"`
	FitWidth        int            `kong:"-"`
	FitHeight       int            `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error

	if len(c.Files) == 0 {
		return fmt.Errorf("missing input file")
	}

	if c.Groups, err = layout.ParseGroups(c.Group); err != nil {
		return err
	}

	switch {
	case c.Width < 1:
		return fmt.Errorf("invalid canvas width: %d", c.Width)
	case c.Height < 1:
		return fmt.Errorf("invalid canvas height: %d", c.Height)
	case c.Margin < 0:
		return fmt.Errorf("invalid margin: %d", c.Margin)
	case c.Scale < 1:
		return fmt.Errorf("invalid scale: %d", c.Scale)
	}

	if c.BackgroundColor, err = parseHexToColor(c.Background); err != nil {
		return err
	}

	if c.Colors, err = palette.LoadPalette(c.Palette); err != nil {
		return err
	}

	if c.Fit != "" {
		n, err := fmt.Sscanf(strings.ToLower(c.Fit), "%dx%d", &c.FitWidth, &c.FitHeight)
		if err != nil || n != 2 || c.FitWidth < 0 || c.FitHeight < 0 {
			return fmt.Errorf("invalid fit %q, should be WIDTHxHEIGHT", c.Fit)
		}
	}

	return nil
}

func (c *CLICmd) options() Options {
	o := DefaultOptions(c.Colors)
	o.Groups = c.Groups
	o.Width = c.Width
	o.Height = c.Height
	o.Margin = c.Margin
	o.Scale = c.Scale
	o.Strict = c.Strict
	o.Background = c.BackgroundColor
	if c.Corrected {
		o.Placement = texture.Corrected
	}
	return o
}

func (c *CLICmd) destination(file string) string {
	name := c.Name
	if len(c.Files) > 1 {
		base := filepath.Base(file)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return filepath.Join(c.Dest, fmt.Sprintf("%s.%s", name, c.Format))
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}
	if c.Split != "" {
		if err := os.MkdirAll(c.Split, 0o755); err != nil {
			return fmt.Errorf("unable to create split folder %q: %w", c.Split, err)
		}
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range c.Files {
		worker(func(filePath string) func() {
			return func() {
				logger := slog.Default().With("file", filePath)

				if err := c.extract(logger, filePath); err != nil {
					errCount.Add(1)
					logger.Error("could not extract textures", "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) extract(logger *slog.Logger, filePath string) error {
	buf, err := source.Load(filePath)
	if err != nil {
		return err
	}
	logger.Info("loaded", "bytes", len(buf))

	var textures []layout.Placed
	o := c.options()
	o.Logger = logger
	if c.Split != "" {
		o.Visit = func(p layout.Placed) {
			textures = append(textures, p)
		}
	}

	img, cur, err := Compose(buf, o)
	if err != nil {
		return err
	}
	logger.Info("composed", "groups", len(o.Groups), "x", cur.X, "y", cur.Y)
	if bottom := cur.Y + cur.RowMaxHeight; bottom > c.Height {
		logger.Warn("textures overflow the canvas", "height", bottom, "canvas", c.Height)
	}

	var out image.Image = img
	if c.Fit != "" {
		out = resize(logger, img, c.FitWidth, c.FitHeight, c.BackgroundColor)
	}

	dest := c.destination(filePath)
	if err := save(out, c.Format, dest, c.Force); err != nil {
		return err
	}
	logger.Info("saved", "dest", dest)

	if c.Split != "" {
		return c.split(logger, filePath, textures)
	}
	return nil
}

func (c *CLICmd) split(logger *slog.Logger, filePath string, textures []layout.Placed) error {
	prefix := ""
	if len(c.Files) > 1 {
		base := filepath.Base(filePath)
		prefix = strings.TrimSuffix(base, filepath.Ext(base)) + "-"
	}

	var written int
	for _, p := range textures {
		if p.Image.Bounds().Empty() {
			continue
		}
		dest := filepath.Join(c.Split, fmt.Sprintf("%sg%d-%03d.png", prefix, p.Group, p.Index))
		if err := save(p.Image, "png", dest, c.Force); err != nil {
			return err
		}
		written++
	}
	logger.Info("split", "dir", c.Split, "textures", written)
	return nil
}
