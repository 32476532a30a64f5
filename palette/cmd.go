package palette

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	List struct {
	} `cmd:"" help:"List the registered palettes"`
	Export struct {
		Name  string `arg:"" help:"Palette name, PAL file or reference image"`
		Dest  string `arg:"" help:"Destination PAL file"`
		Force bool   `help:"Overwrite an existing destination" default:"false"`
	} `cmd:"" help:"Write a palette as a RIFF PAL file"`

	Out io.Writer `kong:"-"`
}

func (c *CLICmd) Run(kctx *kong.Context) error {
	switch kctx.Selected().Name {
	case "list":
		return c.list()
	case "export":
		return c.export()
	}
	return fmt.Errorf("unsupported palette operation: %s", kctx.Selected().Name)
}

func hexColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func (c *CLICmd) list() error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	for _, name := range Names() {
		p, _ := Named(name)
		cols := make([]string, len(p))
		for i, col := range p {
			cols[i] = hexColor(col)
		}
		if _, err := fmt.Fprintf(out, "%-8s %s\n", name, strings.Join(cols, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLICmd) export() error {
	conf := c.Export

	p, err := LoadPalette(conf.Name)
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !conf.Force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(conf.Dest, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("destination file already exists: %q", conf.Dest)
		}
		return fmt.Errorf("could not open destination file %q: %w", conf.Dest, err)
	}

	n, err := WriteTo(f, []color.Palette{p})
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("could not close destination file %q: %w", conf.Dest, closeErr)
	}
	if err != nil {
		return err
	}

	slog.Info("exported palette", "name", conf.Name, "dest", conf.Dest, "colors", n)
	return nil
}
