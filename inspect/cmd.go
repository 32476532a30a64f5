/*
Package inspect implements the list command, which prints every texture
record of a binary together with where it would be placed.
*/
package inspect

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"cgarip/layout"
	"cgarip/source"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	File   string   `arg:"" help:"Game binary to inspect"`
	Group  []string `help:"Texture group as OFFSET:COUNT" default:"0x4270:103,0x579e:32,0x5a2e:63"`
	Width  int      `help:"Canvas width in CGA pixels" default:"320"`
	Margin int      `help:"Gap between textures in CGA pixels" default:"3"`
	Strict bool     `help:"Fail on textures with a zero width or height" default:"false"`
	Dump   bool     `help:"Hex dump the packed bytes of every texture" default:"false"`

	Groups []layout.Group `kong:"-"`
	Out    io.Writer      `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.Groups, err = layout.ParseGroups(c.Group); err != nil {
		return err
	}
	if c.Width < 1 {
		return fmt.Errorf("invalid canvas width: %d", c.Width)
	}
	if c.Margin < 0 {
		return fmt.Errorf("invalid margin: %d", c.Margin)
	}
	return nil
}

func (c *CLICmd) Run() error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	buf, err := source.Load(c.File)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tINDEX\tOFFSET\tWIDTH\tHEIGHT\tBYTES\tX\tY\tROW")

	var dumps []layout.Placed
	e := layout.New(nil)
	e.CanvasWidth = c.Width
	e.Margin = c.Margin
	e.Strict = c.Strict

	row := 0
	e.Visit = func(p layout.Placed) {
		if p.Wrapped {
			row++
		}
		r := p.Record
		fmt.Fprintf(tw, "%d\t%d\t0x%04x\t%d\t%d\t%d\t%d\t%d\t%d\n",
			p.Group, p.Index, r.Offset, r.Width, r.Height, r.Stride(), p.Origin.X, p.Origin.Y, row)
		if c.Dump {
			dumps = append(dumps, p)
		}
	}

	var cur layout.Cursor
	runErr := e.RunGroups(buf, c.Groups, &cur)
	if err := tw.Flush(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	fmt.Fprintf(out, "end of layout: x=%d y=%d height=%d\n", cur.X, cur.Y, cur.Y+cur.RowMaxHeight)

	for _, p := range dumps {
		fmt.Fprintf(out, "\ngroup %d texture %d at 0x%04x (%dx%d)\n", p.Group, p.Index, p.Record.Offset, p.Record.Width, p.Record.Height)
		if _, err := io.WriteString(out, hex.Dump(p.Record.Data)); err != nil {
			return err
		}
	}
	return nil
}
