/*
Package palette resolves the 4-color palettes used to render CGA textures.

A palette is looked up by registered name, read from a RIFF PAL file or
derived from a reference image by median cut.
*/
package palette

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Size is the number of colors a 2-bit texture can address.
const Size = 4

// Default is the name of the palette used when none is given: CGA mode 4,
// palette 1, high intensity.
const Default = "cga1hi"

func rgb(v uint32) color.RGBA {
	return color.RGBA{byte(v >> 16), byte(v >> 8), byte(v), 0xff}
}

var named = map[string]color.Palette{
	"cga0lo": {rgb(0x000000), rgb(0x00aa00), rgb(0xaa0000), rgb(0xaa5500)},
	"cga0hi": {rgb(0x000000), rgb(0x55ff55), rgb(0xff5555), rgb(0xffff55)},
	"cga1lo": {rgb(0x000000), rgb(0x00aaaa), rgb(0xaa00aa), rgb(0xaaaaaa)},
	"cga1hi": {rgb(0x000000), rgb(0x55ffff), rgb(0xff55ff), rgb(0xffffff)},
	"gray4":  {rgb(0x000000), rgb(0x555555), rgb(0xaaaaaa), rgb(0xffffff)},
}

// Names returns the registered palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Named returns a copy of the registered palette called name.
func Named(name string) (color.Palette, bool) {
	p, ok := named[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return append(color.Palette(nil), p...), true
}

// LoadPalette returns the palette called name. Registered names are tried
// first, then name is opened as a file: ".pal" files are read as RIFF
// palettes and anything else is decoded as an image and quantized.
func LoadPalette(name string) (color.Palette, error) {
	if p, ok := Named(name); ok {
		return p, nil
	}

	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unknown palette %q, should be one of %s or a file", name, strings.Join(Names(), ", "))
		}
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer f.Close()

	var p color.Palette
	if strings.EqualFold(filepath.Ext(name), ".pal") {
		pals, err := ReadFrom(f)
		if err != nil {
			return nil, fmt.Errorf("could not read palette %q: %w", name, err)
		}
		for _, pal := range pals {
			p = append(p, pal...)
		}
	} else {
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("could not decode palette image %q: %w", name, err)
		}
		p = FromImage(img, Size)
	}

	if len(p) < Size {
		return nil, fmt.Errorf("palette %q has %d colors, need at least %d", name, len(p), Size)
	}
	return p, nil
}

// FromImage reduces img to at most n colors by median cut, ordered from
// darkest to lightest so that index 0 is the background.
func FromImage(img image.Image, n int) color.Palette {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, n), img)

	sort.SliceStable(p, func(i, j int) bool {
		return luma(p[i]) < luma(p[j])
	})
	return p
}

func luma(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (19595*r + 38470*g + 7471*b + 1<<15) >> 16
}
