package palette

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedDefault(t *testing.T) {
	p, ok := Named(Default)
	require.True(t, ok)
	assert.Equal(t, color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xff},
		color.RGBA{0x55, 0xff, 0xff, 0xff},
		color.RGBA{0xff, 0x55, 0xff, 0xff},
		color.RGBA{0xff, 0xff, 0xff, 0xff},
	}, p)

	// Callers get their own copy.
	p[0] = color.White
	q, _ := Named("CGA1HI")
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, q[0])
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"cga0hi", "cga0lo", "cga1hi", "cga1lo", "gray4"}, Names())
	for _, n := range Names() {
		p, err := LoadPalette(n)
		require.NoError(t, err, n)
		assert.Len(t, p, Size, n)
	}
}

func TestLoadPaletteUnknown(t *testing.T) {
	_, err := LoadPalette(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown palette")
}

func TestRIFF(t *testing.T) {
	in, _ := Named("cga0hi")

	var b bytes.Buffer
	n, err := WriteTo(&b, []color.Palette{in, in[:2]})
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	pals, err := ReadFrom(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	require.Len(t, pals, 2)
	assert.Equal(t, in, pals[0])
	assert.Equal(t, in[:2], pals[1])

	file := filepath.Join(t.TempDir(), "game.pal")
	require.NoError(t, os.WriteFile(file, b.Bytes(), 0o644))

	p, err := LoadPalette(file)
	require.NoError(t, err)
	assert.Equal(t, append(append(color.Palette(nil), in...), in[:2]...), p)
}

func TestRIFFTooSmall(t *testing.T) {
	in, _ := Named("gray4")

	var b bytes.Buffer
	_, err := WriteTo(&b, []color.Palette{in[:3]})
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "small.pal")
	require.NoError(t, os.WriteFile(file, b.Bytes(), 0o644))

	_, err = LoadPalette(file)
	assert.Error(t, err)
}

func TestReadFromNotPalette(t *testing.T) {
	_, err := ReadFrom(bytes.NewReader([]byte("RIFF\x04\x00\x00\x00WAVE")))
	assert.Error(t, err)
}

func TestFromImage(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	cols := []color.RGBA{
		{0xff, 0xff, 0xff, 0xff},
		{0x00, 0x00, 0x00, 0xff},
		{0xff, 0x00, 0x00, 0xff},
		{0x00, 0xff, 0x00, 0xff},
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.SetRGBA(x, y, cols[(y/4)*2+x/4])
		}
	}

	p := FromImage(m, Size)
	require.NotEmpty(t, p)
	assert.LessOrEqual(t, len(p), Size)
	for i := 1; i < len(p); i++ {
		assert.LessOrEqual(t, luma(p[i-1]), luma(p[i]))
	}
}
