package texture

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundUp4(t *testing.T) {
	for n := 0; n < 260; n++ {
		got := RoundUp4(n)
		if n%4 == 0 {
			assert.Equal(t, n, got, "n=%d", n)
		} else {
			assert.Equal(t, n+(4-n%4), got, "n=%d", n)
		}
		assert.Zero(t, got%4)
	}
}

func TestStride(t *testing.T) {
	tests := []struct {
		width, height, want int
	}{
		{0, 10, 0},
		{4, 1, 1},
		{5, 1, 2},
		{16, 16, 64},
		{17, 3, 15},
		{255, 255, 64 * 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stride(tt.width, tt.height), "%dx%d", tt.width, tt.height)
	}
}

func TestParseRecord(t *testing.T) {
	buf := []byte{0xaa, 5, 2, 1, 2, 3, 4, 0xbb}

	r, err := ParseRecord(buf, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Offset)
	assert.Equal(t, uint8(5), r.Width)
	assert.Equal(t, uint8(2), r.Height)
	assert.Equal(t, []byte{1, 2, 3, 4}, r.Data)
	assert.Equal(t, 4, r.Stride())
	assert.Equal(t, 6, r.Size())
	assert.False(t, r.Empty())
}

func TestParseRecordOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		off  int
	}{
		{"negative offset", []byte{1, 1, 0}, -1},
		{"no header", []byte{4}, 0},
		{"offset past end", []byte{4, 1, 0}, 3},
		{"short run", []byte{8, 2, 0, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord(tt.buf, tt.off)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}
}

func TestParseRecordEmpty(t *testing.T) {
	r, err := ParseRecord([]byte{0, 9}, 0)
	require.NoError(t, err)
	assert.True(t, r.Empty())
	assert.Equal(t, 2, r.Size())
	assert.Empty(t, r.Data)
}

func TestDecodeFieldOrder(t *testing.T) {
	// Fields from the low bits up are 0, 1, 2, 3.
	const b = 0b11_10_01_00

	m, err := Decode([]byte{b}, 4, 1, Legacy, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(1, 0, 5, 1), m.Bounds())
	for x, want := range map[int]uint8{4: 0, 3: 1, 2: 2, 1: 3} {
		assert.Equal(t, want, m.ColorIndexAt(x, 0), "legacy x=%d", x)
	}

	m, err = Decode([]byte{b}, 4, 1, Corrected, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 1), m.Bounds())
	for x, want := range map[int]uint8{3: 0, 2: 1, 1: 2, 0: 3} {
		assert.Equal(t, want, m.ColorIndexAt(x, 0), "corrected x=%d", x)
	}
}

func TestDecodeLegacySpill(t *testing.T) {
	// Two blocks on one row: the first block's low field lands on column 4,
	// right where the second block would start without the shift.
	m, err := Decode([]byte{0x01, 0x80}, 8, 1, Legacy, nil)
	require.NoError(t, err)

	want := map[int]uint8{1: 0, 2: 0, 3: 0, 4: 1, 5: 2, 6: 0, 7: 0, 8: 0}
	for x, idx := range want {
		assert.Equal(t, idx, m.ColorIndexAt(x, 0), "x=%d", x)
	}
}

func TestDecodeRowsAndPadding(t *testing.T) {
	// Width 3 pads to 4, so each row is one byte and the padding pixel is
	// decoded too.
	data := []byte{0xff, 0x55}
	m, err := Decode(data, 3, 2, Corrected, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), m.Bounds())
	for x := 0; x < 4; x++ {
		assert.Equal(t, uint8(3), m.ColorIndexAt(x, 0))
		assert.Equal(t, uint8(1), m.ColorIndexAt(x, 1))
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		m, err := Decode(nil, dims[0], dims[1], Legacy, nil)
		require.NoError(t, err)
		assert.True(t, m.Bounds().Empty())
	}
}

func TestDecodeOutOfBounds(t *testing.T) {
	_, err := Decode([]byte{0, 0, 0}, 8, 2, Legacy, nil)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDecodeUnknownPlacement(t *testing.T) {
	_, err := Decode([]byte{0}, 4, 1, Placement(7), nil)
	assert.Error(t, err)
}

func TestDecodeIdempotent(t *testing.T) {
	data := []byte{0x1b, 0xe4, 0x00, 0xff, 0x93, 0x27}

	a, err := Decode(data, 7, 3, Legacy, nil)
	require.NoError(t, err)
	b, err := Decode(data, 7, 3, Legacy, nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, []byte{0x1b, 0xe4, 0x00, 0xff, 0x93, 0x27}, data)
}

func TestDecodeRecordWrapsOffset(t *testing.T) {
	_, err := DecodeRecord(Record{Offset: 0x40, Width: 4, Height: 2, Data: []byte{0}}, Legacy, nil)
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Contains(t, err.Error(), "0x40")
}
