/*
Package texture decodes CGA mode 4 textures stored as a two byte header
followed by packed pixel data.

Each byte holds four 2-bit color indices. Rows are padded to a multiple of
four pixels so a row of width w occupies RoundUp4(w)/4 bytes. There is no
file header; records are located by offsets supplied by the caller.
*/
package texture

import (
	"errors"
	"fmt"
)

const (
	// PixelsPerByte is the number of 2-bit pixels packed into one byte.
	PixelsPerByte = 4
	bitsPerPixel  = 2
	pixelMask     = 0x03
	headerSize    = 2
)

var (
	// ErrOutOfBounds is returned when a header or packed run would read past
	// the end of the supplied buffer.
	ErrOutOfBounds = errors.New("texture: read out of bounds")
	// ErrMalformedHeader is returned when a texture declares a zero width or
	// height where a drawable texture is required.
	ErrMalformedHeader = errors.New("texture: malformed header")
)

// RoundUp4 rounds n up to the next multiple of 4.
func RoundUp4(n int) int {
	if r := n % PixelsPerByte; r != 0 {
		return n + PixelsPerByte - r
	}
	return n
}

// Stride returns the number of packed bytes a texture of the given
// dimensions occupies.
func Stride(width, height int) int {
	return RoundUp4(width) / PixelsPerByte * height
}

// Record is one texture as found in the source buffer.
type Record struct {
	Offset int
	Width  uint8
	Height uint8
	Data   []byte
}

// Stride returns the length of the packed run following the header.
func (r Record) Stride() int {
	return Stride(int(r.Width), int(r.Height))
}

// Size returns the number of bytes the record occupies including its
// header.
func (r Record) Size() int {
	return headerSize + r.Stride()
}

// Empty reports whether the record has no drawable pixels.
func (r Record) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// ParseRecord reads the record whose header starts at off in buf. The
// returned Data aliases buf.
func ParseRecord(buf []byte, off int) (Record, error) {
	if off < 0 || off+headerSize > len(buf) {
		return Record{}, fmt.Errorf("header at 0x%x of %d byte buffer: %w", off, len(buf), ErrOutOfBounds)
	}

	r := Record{
		Offset: off,
		Width:  buf[off],
		Height: buf[off+1],
	}

	start := off + headerSize
	end := start + r.Stride()
	if end > len(buf) {
		return Record{}, fmt.Errorf("%dx%d texture at 0x%x needs %d bytes, %d left: %w",
			r.Width, r.Height, off, r.Stride(), len(buf)-start, ErrOutOfBounds)
	}
	r.Data = buf[start:end:end]

	return r, nil
}
