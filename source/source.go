/*
Package source loads game binaries into memory.

Files compressed with zstd or gzip are expanded transparently so that
texture offsets always refer to the uncompressed image.
*/
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ErrShortRead is returned when fewer bytes than the file size could be
// read.
var ErrShortRead = errors.New("source: short read")

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

// Load reads the whole file at path.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("could not stat file %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("cannot read non-regular file %q: %s", path, info.Mode().String())
	}

	buf := make([]byte, info.Size())
	if n, err := io.ReadFull(f, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("could not read file %q, got %d of %d bytes: %w", path, n, len(buf), ErrShortRead)
		}
		return nil, fmt.Errorf("could not read file %q: %w", path, err)
	}

	out, err := Decompress(buf)
	if err != nil {
		return nil, fmt.Errorf("could not decompress file %q: %w", path, err)
	}
	return out, nil
}

// Decompress expands buf if it starts with a zstd or gzip header and returns
// it unchanged otherwise.
func Decompress(buf []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(buf, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(buf, nil)
	case bytes.HasPrefix(buf, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(buf))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return buf, nil
}
