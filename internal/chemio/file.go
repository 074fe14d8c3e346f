package chemio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"xtalview/internal/structure"
)

// Compression selects a stream codec.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

// CompressionFor picks the codec from the file extension: ".gz" for gzip,
// ".zst" or ".zstd" for zstd.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	}
	return None
}

// zstdReadCloser adapts *zstd.Decoder, whose Close returns nothing.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// NewReader wraps r with the decompressor for c.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w with the compressor for c. Close flushes the stream but
// does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopWriteCloser{w}, nil
}

// Load reads a structure file, decompressing by extension.
func Load(path string) (structure.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return structure.Structure{}, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	r, err := NewReader(f, CompressionFor(path))
	if err != nil {
		return structure.Structure{}, fmt.Errorf("load %s: %w", path, err)
	}
	defer r.Close()

	s, err := ReadXYZ(r)
	if err != nil {
		return structure.Structure{}, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path, compressing by extension.
func Save(path string, s structure.Structure) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()

	w, err := NewWriter(f, CompressionFor(path))
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := WriteXYZ(w, s); err != nil {
		w.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
