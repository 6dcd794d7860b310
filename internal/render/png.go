package render

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes the buffer contents as a PNG image.
func (b *Buffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.Image())
}

// WritePNG saves the buffer to path.
func (b *Buffer) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
