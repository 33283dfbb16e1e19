// Package source loads glyph strip images from disk.
package source

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/pbnjay/imgfont"

	// decoders accepted as strip sources
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads any registered image format from r.
func Decode(r io.Reader) (imgfont.Raster, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return imgfont.FromImage(img), format, nil
}

// Open decodes the image stored at path.
func Open(path string) (imgfont.Raster, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	r, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return r, format, nil
}
