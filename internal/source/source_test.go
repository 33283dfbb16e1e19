package source

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/pbnjay/imgfont"
)

func testStrip() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0xff, 0xff, 0xff, 0xff})
		}
	}
	img.SetNRGBA(2, 0, color.NRGBA{0xff, 0, 0, 0xff})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 0, 0xff})
	return img
}

func TestDecodeFormats(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer, image.Image) error{
		"png": func(b *bytes.Buffer, m image.Image) error { return png.Encode(b, m) },
		"bmp": func(b *bytes.Buffer, m image.Image) error { return bmp.Encode(b, m) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := enc(&buf, testStrip()); err != nil {
				t.Fatal(err)
			}
			r, format, err := Decode(&buf)
			if err != nil {
				t.Fatal(err)
			}
			if format != name {
				t.Errorf("expected format %s, got %s", name, format)
			}
			if w, h := r.Bounds(); w != 5 || h != 2 {
				t.Errorf("unexpected bounds %dx%d", w, h)
			}
			widths := imgfont.GlyphWidths(r)
			if len(widths) != 2 || widths[0] != 2 || widths[1] != 2 {
				t.Errorf("unexpected widths %v", widths)
			}
			if rr, gg, bb := r.RGB(0, 1); rr != 0 || gg != 0 || bb != 0 {
				t.Errorf("expected black at 0,1, got %d,%d,%d", rr, gg, bb)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testStrip()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, _, err := Open(path); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Open(filepath.Join(t.TempDir(), "missing.png")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatal("expected error")
	}
}
