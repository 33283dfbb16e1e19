package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/pbnjay/imgfont"
	"github.com/pbnjay/imgfont/internal/prompt"
)

// writeStrip saves a 10x8 strip: a 3 pixel black glyph, a marker at x=3,
// then a 6 pixel white glyph.
func writeStrip(t *testing.T, dir string) string {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			c := color.NRGBA{0xff, 0xff, 0xff, 0xff}
			if x < 3 {
				c = color.NRGBA{0, 0, 0, 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	img.SetNRGBA(3, 0, color.NRGBA{0xff, 0, 0, 0xff})

	path := filepath.Join(dir, "strip.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = &bytes.Buffer{}
	return log
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	p := &params{
		src:    writeStrip(t, dir),
		dst:    filepath.Join(dir, "font.bin"),
		typ:    imgfont.Boolean,
		chars:  2,
		letter: 1,
	}
	if err := convert(p, quietLogger()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(p.dst)
	if err != nil {
		t.Fatal(err)
	}
	header := []byte{0x00, 0x00, 0x00, 0x00, 0x02, 0x08, 0x01, 0x00}
	if !bytes.HasPrefix(data, header) {
		t.Fatalf("unexpected header % x", data[:8])
	}
	if len(data) != 8+1+3+1+6 {
		t.Errorf("unexpected file size %d", len(data))
	}

	// the destination now exists and must not be overwritten
	if err := convert(p, quietLogger()); !os.IsExist(err) {
		t.Errorf("expected exist error, got %v", err)
	}
}

func TestConvertRemovesFailedFont(t *testing.T) {
	dir := t.TempDir()
	p := &params{
		src:   writeStrip(t, dir),
		dst:   filepath.Join(dir, "font.bin"),
		typ:   imgfont.Byte,
		chars: 5,
	}
	err := convert(p, quietLogger())
	if !errors.Is(err, imgfont.ErrMarkerDeficiency) {
		t.Fatalf("expected marker deficiency, got %v", err)
	}
	if _, err := os.Stat(p.dst); !os.IsNotExist(err) {
		t.Errorf("failed font file was left behind: %v", err)
	}
}

func TestGatherPrompts(t *testing.T) {
	dir := t.TempDir()
	src := writeStrip(t, dir)
	dst := filepath.Join(dir, "font.bin")

	in := strings.Join([]string{src, dst, "1", "two", "2", "300", "0"}, "\n") + "\n"
	p, err := gather(prompt.New(strings.NewReader(in), &bytes.Buffer{}), map[string]bool{})
	if err != nil {
		t.Fatal(err)
	}
	if p.src != src || p.dst != dst || p.typ != imgfont.Byte || p.chars != 2 || p.letter != 300 || p.line != 0 {
		t.Errorf("unexpected params %+v", p)
	}
}

func TestGatherFlags(t *testing.T) {
	dir := t.TempDir()
	*srcName = writeStrip(t, dir)
	*dstName = *srcName
	defer func() { *srcName, *dstName = "", "" }()

	given := map[string]bool{"src": true, "o": true}
	_, err := gather(prompt.New(strings.NewReader(""), &bytes.Buffer{}), given)
	if !errors.Is(err, prompt.ErrDestExists) {
		t.Fatalf("expected ErrDestExists, got %v", err)
	}
}
