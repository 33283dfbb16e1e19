// Command mkstrip draws the characters of an existing BDF, TrueType or
// OpenType font into a glyph strip PNG that img2font can convert.
//
//	./mkstrip -font cherry-11-r.bdf -o cherry.png
//	./img2font -src cherry.png -o cherry.bin -type 0 -n 95
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zachomedia/go-bdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/pbnjay/imgfont/internal/strip"
)

// printable ASCII, space through tilde
const asciiAlphabet = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

var (
	fontName  = flag.String("font", "", "BDF, TTF or OTF font to draw the glyphs with")
	size      = flag.Float64("size", 12, "point size for TrueType/OpenType fonts")
	dpi       = flag.Float64("dpi", 72, "resolution for TrueType/OpenType fonts")
	alphabet  = flag.String("a", asciiAlphabet, "characters to draw, in font order")
	threshold = flag.Uint("t", 0x80, "gray level below which a pixel becomes black; 0 keeps anti-aliasing")
	outName   = flag.String("o", "", "PNG file to create")
)

func loadFace(path string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bdf":
		bf, err := bdf.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("bdf: %w", err)
		}
		return bf.NewFace(), nil
	case ".ttf", ".otf":
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, err
		}
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    *size,
			DPI:     *dpi,
			Hinting: font.HintingFull,
		})
	}
	return nil, fmt.Errorf("unsupported font type %q", filepath.Ext(path))
}

func writePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func main() {
	flag.Parse()
	if *fontName == "" || *outName == "" {
		fmt.Fprintln(os.Stderr, "-font and -o should be provided")
		flag.Usage()
		os.Exit(1)
	}
	if *threshold > 0xff {
		fmt.Fprintln(os.Stderr, "-t must be between 0 and 255")
		os.Exit(1)
	}

	log := logrus.WithField("font", *fontName)
	face, err := loadFace(*fontName)
	if err != nil {
		log.WithError(err).Fatal("loading font")
	}
	defer face.Close()

	img, layout, err := strip.Render(face, *alphabet, strip.Options{Threshold: uint8(*threshold)})
	if err != nil {
		log.WithError(err).Fatal("drawing glyphs")
	}
	// the font format keeps heights and widths in a single byte
	if layout.Height > 0xff {
		log.WithField("height", layout.Height).Warn("strip is taller than 255 pixels, height will wrap")
	}
	for i, w := range layout.Widths {
		if w > 0xff {
			log.WithFields(logrus.Fields{"char": string(layout.Runes[i]), "width": w}).Warn("glyph wider than 255 pixels")
		}
	}
	if err := writePNG(*outName, img); err != nil {
		log.WithError(err).Fatal("writing strip")
	}
	log.WithFields(logrus.Fields{
		"out":    *outName,
		"chars":  len(layout.Runes),
		"height": layout.Height,
		"width":  layout.Width(),
	}).Info("created strip")
	fmt.Fprintf(os.Stderr, "Convert with: img2font -src %s -n %d\n", *outName, len(layout.Runes))
}
