// Command fontdump prints the header and every glyph of a font file made by
// img2font, so a conversion can be checked by eye.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shurcooL/go-goon"
	"github.com/sirupsen/logrus"

	"github.com/pbnjay/imgfont"
)

var verbose = flag.Bool("v", false, "also dump the decoded header structure")

// grayRamp maps byte font levels, lightest first.
const grayRamp = " .:-=+*#%X"

// levelRows draws a byte glyph with one ramp character per pixel.
func levelRows(f *imgfont.Font, i int) []string {
	g := &f.Glyphs[i]
	rows := make([]string, f.Height)
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < g.Width; x++ {
			sb.WriteByte(grayRamp[int(g.Level(x, y))*len(grayRamp)/256])
		}
		rows[y] = sb.String()
	}
	return rows
}

// glyphRows returns glyph i as Height rows each padded to the glyph width:
// 'X' and ' ' for boolean fonts, a gray ramp for byte fonts.
func glyphRows(f *imgfont.Font, i int) []string {
	if f.Type == imgfont.Byte {
		return levelRows(f, i)
	}
	sd := &imgfont.StringDrawable{}
	f.DrawGlyph(sd, 0, 0, i, nil)
	lines := strings.Split(strings.TrimSuffix(sd.String(), "\n"), "\n")
	if sd.String() == "" {
		lines = nil
	}

	w := f.WidthOf(i)
	rows := make([]string, f.Height)
	for y := range rows {
		line := ""
		if y < len(lines) {
			line = lines[y]
		}
		rows[y] = line + strings.Repeat(" ", w-len(line))
	}
	return rows
}

func dumpFont(out io.Writer, f *imgfont.Font) {
	fmt.Fprintf(out, "%s font: %d glyphs, height %d, letter-spacing %d, line-spacing %d, monospaced %t\n",
		f.Type, f.Chars, f.Height, f.LetterSpacing, f.LineSpacing, f.Monospaced())
	for i := range f.Glyphs {
		for _, row := range glyphRows(f, i) {
			fmt.Fprintf(out, "%3d  [%s]\n", i, row)
		}
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "USAGE: %s [-v] font.bin\n", os.Args[0])
		os.Exit(1)
	}

	log := logrus.WithField("file", flag.Arg(0))
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.WithError(err).Fatal("opening font")
	}
	defer f.Close()

	fnt, err := imgfont.Decode(f)
	if err != nil {
		log.WithError(err).Fatal("decoding font")
	}
	if *verbose {
		goon.Dump(fnt.Header)
	}
	dumpFont(os.Stdout, fnt)
}
