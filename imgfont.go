// Package imgfont converts a single-row glyph strip image into a compact
// binary bitmap font, and reads such fonts back.
//
// The source image holds every glyph side by side. Row 0 carries exact red
// (0xFF, 0x00, 0x00) pixels marking the one-pixel columns that separate
// adjacent glyphs; the last glyph has no trailing marker. Glyph widths are
// taken from those markers, the glyph height is the image height.
//
// Fonts come in two flavours. Boolean fonts pack one bit per pixel, set
// where the source pixel is exact black. Byte fonts store 255 minus the
// blue channel for every pixel.
//
// See cmd/img2font for the converter and cmd/mkstrip for building a strip
// from an existing BDF or TrueType font.
package imgfont

import (
	"bytes"
	"image/color"
)

// Drawable is an interface which supports setting an x,y coordinate to a color.
type Drawable interface {
	Set(x, y int, c color.Color)
}

// DrawGlyph copies glyph i into dr with its top-left corner at x,y. Only
// set pixels are drawn, everything else in dr is left as-is. If the font
// has no glyph i, DrawGlyph returns false and no drawing is done.
func (f *Font) DrawGlyph(dr Drawable, x, y, i int, clr color.Color) bool {
	if i < 0 || i >= len(f.Glyphs) {
		return false
	}
	g := &f.Glyphs[i]
	for yy := 0; yy < int(f.Height); yy++ {
		for xx := 0; xx < g.Width; xx++ {
			if g.Set(xx, yy) {
				dr.Set(x+xx, y+yy, clr)
			}
		}
	}
	return true
}

///////

// StringDrawable implements Drawable so glyphs can be previewed as text.
type StringDrawable struct {
	lines [][]byte
}

func (s *StringDrawable) Set(x, y int, c color.Color) {
	for len(s.lines) <= y {
		s.lines = append(s.lines, make([]byte, x))
	}

	if len(s.lines[y]) <= x {
		nb := make([]byte, 1+(x-len(s.lines[y])))
		s.lines[y] = append(s.lines[y], nb...)
	}

	s.lines[y][x] = byte('X')
}

// String returns the current string representation of this Drawable.
func (s *StringDrawable) String() string {
	return s.PrefixString("")
}

// PrefixString returns the current string representation of this Drawable with a
// user-provided prefix before each line.
func (s *StringDrawable) PrefixString(p string) string {
	r := ""
	for _, line := range s.lines {
		r += p + string(bytes.Replace(line, []byte{0}, []byte(" "), -1)) + "\n"
	}
	return r
}

// Reset clears the drawable so it can be reused for the next glyph.
func (s *StringDrawable) Reset() {
	s.lines = s.lines[:0]
}
