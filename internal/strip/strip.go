// Package strip draws an alphabet from a font face into a marker strip: a
// single row of glyphs separated by one-pixel columns whose top pixel is
// exact red. The result is the input imgfont.Encode expects.
package strip

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Marker is the colour of the separator pixel in row 0.
var Marker = color.NRGBA{0xff, 0x00, 0x00, 0xff}

// ErrEmptyAlphabet is returned when there is nothing to draw.
var ErrEmptyAlphabet = errors.New("strip: empty alphabet")

// Options controls how glyphs land on the strip.
type Options struct {
	// Threshold turns anti-aliased pixels into pure black or white: a
	// pixel darker than Threshold becomes black. Zero keeps the grays,
	// which only byte fonts can make use of.
	Threshold uint8
}

// Layout holds the glyph widths chosen for each rune of the alphabet.
type Layout struct {
	Runes  []rune
	Widths []int
	Ascent int
	Height int
}

// Width is the full strip width, one marker column between glyphs.
func (l *Layout) Width() int {
	w := len(l.Widths) - 1
	for _, gw := range l.Widths {
		w += gw
	}
	return w
}

// Measure works out the strip layout for alphabet without drawing it.
func Measure(face font.Face, alphabet string) (*Layout, error) {
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}
	m := face.Metrics()
	l := &Layout{Ascent: m.Ascent.Ceil()}
	l.Height = l.Ascent + m.Descent.Ceil()
	if l.Height <= 0 {
		return nil, fmt.Errorf("strip: face has no height (ascent %v, descent %v)", m.Ascent, m.Descent)
	}
	for _, r := range alphabet {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			return nil, fmt.Errorf("strip: face has no glyph for %q", r)
		}
		l.Runes = append(l.Runes, r)
		l.Widths = append(l.Widths, adv.Ceil())
	}
	return l, nil
}

// Render draws alphabet in black on white, clipping every glyph to its
// own advance so nothing bleeds into a marker column.
func Render(face font.Face, alphabet string, opts Options) (*image.NRGBA, *Layout, error) {
	l, err := Measure(face, alphabet)
	if err != nil {
		return nil, nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, l.Width(), l.Height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	x := 0
	for i, r := range l.Runes {
		w := l.Widths[i]
		cell := dst.SubImage(image.Rect(x, 0, x+w, l.Height)).(*image.NRGBA)
		d := font.Drawer{
			Dst:  cell,
			Src:  image.Black,
			Face: face,
			Dot:  fixed.P(x, l.Ascent),
		}
		d.DrawString(string(r))
		if opts.Threshold != 0 {
			threshold(cell, opts.Threshold)
		}
		if i < len(l.Runes)-1 {
			dst.SetNRGBA(x+w, 0, Marker)
		}
		x += w + 1
	}
	return dst, l, nil
}

func threshold(img *image.NRGBA, t uint8) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			gray := color.GrayModel.Convert(c).(color.Gray)
			if gray.Y < t {
				img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 0xff})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{0xff, 0xff, 0xff, 0xff})
			}
		}
	}
}
