package imgfont

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

// Glyph is one decoded character. Boolean fonts fill Bits, byte fonts fill
// Levels; both are indexed row-major as y*Width + x.
type Glyph struct {
	Width  int
	Bits   *bitset.BitSet
	Levels []byte
}

// Font is a fully decoded font file.
type Font struct {
	Header
	Glyphs []Glyph
}

// Decode reads a font file produced by Encode.
func Decode(r io.Reader) (*Font, error) {
	br := bufio.NewReader(r)

	hb := make([]byte, HeaderSize)
	if _, err := io.ReadFull(br, hb); err != nil {
		return nil, fmt.Errorf("reading header: %w", eof(err))
	}
	f := &Font{}
	if err := f.Header.UnmarshalBinary(hb); err != nil {
		return nil, err
	}

	height := int(f.Height)
	// char_count is untrusted, so grow as records actually arrive
	f.Glyphs = make([]Glyph, 0, min(int(f.Chars), 1024))
	for i := 0; i < int(f.Chars); i++ {
		w, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("glyph %d width: %w", i, eof(err))
		}
		data := make([]byte, GlyphDataSize(f.Type, int(w), height))
		if _, err := io.ReadFull(br, data); err != nil {
			return nil, fmt.Errorf("glyph %d pixels: %w", i, eof(err))
		}

		g := Glyph{Width: int(w)}
		if f.Type == Boolean {
			g.Bits = unpackBits(data, int(w)*height)
		} else {
			g.Levels = data
		}
		f.Glyphs = append(f.Glyphs, g)
	}
	return f, nil
}

func eof(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// unpackBits expands MSB-first bytes into n pixels, dropping padding bits.
func unpackBits(data []byte, n int) *bitset.BitSet {
	bs := bitset.New(uint(n))
	for p := 0; p < n; p++ {
		if data[p>>3]&(0x80>>uint(p&7)) != 0 {
			bs.Set(uint(p))
		}
	}
	return bs
}

// Set reports whether the pixel at x, y is set. For byte glyphs any
// non-zero level counts as set.
func (g *Glyph) Set(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 {
		return false
	}
	p := y*g.Width + x
	if g.Bits != nil {
		return g.Bits.Test(uint(p))
	}
	return p < len(g.Levels) && g.Levels[p] != 0
}

// Level returns the pixel intensity: 0 or 255 for boolean glyphs.
func (g *Glyph) Level(x, y int) uint8 {
	if g.Bits == nil {
		if x < 0 || x >= g.Width || y < 0 {
			return 0
		}
		p := y*g.Width + x
		if p >= len(g.Levels) {
			return 0
		}
		return g.Levels[p]
	}
	if g.Set(x, y) {
		return 0xff
	}
	return 0
}

// Monospaced reports whether every glyph has the width of the first one.
func (f *Font) Monospaced() bool {
	for _, g := range f.Glyphs {
		if g.Width != f.Glyphs[0].Width {
			return false
		}
	}
	return true
}

// WidthOf returns the pixel width of glyph i.
func (f *Font) WidthOf(i int) int {
	return f.Glyphs[i].Width
}

// TextWidth measures a run of glyphs placed with the font's letter spacing.
func (f *Font) TextWidth(indices ...int) int {
	if len(indices) == 0 {
		return 0
	}
	w := 0
	for _, i := range indices {
		w += f.Glyphs[i].Width + int(f.LetterSpacing)
	}
	return w - int(f.LetterSpacing)
}
