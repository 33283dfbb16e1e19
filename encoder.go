package imgfont

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Options holds the already-validated parameters of a conversion.
type Options struct {
	Type  FontType
	Chars int

	// Spacings are stored masked to 8 bits.
	LetterSpacing int
	LineSpacing   int

	// Log receives per-glyph debug entries. Defaults to the logrus
	// standard logger.
	Log logrus.FieldLogger
}

func isMarker(r, g, b uint8) bool { return r == 0xff && g == 0 && b == 0 }
func isInk(r, g, b uint8) bool    { return r == 0 && g == 0 && b == 0 }

// GlyphWidths scans row 0 of r and returns the width of every segment
// delimited by red marker pixels. The image has no trailing marker, so the
// last entry always covers the columns after the final marker.
func GlyphWidths(r Raster) []int {
	w, _ := r.Bounds()
	var widths []int
	last := -1
	for x := 0; x < w; x++ {
		if isMarker(r.RGB(x, 0)) {
			widths = append(widths, x-last-1)
			last = x
		}
	}
	return append(widths, (w-1)-last)
}

// Encode writes the font file for r to w. Nothing is written if the
// options are invalid or the image lacks marker columns; once the header
// is out, a write error leaves a truncated file behind.
func Encode(w io.Writer, r Raster, opts Options) error {
	if !opts.Type.Valid() {
		return fmt.Errorf("%w: font type %d", ErrInvalidOptions, uint8(opts.Type))
	}
	if opts.Chars < 0 || uint64(opts.Chars) > 0xffffffff {
		return fmt.Errorf("%w: character count %d", ErrInvalidOptions, opts.Chars)
	}
	imgW, imgH := r.Bounds()
	if imgW <= 0 || imgH <= 0 {
		return ErrEmptyImage
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	widths := GlyphWidths(r)
	if len(widths) < opts.Chars {
		return &MarkerError{Need: opts.Chars, Have: len(widths)}
	}

	hdr := NewHeader(opts.Type, uint32(opts.Chars), imgH, opts.LetterSpacing, opts.LineSpacing)
	hb, _ := hdr.MarshalBinary()
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hb); err != nil {
		return err
	}

	height := int(hdr.Height)
	xOffset := 0
	for i, wc := range widths[:opts.Chars] {
		// a width over 255 is stored and scanned masked, the glyph keeps
		// only its leftmost columns, while xOffset still skips all of them
		stored := wc & 0xff
		if err := bw.WriteByte(byte(stored)); err != nil {
			return err
		}
		var err error
		if opts.Type == Boolean {
			err = writeBoolGlyph(bw, r, xOffset, stored, height)
		} else {
			err = writeByteGlyph(bw, r, xOffset, stored, height)
		}
		if err != nil {
			return fmt.Errorf("glyph %d: %w", i, err)
		}
		log.WithFields(logrus.Fields{"glyph": i, "x": xOffset, "width": wc}).Debug("encoded glyph")
		xOffset += wc + 1
	}
	return bw.Flush()
}

func writeBoolGlyph(bw *bufio.Writer, r Raster, x0, w, h int) error {
	var buf uint8
	used := 0
	for y := 0; y < h; y++ {
		for x := x0; x < x0+w; x++ {
			if isInk(r.RGB(x, y)) {
				buf |= 1 << uint(7-used)
			}
			used++
			if used == 8 {
				if err := bw.WriteByte(buf); err != nil {
					return err
				}
				buf, used = 0, 0
			}
		}
	}
	// the remaining low bits are padding
	if used != 0 {
		return bw.WriteByte(buf)
	}
	return nil
}

func writeByteGlyph(bw *bufio.Writer, r Raster, x0, w, h int) error {
	for y := 0; y < h; y++ {
		for x := x0; x < x0+w; x++ {
			_, _, b := r.RGB(x, y)
			if err := bw.WriteByte(0xff - b); err != nil {
				return err
			}
		}
	}
	return nil
}
