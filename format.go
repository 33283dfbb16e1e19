package imgfont

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the number of bytes preceding the first glyph record.
const HeaderSize = 8

// FontType selects how glyph pixels are stored.
type FontType uint8

const (
	// Boolean fonts store one bit per pixel, MSB first, black is set.
	Boolean FontType = 0
	// Byte fonts store one intensity byte per pixel (255 - blue).
	Byte FontType = 1
)

// Valid reports whether t is one of the two known font types.
func (t FontType) Valid() bool {
	return t == Boolean || t == Byte
}

// String returns "boolean" or "byte".
func (t FontType) String() string {
	switch t {
	case Boolean:
		return "boolean"
	case Byte:
		return "byte"
	}
	return fmt.Sprintf("FontType(%d)", uint8(t))
}

var (
	// ErrMarkerDeficiency is returned when row 0 of the source image has
	// fewer marker-delimited segments than the requested character count.
	ErrMarkerDeficiency = errors.New("imgfont: not enough marker columns for character count")
	// ErrInvalidOptions is returned for an unknown font type or a character
	// count that does not fit the header.
	ErrInvalidOptions = errors.New("imgfont: invalid options")
	// ErrEmptyImage is returned for a source image without pixels.
	ErrEmptyImage = errors.New("imgfont: source image has no pixels")
	// ErrUnknownType is returned when a font file names an unknown font type.
	ErrUnknownType = errors.New("imgfont: unknown font type")
)

// MarkerError reports how many glyph segments were requested and found.
type MarkerError struct {
	Need, Have int
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("imgfont: %d characters requested but only %d segments found in row 0", e.Need, e.Have)
}

func (e *MarkerError) Unwrap() error { return ErrMarkerDeficiency }

// Header is the fixed prefix of a font file.
type Header struct {
	Type          FontType
	Chars         uint32
	Height        uint8
	LetterSpacing uint8
	LineSpacing   uint8
}

// NewHeader builds a Header, truncating height and spacings to 8 bits
// the way the file format requires.
func NewHeader(t FontType, chars uint32, height, letterSpacing, lineSpacing int) Header {
	return Header{
		Type:          t,
		Chars:         chars,
		Height:        uint8(height & 0xff),
		LetterSpacing: uint8(letterSpacing & 0xff),
		LineSpacing:   uint8(lineSpacing & 0xff),
	}
}

// MarshalBinary returns the 8 header bytes, char count big-endian.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	b[0] = byte(h.Type)
	binary.BigEndian.PutUint32(b[1:5], h.Chars)
	b[5] = h.Height
	b[6] = h.LetterSpacing
	b[7] = h.LineSpacing
	return b, nil
}

// UnmarshalBinary parses the first 8 bytes of b into h.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("imgfont: header needs %d bytes, got %d", HeaderSize, len(b))
	}
	t := FontType(b[0])
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownType, b[0])
	}
	h.Type = t
	h.Chars = binary.BigEndian.Uint32(b[1:5])
	h.Height = b[5]
	h.LetterSpacing = b[6]
	h.LineSpacing = b[7]
	return nil
}

// GlyphDataSize is the number of pixel bytes following a glyph's width byte.
func GlyphDataSize(t FontType, width, height int) int {
	n := width * height
	if t == Boolean {
		return (n + 7) / 8
	}
	return n
}
