package imgfont

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Raster is the only view of a source image the encoder needs. Coordinates
// are relative to the top-left pixel, so (0, 0) is always the first pixel
// of row 0.
type Raster interface {
	Bounds() (width, height int)
	RGB(x, y int) (r, g, b uint8)
}

// FromImage adapts a decoded image into a Raster. Alpha is dropped without
// being applied to the colour channels, so a transparent pixel keeps the
// RGB value it was stored with whenever the image model allows it.
// Only models without a stored straight colour go through a conversion.
func FromImage(m image.Image) Raster {
	switch im := m.(type) {
	case *image.NRGBA:
		return &pixRaster{pix: im.Pix, stride: im.Stride, rect: im.Rect, step: 1}
	case *image.RGBA:
		return &pixRaster{pix: im.Pix, stride: im.Stride, rect: im.Rect, step: 1}
	case *image.NRGBA64:
		return &pixRaster{pix: im.Pix, stride: im.Stride, rect: im.Rect, step: 2}
	case *image.RGBA64:
		return &pixRaster{pix: im.Pix, stride: im.Stride, rect: im.Rect, step: 2}
	case *image.Paletted:
		return newPaletteRaster(im)
	}
	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	return &pixRaster{pix: dst.Pix, stride: dst.Stride, rect: dst.Rect, step: 1}
}

// pixRaster reads RGBA-ordered buffers of 8 (step 1) or 16 (step 2,
// big-endian) bits per channel; for 16 bits the high byte is used.
type pixRaster struct {
	pix    []uint8
	stride int
	rect   image.Rectangle
	step   int
}

func (p *pixRaster) Bounds() (int, int) {
	return p.rect.Dx(), p.rect.Dy()
}

func (p *pixRaster) RGB(x, y int) (uint8, uint8, uint8) {
	i := y*p.stride + x*4*p.step
	return p.pix[i], p.pix[i+p.step], p.pix[i+2*p.step]
}

// paletteRaster looks pixels up in the straight RGB of each palette entry.
type paletteRaster struct {
	img *image.Paletted
	rgb [][3]uint8
}

func newPaletteRaster(im *image.Paletted) *paletteRaster {
	p := &paletteRaster{img: im, rgb: make([][3]uint8, len(im.Palette))}
	for i, c := range im.Palette {
		// NRGBA entries (PNG tRNS palettes) convert to themselves
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		p.rgb[i] = [3]uint8{n.R, n.G, n.B}
	}
	return p
}

func (p *paletteRaster) Bounds() (int, int) {
	return p.img.Rect.Dx(), p.img.Rect.Dy()
}

func (p *paletteRaster) RGB(x, y int) (uint8, uint8, uint8) {
	idx := int(p.img.Pix[y*p.img.Stride+x])
	if idx >= len(p.rgb) {
		// indices past the palette read as black
		return 0, 0, 0
	}
	c := p.rgb[idx]
	return c[0], c[1], c[2]
}
