package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Frame is a rendered pair of 1-bit planes in the panel's native
// orientation, ready for a paint call with no further transform. A set bit
// is a white/unset pixel; text clears bits on the black plane. The red plane
// is always blank.
type Frame struct {
	// Width and Height are the native panel dimensions.
	Width  int
	Height int
	// Black and Red are row-major planes, one bit per pixel, MSB first,
	// rows padded to whole bytes.
	Black []byte
	Red   []byte
}

// PlaneSize returns the byte length of one 1-bit plane for a w x h panel.
func PlaneSize(w, h int) int {
	return ((w + 7) / 8) * h
}

// Compose renders text for a panel whose native pixel order is
// nativeW x nativeH but which is mounted to be read rotated 90 degrees. The
// raster is composed at the swapped nativeH x nativeW size, wrapped lines are
// drawn top to bottom starting at (Padding, Padding), and the canvas is then
// rotated 270 degrees into the native orientation and packed into planes.
func Compose(text string, face font.Face, fontSize, nativeW, nativeH int) (*Frame, error) {
	if nativeW <= 0 || nativeH <= 0 {
		return nil, fmt.Errorf("invalid panel dimensions %dx%d", nativeW, nativeH)
	}

	// Swapped dimensions for horizontal reading.
	drawWidth, drawHeight := nativeH, nativeW
	canvas := image.NewGray(image.Rect(0, 0, drawWidth, drawHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	lines := Fit(Wrap(text, face, drawWidth-2*Padding), fontSize, drawHeight)

	// The drawer positions text by baseline; the layout tracks the top edge.
	ascent := face.Metrics().Ascent.Ceil()
	y := Padding
	for _, line := range lines {
		d := font.Drawer{
			Dst:  canvas,
			Src:  image.NewUniform(color.Black),
			Face: face,
			Dot:  fixed.P(Padding, y+ascent),
		}
		d.DrawString(line)
		y += LineHeight(fontSize)
	}

	native := imaging.Rotate270(canvas)

	return &Frame{
		Width:  nativeW,
		Height: nativeH,
		Black:  packPlane(native, nativeW, nativeH),
		Red:    blankPlane(nativeW, nativeH),
	}, nil
}

// packPlane converts img into a 1-bit plane. Pixels darker than mid-gray
// clear their bit; everything else stays white.
func packPlane(img image.Image, w, h int) []byte {
	rowBytes := (w + 7) / 8
	buf := blankPlane(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if g.Y < 128 {
				buf[y*rowBytes+x/8] &^= 0x80 >> uint(x%8)
			}
		}
	}
	return buf
}

// blankPlane returns an all-white plane. Row padding bits stay set so the
// panel edge renders white.
func blankPlane(w, h int) []byte {
	buf := make([]byte, PlaneSize(w, h))
	for i := range buf {
		buf[i] = 0xff
	}
	return buf
}
