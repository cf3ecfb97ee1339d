// Package render holds rendered board frames and converts them to images.
package render

import (
	"image"
	"image/color"
)

// Channels is the number of colour channels stored per pixel.
const Channels = 3

// Frame is an RGB pixel array addressed as (x, y, channel). Pixels are
// stored column by column, so Pix[(x*H+y)*3+c] is channel c of the pixel in
// image column x, row y.
type Frame struct {
	W, H int
	Pix  []uint8
}

// NewFrame allocates a black frame.
func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Frame{W: w, H: h, Pix: make([]uint8, w*h*Channels)}
}

// FrameFromImage copies img into a new frame, dropping alpha.
func FrameFromImage(img image.Image) *Frame {
	b := img.Bounds()
	f := NewFrame(b.Dx(), b.Dy())
	for x := 0; x < f.W; x++ {
		for y := 0; y < f.H; y++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			f.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return f
}

func (f *Frame) offset(x, y int) int { return (x*f.H + y) * Channels }

// In reports whether (x, y) lies inside the frame.
func (f *Frame) In(x, y int) bool { return x >= 0 && x < f.W && y >= 0 && y < f.H }

// At returns the opaque colour at (x, y).
func (f *Frame) At(x, y int) color.RGBA {
	if !f.In(x, y) {
		return color.RGBA{}
	}
	i := f.offset(x, y)
	return color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: 255}
}

// Set stores c at (x, y); alpha is discarded.
func (f *Frame) Set(x, y int, c color.RGBA) {
	if !f.In(x, y) {
		return
	}
	i := f.offset(x, y)
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
}

// Clone returns a deep copy of f.
func (f *Frame) Clone() *Frame {
	out := &Frame{W: f.W, H: f.H, Pix: make([]uint8, len(f.Pix))}
	copy(out.Pix, f.Pix)
	return out
}

// Equal reports whether f and o have the same size and pixels.
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	if f.W != o.W || f.H != o.H || len(f.Pix) != len(o.Pix) {
		return false
	}
	for i := range f.Pix {
		if f.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// Diff returns the coordinates of every pixel that differs between f and o.
// Frames of different size report the first pixel only.
func (f *Frame) Diff(o *Frame) []image.Point {
	if f.W != o.W || f.H != o.H {
		return []image.Point{{}}
	}
	var out []image.Point
	for x := 0; x < f.W; x++ {
		for y := 0; y < f.H; y++ {
			if f.At(x, y) != o.At(x, y) {
				out = append(out, image.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Image converts f to an opaque RGBA image in native row-major order.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	f.FillRGBA(img.Pix)
	return img
}

// FillRGBA writes f into buf as row-major RGBA bytes. buf must hold at least
// W*H*4 bytes; extra bytes are left untouched.
func (f *Frame) FillRGBA(buf []byte) {
	if len(buf) < f.W*f.H*4 {
		return
	}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			src := f.offset(x, y)
			dst := (y*f.W + x) * 4
			buf[dst+0] = f.Pix[src+0]
			buf[dst+1] = f.Pix[src+1]
			buf[dst+2] = f.Pix[src+2]
			buf[dst+3] = 255
		}
	}
}
