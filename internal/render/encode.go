package render

import (
	"image/png"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// Format selects the encoding used for written frames.
type Format string

const (
	// FormatPNG writes lossless PNG files.
	FormatPNG Format = "png"
	// FormatBMP writes uncompressed BMP files.
	FormatBMP Format = "bmp"
)

// ParseFormat accepts a format name with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(s, "."))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatBMP:
		return FormatBMP, nil
	default:
		return "", errors.Errorf("render: unsupported frame format %q", s)
	}
}

// Encode writes f to w in the given format.
func Encode(w io.Writer, f *Frame, format Format) error {
	img := f.Image()
	switch format {
	case FormatBMP:
		return errors.Wrap(bmp.Encode(w, img), "render: encode bmp")
	case FormatPNG, "":
		return errors.Wrap(png.Encode(w, img), "render: encode png")
	default:
		return errors.Errorf("render: unsupported frame format %q", format)
	}
}
