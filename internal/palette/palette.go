// Package palette maps pixel colours to circuit resels and back.
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Entry pairs a palette colour with its resel and text glyph.
type Entry struct {
	Resel Resel
	Color color.RGBA
	Glyph rune
}

// Active shades use full channel intensity, inactive shades half of it.
const (
	shadeOn  = 255
	shadeOff = 128
)

var entries = []Entry{
	{Resel: Empty, Color: color.RGBA{A: 255}, Glyph: '.'},
	{Resel: Resel{ClassRedWire, true}, Color: rgb(shadeOn, 0, 0), Glyph: 'R'},
	{Resel: Resel{ClassRedWire, false}, Color: rgb(shadeOff, 0, 0), Glyph: 'r'},
	{Resel: Resel{ClassBlueWire, true}, Color: rgb(0, 0, shadeOn), Glyph: 'B'},
	{Resel: Resel{ClassBlueWire, false}, Color: rgb(0, 0, shadeOff), Glyph: 'b'},
	{Resel: Resel{ClassInput, true}, Color: rgb(shadeOn, 0, shadeOn), Glyph: 'I'},
	{Resel: Resel{ClassInput, false}, Color: rgb(shadeOff, 0, shadeOff), Glyph: 'i'},
	{Resel: Resel{ClassOutput, true}, Color: rgb(shadeOn, shadeOn, 0), Glyph: 'O'},
	{Resel: Resel{ClassOutput, false}, Color: rgb(shadeOff, shadeOff, 0), Glyph: 'o'},
	{Resel: Resel{ClassXor, true}, Color: rgb(0, shadeOn, shadeOn), Glyph: 'X'},
	{Resel: Resel{ClassXor, false}, Color: rgb(0, shadeOff, shadeOff), Glyph: 'x'},
	{Resel: Resel{ClassAnd, true}, Color: rgb(0, shadeOn, 0), Glyph: 'A'},
	{Resel: Resel{ClassAnd, false}, Color: rgb(0, shadeOff, 0), Glyph: 'a'},
}

var (
	byColor = make(map[color.RGBA]Resel, len(entries))
	byResel = make(map[Resel]Entry, len(entries))
	byGlyph = make(map[rune]Resel, len(entries))
)

func init() {
	for _, e := range entries {
		if _, dup := byColor[e.Color]; dup {
			panic(fmt.Sprintf("palette: duplicate colour %s", hex(e.Color)))
		}
		if _, dup := byGlyph[e.Glyph]; dup {
			panic(fmt.Sprintf("palette: duplicate glyph %q", e.Glyph))
		}
		byColor[e.Color] = e.Resel
		byResel[e.Resel] = e
		byGlyph[e.Glyph] = e.Resel
	}
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

func hex(c color.RGBA) string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Entries returns a copy of the palette table.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Opaque strips alpha from c, returning its non-premultiplied RGB as an
// opaque colour.
func Opaque(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}

// Classify returns the resel for c. Alpha is ignored.
func Classify(c color.Color) (Resel, error) {
	key := Opaque(c)
	if r, ok := byColor[key]; ok {
		return r, nil
	}
	nearest, dist := Nearest(key)
	return Empty, &UnknownColorError{Color: key, Nearest: nearest, Distance: dist}
}

// Render returns the palette colour of r. Unknown classes render as empty.
func Render(r Resel) color.RGBA {
	if e, ok := byResel[r.Normalize()]; ok {
		return e.Color
	}
	return byResel[Empty].Color
}

// Nearest returns the palette resel whose colour is closest to c in CIE Lab
// space, with that distance.
func Nearest(c color.Color) (Resel, float64) {
	target := toColorful(Opaque(c))
	best, bestDist := Empty, -1.0
	for _, e := range entries {
		d := target.DistanceLab(toColorful(e.Color))
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.Resel, d
		}
	}
	return best, bestDist
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ParseGlyph returns the resel written as g in the text board format.
func ParseGlyph(g rune) (Resel, error) {
	if g == ' ' {
		return Empty, nil
	}
	if r, ok := byGlyph[g]; ok {
		return r, nil
	}
	return Empty, &UnknownGlyphError{Glyph: g}
}

// Glyph returns the text board character for r.
func Glyph(r Resel) rune {
	if e, ok := byResel[r.Normalize()]; ok {
		return e.Glyph
	}
	return byResel[Empty].Glyph
}

// UnknownColorError reports a pixel colour that is not in the palette.
type UnknownColorError struct {
	Color    color.RGBA
	Nearest  Resel
	Distance float64
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("palette: unknown colour %s (nearest %s %s)",
		hex(e.Color), e.Nearest, hex(Render(e.Nearest)))
}

// UnknownGlyphError reports a text board character that is not in the palette.
type UnknownGlyphError struct {
	Glyph rune
}

func (e *UnknownGlyphError) Error() string {
	return fmt.Sprintf("palette: unknown glyph %q", e.Glyph)
}
