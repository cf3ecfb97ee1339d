//go:build ebiten

package ui

import (
	"image/color"

	"reso/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	cursorColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	stripColor  = color.RGBA{R: 0, G: 0, B: 0, A: 190}
)

// Overlay draws the region inspector on top of the board. Press I to
// toggle it; it outlines the hovered pixel and describes its region.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	pixel *ebiten.Image

	hoverX, hoverY int
	hovering       bool
	caption        string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the inspector and tracks the hovered pixel.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.show = !o.show
	}
	if !o.show {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := o.sim.Size()
	x, y := mx/o.scale, my/o.scale
	o.hovering = mx >= 0 && my >= 0 && x < size.W && y < size.H
	if !o.hovering {
		o.caption = ""
		return
	}
	o.hoverX, o.hoverY = x, y
	if inspector, ok := o.sim.(core.Inspector); ok {
		o.caption = inspector.Describe(x, y)
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.hovering {
		return
	}
	s := float64(o.scale)
	x0, y0 := float64(o.hoverX)*s, float64(o.hoverY)*s
	o.fillRect(screen, x0, y0, s, 1, cursorColor)
	o.fillRect(screen, x0, y0+s-1, s, 1, cursorColor)
	o.fillRect(screen, x0, y0, 1, s, cursorColor)
	o.fillRect(screen, x0+s-1, y0, 1, s, cursorColor)

	if o.caption == "" {
		return
	}
	face := basicfont.Face7x13
	h := screen.Bounds().Dy()
	w := o.sim.Size().W * o.scale
	o.fillRect(screen, 0, float64(h-18), float64(w), 18, stripColor)
	text.Draw(screen, o.caption, face, 4, h-5, cursorColor)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
