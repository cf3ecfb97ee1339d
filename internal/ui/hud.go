//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"reso/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 12
	lineHeight     = 16
	groupSpacing   = 8
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor  = color.RGBA{R: 150, G: 170, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	activeColor = color.RGBA{R: 120, G: 220, B: 140, A: 255}
)

// HUD renders the diagnostics panel to the right of the board view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Update refreshes the cached parameter snapshot from the simulation. Extra
// groups are appended after the simulation's own.
func (h *HUD) Update(extra ...core.ParameterGroup) {
	if h == nil {
		return
	}
	h.snapshot = core.ParameterSnapshot{}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	h.snapshot.Groups = append(h.snapshot.Groups, extra...)
}

// Draw paints the HUD panel anchored to the right edge of the board view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawParameters()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Board"
	}
	return sim.Name()
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	if len(h.snapshot.Groups) == 0 {
		text.Draw(h.panel, "No diagnostics", face, panelPadding, y+lineHeight, mutedColor)
		return
	}
	for _, group := range h.snapshot.Groups {
		y += lineHeight + groupSpacing
		text.Draw(h.panel, strings.ToUpper(group.Name), face, panelPadding, y, groupColor)
		for _, param := range group.Params {
			y += lineHeight
			if y > h.lastHeight {
				return
			}
			text.Draw(h.panel, param.Label, face, panelPadding, y, labelColor)
			value, col := formatValue(param)
			bounds := text.BoundString(face, value)
			text.Draw(h.panel, value, face, h.width-panelPadding-bounds.Dx(), y, col)
		}
	}
}

func formatValue(p core.Parameter) (string, color.Color) {
	switch p.Type {
	case core.ParamTypeBool:
		if p.Value == "true" {
			return "yes", activeColor
		}
		return "no", mutedColor
	case core.ParamTypeInt:
		if p.Value == "0" {
			return p.Value, mutedColor
		}
		return p.Value, labelColor
	default:
		return p.Value, labelColor
	}
}
