//go:build !ebiten

package ui

import "reso/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil; headless builds have no panel.
func NewHUD(core.Sim, int) *HUD { return nil }

func (h *HUD) Update(...core.ParameterGroup) {}

func (h *HUD) Draw(any, int, int) {}
