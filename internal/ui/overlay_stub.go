//go:build !ebiten

package ui

import "reso/internal/core"

// Overlay is the headless stand-in for the region inspector.
type Overlay struct{}

// NewOverlay returns an inert overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

func (o *Overlay) Update() {}

func (o *Overlay) Draw(any) {}
