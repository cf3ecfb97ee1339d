//go:build !ebiten

package app

import (
	"errors"

	"reso/internal/core"
)

// ErrNoGUI is returned by the headless Game.
var ErrNoGUI = errors.New("app: viewer requires the 'ebiten' build tag")

// Game stands in for the viewer when ebiten is not compiled in.
type Game struct{}

// New panics: the headless build has no window to open.
func New(core.Sim, *Config) *Game {
	panic(ErrNoGUI)
}

// Reset does nothing without a window.
func (g *Game) Reset(int64) {}

// Update reports ErrNoGUI.
func (g *Game) Update() error { return ErrNoGUI }

// Draw does nothing without a window.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
