// Package board compiles a pixel-art circuit into regions and elements and
// simulates it tick by tick.
package board

import (
	"image"
	"image/color"
	"log"

	"reso/internal/circuit"
	"reso/internal/core"
	"reso/internal/palette"
	"reso/internal/region"
	"reso/internal/render"

	"github.com/pkg/errors"
)

// Config controls board construction.
type Config struct {
	// Name identifies the board in logs and window titles.
	Name string
	// Logger receives a build summary. Nil keeps the board silent.
	Logger *log.Logger
}

// DefaultName identifies boards built without a name.
const DefaultName = "reso"

// DefaultConfig returns the standard configuration. Its empty Name lets
// LoadWithConfig name the board after its file.
func DefaultConfig() Config {
	return Config{}
}

// Board is a compiled circuit image together with its current state.
type Board struct {
	cfg Config

	resels  core.Grid[palette.Resel]
	regions *region.Map
	circuit *circuit.Circuit

	initial []bool
	colors  []color.RGBA
	frame   *render.Frame
	ticks   int
}

// New builds a board from img using the default configuration.
func New(img image.Image) (*Board, error) {
	return NewWithConfig(img, DefaultConfig())
}

// NewWithConfig classifies every pixel of img, labels regions, instantiates
// the circuit and renders the initial frame. A single pixel outside the
// palette aborts the build.
func NewWithConfig(img image.Image, cfg Config) (*Board, error) {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	bounds := img.Bounds()
	resels := core.NewGrid[palette.Resel](bounds.Dx(), bounds.Dy())
	for x := 0; x < resels.W; x++ {
		for y := 0; y < resels.H; y++ {
			r, err := palette.Classify(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if err != nil {
				return nil, errors.Wrapf(err, "board: pixel (%d,%d)", x, y)
			}
			resels.Set(x, y, r)
		}
	}

	regions := region.Build(resels)
	circ := circuit.Build(regions)
	b := &Board{
		cfg:     cfg,
		resels:  resels,
		regions: regions,
		circuit: circ,
		initial: circ.Snapshot(nil),
		colors:  make([]color.RGBA, regions.Len()+1),
		frame:   render.NewFrame(resels.W, resels.H),
	}
	b.Update()

	if cfg.Logger != nil {
		cfg.Logger.Printf("board %s: %dx%d, %d regions, %d wires, %d inputs, %d outputs, %d xor, %d and, %d circuits",
			cfg.Name, resels.W, resels.H, regions.Len(),
			len(circ.Wires()), len(circ.Inputs()), len(circ.Outputs()),
			len(circ.Xors()), len(circ.Ands()), regions.Components())
	}
	return b, nil
}

// Name returns the board identifier.
func (b *Board) Name() string { return b.cfg.Name }

// Size reports the board dimensions in pixels.
func (b *Board) Size() core.Size { return b.resels.Size() }

// Ticks returns the number of ticks since construction or the last Reset.
func (b *Board) Ticks() int { return b.ticks }

// Iterate advances the circuit by one synchronous tick and re-renders it.
func (b *Board) Iterate() {
	b.circuit.Tick()
	b.ticks++
	b.Update()
}

// Step is an alias for Iterate so the board satisfies core.Sim.
func (b *Board) Step() { b.Iterate() }

// Update re-renders the frame from the current element states without
// changing any state.
func (b *Board) Update() {
	b.colors[region.None] = palette.Render(palette.Empty)
	b.circuit.Elements(func(e circuit.Element) {
		b.colors[e.RegionID()] = palette.Render(palette.Resel{Class: e.Class(), Active: e.Active()})
	})
	for x := 0; x < b.frame.W; x++ {
		for y := 0; y < b.frame.H; y++ {
			id, _ := b.regions.At(x, y)
			b.frame.Set(x, y, b.colors[id])
		}
	}
}

// Frame exposes the live frame. It changes on every Update.
func (b *Board) Frame() *render.Frame { return b.frame }

// Image returns a copy of the current frame in (x, y, channel) layout.
func (b *Board) Image() *render.Frame { return b.frame.Clone() }

// Reset restores the states read from the source image. A non-zero seed
// then assigns every wire a pseudo-random state derived from the seed.
func (b *Board) Reset(seed int64) {
	b.circuit.Restore(b.initial)
	if seed != 0 {
		rng := core.NewRNG(seed)
		for _, w := range b.circuit.Wires() {
			w.SetActive(rng.Bool())
		}
	}
	b.ticks = 0
	b.Update()
}

// Toggle flips the wire covering pixel (x, y) and re-renders. It reports
// false when the pixel is not part of a wire.
func (b *Board) Toggle(x, y int) bool {
	id, ok := b.regions.At(x, y)
	if !ok {
		return false
	}
	w, ok := b.circuit.Wire(id)
	if !ok {
		return false
	}
	w.SetActive(!w.Active())
	b.Update()
	return true
}

// ReselAt returns the classification of source pixel (x, y).
func (b *Board) ReselAt(x, y int) palette.Resel { return b.resels.At(x, y) }

// Regions exposes the region map.
func (b *Board) Regions() *region.Map { return b.regions }

// Circuit exposes the element registry.
func (b *Board) Circuit() *circuit.Circuit { return b.circuit }

// RegionAt returns the region covering pixel (x, y).
func (b *Board) RegionAt(x, y int) (region.ID, bool) { return b.regions.At(x, y) }

// RegionsWithClass returns the regions of class c.
func (b *Board) RegionsWithClass(c palette.Class) []region.ID { return b.regions.WithClass(c) }

// AdjacentRegions returns the regions sharing a border with id.
func (b *Board) AdjacentRegions(id region.ID) []region.ID { return b.regions.Adjacent(id) }
