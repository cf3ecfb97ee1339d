// Package circuit turns labeled regions into stateful circuit elements and
// advances them in synchronous ticks.
package circuit

import (
	"reso/internal/palette"
	"reso/internal/region"
)

// Element is one stateful circuit object bound to exactly one region. The
// set of implementations is closed: *Wire, *InputAdapter, *OutputAdapter,
// *XorGate and *AndGate.
type Element interface {
	RegionID() region.ID
	Class() palette.Class
	Active() bool
	SetActive(bool)
	element()
}

// Gate is implemented by the two logic gate kinds.
type Gate interface {
	Element
	// Eval combines the values sampled by the gate's adjacent inputs.
	Eval(in []bool) bool
}

type base struct {
	id     region.ID
	class  palette.Class
	active bool
}

// RegionID returns the region the element is bound to.
func (b *base) RegionID() region.ID { return b.id }

// Class returns the element's palette class.
func (b *base) Class() palette.Class { return b.class }

// Active reports the current state.
func (b *base) Active() bool { return b.active }

// SetActive overwrites the current state.
func (b *base) SetActive(active bool) { b.active = active }

func (b *base) element() {}

// Wire holds a signal between ticks. Its colour only affects rendering.
type Wire struct{ base }

// InputAdapter samples the OR of its adjacent wires.
type InputAdapter struct{ base }

// OutputAdapter drives its adjacent wires.
type OutputAdapter struct{ base }

// XorGate outputs the parity of its adjacent inputs.
type XorGate struct{ base }

// Eval returns true when an odd number of inputs are high. A gate without
// inputs is low.
func (g *XorGate) Eval(in []bool) bool {
	out := false
	for _, v := range in {
		out = out != v
	}
	return out
}

// AndGate outputs the conjunction of its adjacent inputs.
type AndGate struct{ base }

// Eval returns true when every input is high. A gate without inputs is low
// so that an unconnected gate never drives its outputs.
func (g *AndGate) Eval(in []bool) bool {
	if len(in) == 0 {
		return false
	}
	for _, v := range in {
		if !v {
			return false
		}
	}
	return true
}

// newElement instantiates the element for a region, or nil for classes that
// do not form elements.
func newElement(r region.Region) Element {
	b := base{id: r.ID, class: r.Class, active: r.Active}
	switch r.Class {
	case palette.ClassRedWire, palette.ClassBlueWire:
		return &Wire{b}
	case palette.ClassInput:
		return &InputAdapter{b}
	case palette.ClassOutput:
		return &OutputAdapter{b}
	case palette.ClassXor:
		return &XorGate{b}
	case palette.ClassAnd:
		return &AndGate{b}
	default:
		return nil
	}
}
