package circuit

import (
	"reso/internal/palette"
	"reso/internal/region"
)

// Circuit is the element registry of a board: one element per region plus
// the typed adjacency maps the engine walks. Topology is fixed at Build;
// only element states change afterwards.
type Circuit struct {
	// elements is indexed by region ID; slot 0 is unused.
	elements []Element

	wires     []*Wire
	redWires  []*Wire
	blueWires []*Wire
	inputs    []*InputAdapter
	outputs   []*OutputAdapter
	xors      []*XorGate
	ands      []*AndGate
	gates     []Gate

	wireInputs  map[region.ID][]*InputAdapter
	inputXors   map[region.ID][]*XorGate
	inputAnds   map[region.ID][]*AndGate
	outputsOf   map[region.ID][]*OutputAdapter
	outputWires map[region.ID][]*Wire

	// Reverse views used by Tick.
	inputWires   map[region.ID][]*Wire
	gateInputs   map[region.ID][]*InputAdapter
	outputGates  map[region.ID][]Gate
	outputInputs map[region.ID][]*InputAdapter
	wireOutputs  map[region.ID][]*OutputAdapter

	read, write []bool
	sample      []bool
}

// Build instantiates the elements of every region in m and derives the typed
// adjacency maps from the geometric adjacency index.
func Build(m *region.Map) *Circuit {
	n := m.Len() + 1
	c := &Circuit{
		elements:     make([]Element, n),
		wireInputs:   make(map[region.ID][]*InputAdapter),
		inputXors:    make(map[region.ID][]*XorGate),
		inputAnds:    make(map[region.ID][]*AndGate),
		outputsOf:    make(map[region.ID][]*OutputAdapter),
		outputWires:  make(map[region.ID][]*Wire),
		inputWires:   make(map[region.ID][]*Wire),
		gateInputs:   make(map[region.ID][]*InputAdapter),
		outputGates:  make(map[region.ID][]Gate),
		outputInputs: make(map[region.ID][]*InputAdapter),
		wireOutputs:  make(map[region.ID][]*OutputAdapter),
		read:         make([]bool, n),
		write:        make([]bool, n),
	}

	for _, r := range m.Regions() {
		e := newElement(r)
		if e == nil {
			continue
		}
		c.elements[r.ID] = e
		switch el := e.(type) {
		case *Wire:
			c.wires = append(c.wires, el)
			if r.Class == palette.ClassRedWire {
				c.redWires = append(c.redWires, el)
			} else {
				c.blueWires = append(c.blueWires, el)
			}
		case *InputAdapter:
			c.inputs = append(c.inputs, el)
		case *OutputAdapter:
			c.outputs = append(c.outputs, el)
		case *XorGate:
			c.xors = append(c.xors, el)
			c.gates = append(c.gates, el)
		case *AndGate:
			c.ands = append(c.ands, el)
			c.gates = append(c.gates, el)
		}
	}

	for _, w := range c.wires {
		c.wireInputs[w.id] = []*InputAdapter{}
		c.wireOutputs[w.id] = []*OutputAdapter{}
	}
	for _, in := range c.inputs {
		c.inputXors[in.id] = []*XorGate{}
		c.inputAnds[in.id] = []*AndGate{}
		c.outputsOf[in.id] = []*OutputAdapter{}
		c.inputWires[in.id] = []*Wire{}
	}
	for _, g := range c.gates {
		c.outputsOf[g.RegionID()] = []*OutputAdapter{}
		c.gateInputs[g.RegionID()] = []*InputAdapter{}
	}
	for _, out := range c.outputs {
		c.outputWires[out.id] = []*Wire{}
		c.outputGates[out.id] = []Gate{}
		c.outputInputs[out.id] = []*InputAdapter{}
	}

	// Adjacent lists are sorted, so every typed list comes out in region ID
	// order.
	for _, w := range c.wires {
		for _, id := range m.Adjacent(w.id) {
			if in, ok := c.elements[id].(*InputAdapter); ok {
				c.wireInputs[w.id] = append(c.wireInputs[w.id], in)
				c.inputWires[id] = append(c.inputWires[id], w)
			}
		}
	}
	for _, in := range c.inputs {
		for _, id := range m.Adjacent(in.id) {
			switch el := c.elements[id].(type) {
			case *XorGate:
				c.inputXors[in.id] = append(c.inputXors[in.id], el)
				c.gateInputs[id] = append(c.gateInputs[id], in)
			case *AndGate:
				c.inputAnds[in.id] = append(c.inputAnds[in.id], el)
				c.gateInputs[id] = append(c.gateInputs[id], in)
			case *OutputAdapter:
				c.outputsOf[in.id] = append(c.outputsOf[in.id], el)
				c.outputInputs[id] = append(c.outputInputs[id], in)
			}
		}
	}
	for _, g := range c.gates {
		for _, id := range m.Adjacent(g.RegionID()) {
			if out, ok := c.elements[id].(*OutputAdapter); ok {
				c.outputsOf[g.RegionID()] = append(c.outputsOf[g.RegionID()], out)
				c.outputGates[id] = append(c.outputGates[id], g)
			}
		}
	}
	for _, out := range c.outputs {
		for _, id := range m.Adjacent(out.id) {
			if w, ok := c.elements[id].(*Wire); ok {
				c.outputWires[out.id] = append(c.outputWires[out.id], w)
				c.wireOutputs[id] = append(c.wireOutputs[id], out)
			}
		}
	}
	return c
}

// Len returns the number of elements.
func (c *Circuit) Len() int { return len(c.elements) - 1 }

// Element returns the element bound to region id.
func (c *Circuit) Element(id region.ID) (Element, bool) {
	if id <= region.None || int(id) >= len(c.elements) || c.elements[id] == nil {
		return nil, false
	}
	return c.elements[id], true
}

// Wire returns the wire bound to region id.
func (c *Circuit) Wire(id region.ID) (*Wire, bool) {
	e, ok := c.Element(id)
	if !ok {
		return nil, false
	}
	w, ok := e.(*Wire)
	return w, ok
}

// Elements calls fn for every element in region ID order.
func (c *Circuit) Elements(fn func(Element)) {
	for _, e := range c.elements[1:] {
		if e != nil {
			fn(e)
		}
	}
}

// Wires returns every wire regardless of colour.
func (c *Circuit) Wires() []*Wire { return c.wires }

// RedWires returns the wires of the first colour.
func (c *Circuit) RedWires() []*Wire { return c.redWires }

// BlueWires returns the wires of the second colour.
func (c *Circuit) BlueWires() []*Wire { return c.blueWires }

// Inputs returns every input adapter.
func (c *Circuit) Inputs() []*InputAdapter { return c.inputs }

// Outputs returns every output adapter.
func (c *Circuit) Outputs() []*OutputAdapter { return c.outputs }

// Xors returns every XOR gate.
func (c *Circuit) Xors() []*XorGate { return c.xors }

// Ands returns every AND gate.
func (c *Circuit) Ands() []*AndGate { return c.ands }

// WireInputs maps every wire to its adjacent input adapters.
func (c *Circuit) WireInputs() map[region.ID][]*InputAdapter { return c.wireInputs }

// InputXors maps every input adapter to its adjacent XOR gates.
func (c *Circuit) InputXors() map[region.ID][]*XorGate { return c.inputXors }

// InputAnds maps every input adapter to its adjacent AND gates.
func (c *Circuit) InputAnds() map[region.ID][]*AndGate { return c.inputAnds }

// OutputsOf maps every input adapter and gate to its adjacent output adapters.
func (c *Circuit) OutputsOf() map[region.ID][]*OutputAdapter { return c.outputsOf }

// OutputWires maps every output adapter to its adjacent wires.
func (c *Circuit) OutputWires() map[region.ID][]*Wire { return c.outputWires }
