package circuit

// Tick advances the circuit by one synchronous step. Every new value is
// computed from a snapshot taken before anything is written, so the order in
// which elements are visited cannot influence the result:
//
//  1. inputs sample the OR of their adjacent wires;
//  2. gates combine the values sampled by their adjacent inputs;
//  3. outputs take the OR of their adjacent gates, or of their adjacent
//     inputs when no gate touches them;
//  4. wires take the OR of their adjacent outputs and keep their state when
//     no output touches them.
//
// The new states are committed together at the end, so a signal crosses at
// most one wire→input→(gate)→output→wire hop per tick.
func (c *Circuit) Tick() {
	c.read = c.Snapshot(c.read)
	read, write := c.read, c.write
	copy(write, read)

	for _, in := range c.inputs {
		v := false
		for _, w := range c.inputWires[in.id] {
			if read[w.id] {
				v = true
				break
			}
		}
		write[in.id] = v
	}

	for _, g := range c.gates {
		ins := c.gateInputs[g.RegionID()]
		c.sample = c.sample[:0]
		for _, in := range ins {
			c.sample = append(c.sample, write[in.id])
		}
		write[g.RegionID()] = g.Eval(c.sample)
	}

	for _, out := range c.outputs {
		v := false
		if gates := c.outputGates[out.id]; len(gates) > 0 {
			for _, g := range gates {
				v = v || write[g.RegionID()]
			}
		} else {
			for _, in := range c.outputInputs[out.id] {
				v = v || write[in.id]
			}
		}
		write[out.id] = v
	}

	for _, w := range c.wires {
		outs := c.wireOutputs[w.id]
		if len(outs) == 0 {
			continue
		}
		v := false
		for _, out := range outs {
			v = v || write[out.id]
		}
		write[w.id] = v
	}

	for id, e := range c.elements {
		if e != nil {
			e.SetActive(write[id])
		}
	}
}

// Snapshot copies the state of every element, indexed by region ID, into
// dst and returns it. Slot 0 is always false.
func (c *Circuit) Snapshot(dst []bool) []bool {
	if cap(dst) < len(c.elements) {
		dst = make([]bool, len(c.elements))
	}
	dst = dst[:len(c.elements)]
	for id, e := range c.elements {
		dst[id] = e != nil && e.Active()
	}
	return dst
}

// Restore sets every element state from a snapshot taken with Snapshot.
// Snapshots of a different size are ignored.
func (c *Circuit) Restore(states []bool) bool {
	if len(states) != len(c.elements) {
		return false
	}
	for id, e := range c.elements {
		if e != nil {
			e.SetActive(states[id])
		}
	}
	return true
}
