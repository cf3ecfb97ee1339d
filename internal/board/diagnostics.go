package board

import (
	"fmt"
	"strconv"
	"strings"

	"reso/internal/core"
	"reso/internal/palette"
)

// Parameters reports board diagnostics for the HUD and the headless runner.
func (b *Board) Parameters() core.ParameterSnapshot {
	size := b.Size()
	counts := b.regions.Counts()

	classes := make([]core.Parameter, 0, len(palette.Classes()))
	for _, c := range palette.Classes() {
		classes = append(classes, intParam(classKey(c), c.String(), counts[c]))
	}

	high := 0
	for _, w := range b.circuit.Wires() {
		if w.Active() {
			high++
		}
	}

	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "name", Label: "Name", Type: core.ParamTypeString, Value: b.cfg.Name},
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				intParam("tick", "Tick", b.ticks),
			},
		},
		{
			Name: "Regions",
			Params: append([]core.Parameter{
				intParam("regions", "Total", b.regions.Len()),
				intParam("circuits", "Circuits", b.regions.Components()),
			}, classes...),
		},
		{
			Name: "Signals",
			Params: []core.Parameter{
				intParam("wires_high", "Wires high", high),
				intParam("wires_low", "Wires low", len(b.circuit.Wires())-high),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// Describe summarises the region under pixel (x, y).
func (b *Board) Describe(x, y int) string {
	id, ok := b.regions.At(x, y)
	if !ok {
		return fmt.Sprintf("(%d,%d) empty", x, y)
	}
	reg, _ := b.regions.Region(id)
	res := palette.Resel{Class: reg.Class}
	if e, ok := b.circuit.Element(id); ok {
		res.Active = e.Active()
	}
	adj := b.regions.Adjacent(id)
	parts := make([]string, len(adj))
	for i, n := range adj {
		parts[i] = strconv.Itoa(int(n))
	}
	return fmt.Sprintf("(%d,%d) region %d: %s, %d px, adjacent [%s]",
		x, y, id, res, reg.Pixels, strings.Join(parts, " "))
}

func classKey(c palette.Class) string {
	return strings.ReplaceAll(c.String(), " ", "_")
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
