// Package region labels same-class pixel groups of a resel grid and indexes
// which groups share a border.
package region

import (
	"image"
	"sort"

	"reso/internal/core"
	"reso/internal/palette"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ID identifies a region. Valid IDs start at 1; the zero ID means "no region".
type ID int

// None is the label of empty pixels.
const None ID = 0

// Region is a maximal 4-connected group of pixels sharing one class.
type Region struct {
	ID    ID
	Class palette.Class
	// Active is the state of the seed pixel. All pixels of a region are
	// expected to share one shade in the source image.
	Active bool
	Pixels int
	Bounds image.Rectangle
	// Seed is the first pixel of the region in scan order.
	Seed image.Point
}

// Map is the labeled resel grid together with its adjacency index.
type Map struct {
	labels  core.Grid[ID]
	regions []Region
	byClass map[palette.Class][]ID
	adj     *simple.UndirectedGraph
}

// Build labels every non-empty pixel of g. Pixels are scanned column by
// column, so region IDs follow the (x, y) order of their seed pixels.
func Build(g core.Grid[palette.Resel]) *Map {
	m := &Map{
		labels:  core.NewGrid[ID](g.W, g.H),
		byClass: make(map[palette.Class][]ID),
		adj:     simple.NewUndirectedGraph(),
	}
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			r := g.At(x, y)
			if r.IsEmpty() || m.labels.At(x, y) != None {
				continue
			}
			m.fill(g, image.Point{X: x, Y: y}, r)
		}
	}
	m.index()
	return m
}

// fill floods the region grown from seed and records it.
func (m *Map) fill(g core.Grid[palette.Resel], seed image.Point, r palette.Resel) {
	id := ID(len(m.regions) + 1)
	reg := Region{
		ID:     id,
		Class:  r.Class,
		Active: r.Active,
		Bounds: image.Rectangle{Min: seed, Max: seed.Add(image.Point{X: 1, Y: 1})},
		Seed:   seed,
	}

	stack := []image.Point{seed}
	m.labels.Set(seed.X, seed.Y, id)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		reg.Pixels++
		reg.Bounds = reg.Bounds.Union(image.Rectangle{Min: p, Max: p.Add(image.Point{X: 1, Y: 1})})

		for _, n := range core.Neighbors4(p) {
			if !g.In(n.X, n.Y) || m.labels.At(n.X, n.Y) != None {
				continue
			}
			if g.At(n.X, n.Y).Class != r.Class {
				continue
			}
			m.labels.Set(n.X, n.Y, id)
			stack = append(stack, n)
		}
	}

	m.regions = append(m.regions, reg)
	m.byClass[r.Class] = append(m.byClass[r.Class], id)
	m.adj.AddNode(simple.Node(id))
}

// index records an undirected edge for every pair of differently labeled
// regions occupying 4-neighbouring pixels.
func (m *Map) index() {
	w, h := m.labels.W, m.labels.H
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			a := m.labels.At(x, y)
			if a == None {
				continue
			}
			if x+1 < w {
				m.link(a, m.labels.At(x+1, y))
			}
			if y+1 < h {
				m.link(a, m.labels.At(x, y+1))
			}
		}
	}
}

func (m *Map) link(a, b ID) {
	if b == None || a == b || m.adj.HasEdgeBetween(int64(a), int64(b)) {
		return
	}
	m.adj.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
}

// Size returns the dimensions of the labeled grid.
func (m *Map) Size() core.Size { return m.labels.Size() }

// Len returns the number of regions.
func (m *Map) Len() int { return len(m.regions) }

// At returns the region covering pixel (x, y). Empty and out-of-range pixels
// report false.
func (m *Map) At(x, y int) (ID, bool) {
	id := m.labels.At(x, y)
	return id, id != None
}

// Region returns the region with the given ID.
func (m *Map) Region(id ID) (Region, bool) {
	if id <= None || int(id) > len(m.regions) {
		return Region{}, false
	}
	return m.regions[id-1], true
}

// Regions returns every region ordered by ID.
func (m *Map) Regions() []Region {
	out := make([]Region, len(m.regions))
	copy(out, m.regions)
	return out
}

// WithClass returns the IDs of every region of class c in ascending order.
func (m *Map) WithClass(c palette.Class) []ID {
	ids := m.byClass[c]
	out := make([]ID, len(ids))
	copy(out, ids)
	return out
}

// Adjacent returns the distinct regions sharing a border with id, in
// ascending order. Unknown IDs have no neighbours.
func (m *Map) Adjacent(id ID) []ID {
	if m.adj.Node(int64(id)) == nil {
		return nil
	}
	return sortedIDs(m.adj.From(int64(id)))
}

// Adjacency exposes the adjacency index as a read-only gonum graph.
func (m *Map) Adjacency() graph.Undirected { return m.adj }

// Counts returns the number of regions per class.
func (m *Map) Counts() map[palette.Class]int {
	out := make(map[palette.Class]int, len(m.byClass))
	for c, ids := range m.byClass {
		out[c] = len(ids)
	}
	return out
}

// Components returns the number of connected groups of regions, i.e. the
// independent circuits drawn on the board.
func (m *Map) Components() int {
	return len(topo.ConnectedComponents(m.adj))
}

func sortedIDs(nodes graph.Nodes) []ID {
	n := nodes.Len()
	if n < 0 {
		n = 0
	}
	out := make([]ID, 0, n)
	for nodes.Next() {
		out = append(out, ID(nodes.Node().ID()))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
