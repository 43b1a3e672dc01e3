// Package graph assembles nodes and edges into a directed network and
// exposes the incidence/capacitance operators the solver needs: the
// signed incidence matrix K, its split positive/negative halves K+/K-, the
// lumped-capacitance diagonal D and the per-node/per-edge solution
// push/pull helpers (spec §4.6, grounded on graph.rs).
package graph

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/flownet/edge"
	"github.com/cpmech/flownet/fluid"
	"github.com/cpmech/flownet/node"
)

// Graph holds the nodes and edges of a fluid network plus an id→index map
// rebuilt on demand.
type Graph struct {
	Nodes     []node.Node `json:"nodes"`
	Edges     []edge.Edge `json:"edges"`
	idToIndex map[uint64]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{idToIndex: make(map[uint64]int)}
}

func (g *Graph) NumNodes() int { return len(g.Nodes) }
func (g *Graph) NumEdges() int { return len(g.Edges) }

// CreateIdToIndex rebuilds the id→index lookup from the current node order.
func (g *Graph) CreateIdToIndex() {
	g.idToIndex = make(map[uint64]int, len(g.Nodes))
	for i, n := range g.Nodes {
		g.idToIndex[n.Id()] = i
	}
}

// Index returns the node index for id, panicking via chk.Panic if absent
// (mirrors the source's unwrap()).
func (g *Graph) Index(id uint64) int {
	idx, ok := g.idToIndex[id]
	if !ok {
		chk.Panic("graph: node id %d is not part of this network\n", id)
	}
	return idx
}

// AddNode appends a node (no duplicate check, matching the source's TODO).
func (g *Graph) AddNode(n node.Node) { g.Nodes = append(g.Nodes, n) }

// AddEdge appends an edge (no duplicate check, matching the source's TODO).
func (g *Graph) AddEdge(e edge.Edge) { g.Edges = append(g.Edges, e) }

// UpdateNode replaces the node with the same id, if present.
func (g *Graph) UpdateNode(n node.Node) {
	for i, existing := range g.Nodes {
		if existing.Id() == n.Id() {
			g.Nodes[i] = n
			return
		}
	}
}

// UpdateEdge replaces the edge with the same from/to pair, if present.
func (g *Graph) UpdateEdge(e edge.Edge) {
	for i, existing := range g.Edges {
		if existing.From() == e.From() && existing.To() == e.To() {
			g.Edges[i] = e
			return
		}
	}
}

// AddBoundaryValue forwards an externally supplied scheduled value to the
// node with the given id (spec §6).
func (g *Graph) AddBoundaryValue(id uint64, value float64) {
	g.Nodes[g.Index(id)].AddBoundaryValue(value)
}

// KMatrix returns the m x n signed incidence matrix (+1 at From, -1 at To).
func (g *Graph) KMatrix() [][]float64 {
	m, n := g.NumEdges(), g.NumNodes()
	mat := la.MatAlloc(m, n)
	for i, e := range g.Edges {
		mat[i][g.Index(e.From())] = 1.0
		mat[i][g.Index(e.To())] = -1.0
	}
	return mat
}

// IncidenceMatrix returns K^T, the n x m transpose of KMatrix.
func (g *Graph) IncidenceMatrix() [][]float64 {
	k := g.KMatrix()
	m, n := g.NumEdges(), g.NumNodes()
	kt := la.MatAlloc(n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			kt[j][i] = k[i][j]
		}
	}
	return kt
}

// KPlusMatrix returns the m x n matrix with a single 1 at (j, From(j)).
func (g *Graph) KPlusMatrix() [][]float64 {
	m, n := g.NumEdges(), g.NumNodes()
	mat := la.MatAlloc(m, n)
	for i, e := range g.Edges {
		mat[i][g.Index(e.From())] = 1.0
	}
	return mat
}

// KMinusMatrix returns the m x n matrix with a single 1 at (j, To(j)).
func (g *Graph) KMinusMatrix() [][]float64 {
	m, n := g.NumEdges(), g.NumNodes()
	mat := la.MatAlloc(m, n)
	for i, e := range g.Edges {
		mat[i][g.Index(e.To())] = 1.0
	}
	return mat
}

// MDiag returns the per-edge lumped-capacitance coefficients (spec §4.6).
func (g *Graph) MDiag(f fluid.Fluid, gAcc float64) []float64 {
	m := make([]float64, g.NumEdges())
	for i, e := range g.Edges {
		m[i] = e.MCoefficient(f.Density(), f.BulkModulus(), gAcc)
	}
	return m
}

// DDiag returns D = K+^T M K+ + K-^T M K-, the per-node lumped-capacitance
// diagonal.
func (g *Graph) DDiag(f fluid.Fluid, gAcc float64) []float64 {
	n := g.NumNodes()
	d := make([]float64, n)
	mDiag := g.MDiag(f, gAcc)
	kplus := g.KPlusMatrix()
	kminus := g.KMinusMatrix()
	for i := 0; i < n; i++ {
		var plus, minus float64
		for j := 0; j < g.NumEdges(); j++ {
			plus += kplus[j][i] * mDiag[j] * kplus[j][i]
			minus += kminus[j][i] * mDiag[j] * kminus[j][i]
		}
		d[i] = plus + minus
	}
	return d
}

// BDiag returns the per-edge inertance coefficients used in the transient
// momentum equation (spec §4.6).
func (g *Graph) BDiag(gAcc float64, step int) []float64 {
	b := make([]float64, g.NumEdges())
	for i, e := range g.Edges {
		b[i] = e.BCoefficient(gAcc, step)
	}
	return b
}

// SteadyConsumption returns the nodal consumption vector [kg/s] at the
// steady (index 0) step, zero at nodes whose consumption is not prescribed.
func (g *Graph) SteadyConsumption() []float64 {
	c := make([]float64, g.NumNodes())
	for i, n := range g.Nodes {
		if n.IsKnownFlow() {
			c[i] = n.ConsumptionAt(0)
		}
	}
	return c
}

// Consumption returns the nodal consumption vector [kg/s] at step.
func (g *Graph) Consumption(step int) []float64 {
	c := make([]float64, g.NumNodes())
	for i, n := range g.Nodes {
		if n.IsKnownFlow() {
			c[i] = n.ConsumptionAt(step)
		}
	}
	return c
}

// SetSteadySolution writes the Newton steady solution (q in m^3/s, h in m)
// back into the network as mass flow [kg/s] and pressure [Pa].
func (g *Graph) SetSteadySolution(qGuess, hGuess []float64, rho, gAcc float64) {
	for j, e := range g.Edges {
		e.SetSteadyMassFlow(qGuess[j] * rho)
	}
	for i, n := range g.Nodes {
		n.SetSteadyPressure((hGuess[i] - n.Elevation()) * rho * gAcc)
	}
}

// SteadySolutionQH reads back the steady solution as (q, h) vectors.
func (g *Graph) SteadySolutionQH(rho, gAcc float64) (q, h []float64) {
	q = make([]float64, g.NumEdges())
	h = make([]float64, g.NumNodes())
	for j, e := range g.Edges {
		q[j] = e.MassFlowAt(0) / rho
	}
	for i, n := range g.Nodes {
		h[i] = n.PressureAt(0)/(rho*gAcc) + n.Elevation()
	}
	return
}

// CurrentSolutionQH reads back the solution at step as (q, h) vectors.
func (g *Graph) CurrentSolutionQH(rho, gAcc float64, step int) (q, h []float64) {
	q = make([]float64, g.NumEdges())
	h = make([]float64, g.NumNodes())
	for j, e := range g.Edges {
		q[j] = e.MassFlowAt(step) / rho
	}
	for i, n := range g.Nodes {
		h[i] = n.PressureAt(step)/(rho*gAcc) + n.Elevation()
	}
	return
}

// PushTransientSolution appends one Newton-converged (q, h) pair to every
// edge's history and to the history of every node that is neither a
// pressure boundary nor a tank (those two kinds have pinned heads).
func (g *Graph) PushTransientSolution(qGuess, hGuess []float64, f fluid.Fluid, gAcc float64) {
	rho := f.Density()
	for j, e := range g.Edges {
		e.PushMassFlow(qGuess[j] * rho)
	}
	for i, n := range g.Nodes {
		if !n.IsKnownPressure() && !n.IsTank() {
			n.PushPressure((hGuess[i] - n.Elevation()) * rho * gAcc)
		}
	}
}

// AdvanceEventState calls AddTransientValue on every node and edge, letting
// each advance its own event-driven state for the step about to be solved
// (spec §4.4). Pressures passed to edges are each endpoint's full history
// so far, matching the node-then-edge ordering of the source.
func (g *Graph) AdvanceEventState(time float64) {
	for _, n := range g.Nodes {
		n.AddTransientValue(time)
	}
	for _, e := range g.Edges {
		from := g.Nodes[g.Index(e.From())]
		to := g.Nodes[g.Index(e.To())]
		e.AddTransientValue(time, pressureHistory(from), pressureHistory(to))
	}
}

func pressureHistory(n node.Node) []float64 {
	h := make([]float64, n.Steps())
	for i := range h {
		h[i] = n.PressureAt(i)
	}
	return h
}

// NetInflow returns the net mass flow into node index i at step, in kg/s:
// inflow from edges terminating at i minus outflow from edges starting at
// i. Used to integrate a Tank's level before it is pinned as a boundary
// for the next step (spec §9).
func (g *Graph) NetInflow(i, step int) float64 {
	var net float64
	for _, e := range g.Edges {
		if g.Index(e.To()) == i {
			net += e.MassFlowAt(step)
		}
		if g.Index(e.From()) == i {
			net -= e.MassFlowAt(step)
		}
	}
	return net
}

// RemoveTransientValues truncates every node and edge history back to its
// steady (index 0) value, matching Graph::remove_transient_values.
func (g *Graph) RemoveTransientValues() {
	for _, n := range g.Nodes {
		n.Reset()
	}
	for _, e := range g.Edges {
		e.Reset()
	}
}
