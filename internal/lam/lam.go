// Package lam builds the laminar-flow warm-start guess that seeds the
// steady Newton solve: a linear nodal Laplacian assembled from each edge's
// laminarised conductance, solved once for heads, then used to recover an
// initial flow per edge (spec §4.8, grounded on utility::laminar_guess).
package lam

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/flownet/fluid"
	"github.com/cpmech/flownet/graph"
)

const mindet = 1e-14

// Guess returns an initial (q, h) pair: q in m^3/s per edge, h in m per
// node, found by solving a linear Laplacian built from each edge's
// laminarised conductance and the network's boundary conditions.
func Guess(g *graph.Graph, f fluid.Fluid, gAcc float64) (q, h []float64) {
	n, m := g.NumNodes(), g.NumEdges()
	kMatrix := la.MatAlloc(n, n)

	for _, e := range g.Edges {
		a := g.Index(e.From())
		b := g.Index(e.To())
		k := e.KLaminar(f.KinematicViscosity())
		kMatrix[a][a] += k
		kMatrix[b][b] += k
		kMatrix[a][b] -= k
		kMatrix[b][a] -= k
	}

	consumption := make([]float64, n)
	rho := f.Density()
	for i, node := range g.Nodes {
		if node.IsKnownPressure() || node.IsTank() {
			val := node.Elevation() + node.PressureAt(0)/(rho*gAcc)
			for r := 0; r < n; r++ {
				consumption[r] -= kMatrix[r][i] * val
			}
			for r := 0; r < n; r++ {
				kMatrix[i][r] = 0.0
				kMatrix[r][i] = 0.0
			}
			kMatrix[i][i] = 1.0
			consumption[i] = val
		} else {
			consumption[i] += node.ConsumptionAt(0) / rho
		}
	}

	kInv := la.MatAlloc(n, n)
	if _, err := la.MatInv(kInv, kMatrix, mindet); err != nil {
		h = make([]float64, n)
		copy(h, consumption)
	} else {
		h = make([]float64, n)
		la.MatVecMul(h, 1.0, kInv, consumption)
	}

	q = make([]float64, m)
	for j, e := range g.Edges {
		a := g.Index(e.From())
		b := g.Index(e.To())
		dh := h[a] - h[b]
		q[j] = e.DarcyApprox(dh, gAcc) * dh
		if math.IsNaN(q[j]) {
			q[j] = 1e-4
		}
	}
	return
}
