// Package solver drives the Newton steady solve and the
// theta-weighted implicit transient time-stepping scheme over a fluid
// network (spec §4.7–§4.10, grounded on solver.rs).
package solver

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/flownet/fluid"
	"github.com/cpmech/flownet/graph"
	"github.com/cpmech/flownet/internal/lam"
	"github.com/cpmech/flownet/node"
)

// Type selects which regime a Solver operates in.
type Type int

const (
	Steady Type = iota
	Transient
)

func (t Type) String() string {
	if t == Transient {
		return "Transient"
	}
	return "Steady"
}

// Solver holds Newton/time-stepping control parameters and the
// solved/not-solved state flags (spec §4.7, §4.9).
type Solver struct {
	Type            Type      `json:"type"`
	SolvedSteady    bool      `json:"solved_steady"`
	SolvedTransient bool      `json:"solved_transient"`
	MaxIter         int       `json:"max_iter"`
	Tolerance       float64   `json:"tolerance"`
	Tmax            float64   `json:"tmax"`
	Dt              float64   `json:"dt"`
	G               float64   `json:"g"`
	Tnodes          []float64 `json:"tnodes"`
	Theta           float64   `json:"theta"`
}

// New returns a solver with the same defaults as the source: 20 max
// iterations, 1e-8 tolerance, 5s horizon, 0.1s step, backward-Euler theta.
func New() *Solver {
	return &Solver{
		Type:      Steady,
		MaxIter:   20,
		Tolerance: 1.0e-8,
		Tmax:      5.0,
		Dt:        0.1,
		G:         9.80665,
		Tnodes:    []float64{0.0},
		Theta:     1.0,
	}
}

// Reset clears solved-state flags and restores the default MaxIter,
// Tolerance, Tmax, Dt and G; Theta and Tnodes are left unchanged.
func (s *Solver) Reset() {
	s.SolvedSteady = false
	s.SolvedTransient = false
	s.MaxIter = 20
	s.Tolerance = 1.0e-8
	s.Tmax = 5.0
	s.Dt = 0.1
	s.G = 9.80665
}

// ResetTnodes truncates the time history back to t=0.
func (s *Solver) ResetTnodes() { s.Tnodes = []float64{0.0} }

func (s *Solver) IsTransient() bool { return s.Type == Transient }

// updateSolution splits a combined Newton correction into its q (first m
// entries) and h (last n entries) halves and applies them in place,
// matching utility::update_solution.
func updateSolution(q, h, correction []float64) {
	m := len(q)
	for j := range q {
		q[j] += correction[j]
	}
	for i := range h {
		h[i] += correction[m+i]
	}
}

func normInf(v []float64) float64 {
	max := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > max {
			max = a
		}
	}
	return max
}

func hasNaN(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// solveLinear solves mat*x = b via dense inversion, following the corpus's
// la.MatInv + la.MatVecMul idiom for small Newton corrector systems
// (shp/algos.go), here extended to the network-sized system.
func solveLinear(mat [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	inv := la.MatAlloc(n, n)
	if _, err := la.MatInv(inv, mat, 1e-14); err != nil {
		return nil, err
	}
	x := make([]float64, n)
	la.MatVecMul(x, 1.0, inv, b)
	return x, nil
}

// SolveSteady runs the Newton iteration (full correction each step, no
// damping) to steady state (spec §4.7). When createGuess is true, the laminar warm-start (spec §4.8)
// seeds q/h; otherwise the network's currently stored steady solution is
// reused as the initial guess.
func (s *Solver) SolveSteady(g *graph.Graph, f fluid.Fluid, createGuess bool) (int, error) {
	n, m := g.NumNodes(), g.NumEdges()
	size := n + m
	if size == 0 || m == 0 {
		return 0, newErr(EmptyNetwork, "network has no nodes or no edges", 1.0, 0)
	}
	g.CreateIdToIndex()

	nu := f.KinematicViscosity()
	rho := f.Density()

	k := g.KMatrix()
	kt := g.IncidenceMatrix()

	var qGuess, hGuess []float64
	if createGuess {
		qGuess, hGuess = lam.Guess(g, f, s.G)
	} else {
		qGuess, hGuess = g.SteadySolutionQH(rho, s.G)
	}

	iter := 0
	maxResidual := 1.0
	for iter < s.MaxIter && maxResidual > s.Tolerance {
		b := make([]float64, size)
		mat := la.MatAlloc(size, size)

		steadyConsumption := g.SteadyConsumption()
		for i := 0; i < n; i++ {
			continuityResidual := steadyConsumption[i] / rho
			for j := 0; j < m; j++ {
				continuityResidual -= kt[i][j] * qGuess[j]
				mat[i][j] = kt[i][j]
			}
			b[i] = continuityResidual
		}

		// Bottom-left resistance block and bottom-right Δh block: the
		// literal spec diagram shows a fixed "-K" here, but since a
		// residual's dependence on Δh is not always a unit coefficient
		// (see DESIGN.md), the block is generalised to -DrDdh_j * K[j][:].
		for j, e := range g.Edges {
			a := g.Index(e.From())
			bIdx := g.Index(e.To())
			dh := hGuess[a] - hGuess[bIdx]
			r := e.Resistance(qGuess[j], dh, nu, s.G, 0)
			drdq := e.DrDq(qGuess[j], dh, nu, s.G, 0)
			drddh := e.DrDdh(qGuess[j], dh, nu, s.G, 0)
			mat[n+j][j] = -drdq
			b[n+j] = r
			for col := 0; col < n; col++ {
				mat[n+j][m+col] = -drddh * k[j][col]
			}
		}

		for i := 0; i < n; i++ {
			nd := g.Nodes[i]
			if nd.IsKnownPressure() || nd.IsTank() {
				for c := 0; c < size; c++ {
					mat[i][c] = 0.0
				}
				b[i] = 0.0
				mat[i][m+i] = 1.0
				head := nd.Head(0, rho, s.G)
				b[i] = head - hGuess[i]
			}
		}

		correction, err := solveLinear(mat, b)
		if err != nil {
			return iter, newErr(NumericalFailure, err.Error(), maxResidual, iter)
		}
		if hasNaN(correction) {
			return iter, newErr(NumericalFailure, "Newton correction contained NaN or Inf", maxResidual, iter)
		}
		updateSolution(qGuess, hGuess, correction)
		maxResidual = normInf(correction)
		iter++
	}

	if maxResidual <= s.Tolerance && !math.IsNaN(maxResidual) {
		g.SetSteadySolution(qGuess, hGuess, rho, s.G)
		s.SolvedSteady = true
		logIteration(Steady, iter, maxResidual)
		return iter, nil
	}
	s.SolvedSteady = false
	return iter, newErr(NotConverged, "steady Newton iteration did not converge", maxResidual, iter)
}

// TimeStep advances the network by one theta-weighted implicit step (spec
// §4.9). A steady solution must already exist.
func (s *Solver) TimeStep(g *graph.Graph, f fluid.Fluid) (int, error) {
	if !s.SolvedSteady {
		return 0, newErr(MissingSteady, "cannot time-step before a steady solve", 1.0, 0)
	}
	step := len(s.Tnodes) - 1
	rho := f.Density()
	qn, hn := g.CurrentSolutionQH(rho, s.G, step)
	qg := append([]float64(nil), qn...)
	hg := append([]float64(nil), hn...)
	dt := s.Dt
	invdt := 1.0 / dt

	time := s.Tnodes[step] + dt
	g.AdvanceEventState(time)
	advanceTanks(g, step+1, dt, rho, s.G)

	n, m := g.NumNodes(), g.NumEdges()
	size := n + m
	if size == 0 || m == 0 {
		return 0, newErr(EmptyNetwork, "network has no nodes or no edges", 1.0, 0)
	}

	kt := g.IncidenceMatrix()
	k := g.KMatrix()
	dDiag := g.DDiag(f, s.G)
	bDiag := g.BDiag(s.G, step+1)

	iter := 0
	maxResidual := 1.0
	for iter < s.MaxIter && maxResidual > s.Tolerance {
		b := make([]float64, size)
		mat := la.MatAlloc(size, size)

		qbar := make([]float64, m)
		hbar := make([]float64, n)
		for j := range qbar {
			qbar[j] = s.Theta*qg[j] + (1-s.Theta)*qn[j]
		}
		for i := range hbar {
			hbar[i] = s.Theta*hg[i] + (1-s.Theta)*hn[i]
		}

		consumption := g.Consumption(step + 1)
		for i := 0; i < n; i++ {
			continuityResidual := consumption[i] / rho
			for j := 0; j < m; j++ {
				continuityResidual -= kt[i][j] * qbar[j]
			}
			continuityResidual -= invdt * dDiag[i] * (hg[i] - hn[i])
			for j := 0; j < m; j++ {
				mat[i][j] = s.Theta * kt[i][j]
			}
			mat[i][m+i] = invdt * dDiag[i]
			b[i] = continuityResidual
		}

		nu := f.KinematicViscosity()
		for j, e := range g.Edges {
			a := g.Index(e.From())
			bIdx := g.Index(e.To())
			dh := hbar[a] - hbar[bIdx]
			r := e.Resistance(qbar[j], dh, nu, s.G, step+1)
			drdq := e.DrDq(qbar[j], dh, nu, s.G, step+1)
			drddh := e.DrDdh(qbar[j], dh, nu, s.G, step+1)
			mat[n+j][j] = invdt*bDiag[j] - drdq
			b[n+j] = r - invdt*bDiag[j]*(qg[j]-qn[j])
			for col := 0; col < n; col++ {
				mat[n+j][m+col] = -s.Theta * drddh * k[j][col]
			}
		}

		for i := 0; i < n; i++ {
			nd := g.Nodes[i]
			if nd.IsKnownPressure() || nd.IsTank() {
				for c := 0; c < size; c++ {
					mat[i][c] = 0.0
				}
				b[i] = 0.0
				mat[i][m+i] = s.Theta
				b[i] = nd.Head(step+1, rho, s.G) - hbar[i]
			}
		}

		correction, err := solveLinear(mat, b)
		if err != nil {
			return iter, newErr(NumericalFailure, err.Error(), maxResidual, iter)
		}
		if hasNaN(correction) {
			return iter, newErr(NumericalFailure, "Newton correction contained NaN or Inf", maxResidual, iter)
		}
		updateSolution(qg, hg, correction)
		maxResidual = normInf(correction)
		iter++
	}

	if maxResidual <= s.Tolerance && !math.IsNaN(maxResidual) {
		s.Tnodes = append(s.Tnodes, s.Tnodes[len(s.Tnodes)-1]+dt)
		g.PushTransientSolution(qg, hg, f, s.G)
		s.SolvedTransient = true
		logIteration(Transient, iter, maxResidual)
		return iter, nil
	}
	s.SolvedTransient = false
	return iter, newErr(NotConverged, "transient Newton iteration did not converge", maxResidual, iter)
}

// advanceTanks integrates every Tank node's level from the previous step's
// converged edge flows, pinning its head before the Newton iteration uses
// it as a boundary row (spec §9; not present in the retrieved source).
func advanceTanks(g *graph.Graph, step int, dt, rho, gAcc float64) {
	for i, n := range g.Nodes {
		if tk, ok := n.(*node.Tank); ok {
			qNet := g.NetInflow(i, step-1) / rho
			tk.AdvanceLevel(qNet, dt, rho, gAcc)
		}
	}
}

// logIteration writes a gofem-style progress line, gated on io.Verbose
// exactly like the corpus's test-driver logging.
func logIteration(kind Type, iter int, residual float64) {
	if io.Verbose {
		io.Pf("%v solve: iter=%d residual=%g\n", kind, iter, residual)
	}
}
