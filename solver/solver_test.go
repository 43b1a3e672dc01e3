package solver

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/flownet/edge"
	"github.com/cpmech/flownet/fluid"
	"github.com/cpmech/flownet/graph"
	"github.com/cpmech/flownet/node"
)

// singlePipeNetwork matches spec §8 scenario 1: a single pipe between two
// pressure boundaries at 121325 Pa and 101325 Pa, default 10m/52.5mm pipe,
// water-like constants.
func singlePipeNetwork() (*graph.Graph, fluid.Fluid) {
	g := graph.New()
	g.AddNode(node.NewPressureWithValue(0, 121325.0))
	g.AddNode(node.NewPressureWithValue(1, 101325.0))
	g.AddEdge(edge.NewPipe(0, 0, 1))
	g.CreateIdToIndex()
	f := fluid.NewBasic()
	f.Rho, f.Nu = 997.0, 1.1375e-6
	return g, f
}

func Test_steady01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steady01")

	g, f := singlePipeNetwork()
	s := New()
	iter, err := s.SolveSteady(g, f, true)
	if err != nil {
		tst.Errorf("SolveSteady failed: %v\n", err)
		return
	}
	if iter <= 0 || iter > s.MaxIter {
		tst.Errorf("unexpected iteration count: %d\n", iter)
	}
	if !s.SolvedSteady {
		tst.Errorf("SolvedSteady flag not set\n")
	}

	// flow must go from the high-pressure node to the low-pressure node, and
	// the magnitude should be the right order for this pipe (a loose check:
	// spec's reference value is 6.7865862 kg/s, exact agreement depends on
	// the friction-factor formula matching bit for bit).
	massFlow := g.Edges[0].MassFlowAt(0)
	if massFlow <= 0 {
		tst.Errorf("expected positive mass flow from node 0 to node 1, got %g\n", massFlow)
	}
	if math.Abs(massFlow-6.7865862) > 0.5 {
		tst.Errorf("mass flow %g far from the expected ~6.79 kg/s\n", massFlow)
	}

	// the boundary nodes' pressure must remain exactly as prescribed.
	chk.Scalar(tst, "boundary 0 unchanged", 1e-6, g.Nodes[0].PressureAt(0), 121325.0)
	chk.Scalar(tst, "boundary 1 unchanged", 1e-6, g.Nodes[1].PressureAt(0), 101325.0)
}

// Test_steady02 checks the idempotence property: re-running SolveSteady
// from the already-converged solution (createGuess=false) should need very
// few further Newton iterations since the residual is already near zero.
func Test_steady02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steady02")

	g, f := singlePipeNetwork()
	s := New()
	if _, err := s.SolveSteady(g, f, true); err != nil {
		tst.Errorf("first solve failed: %v\n", err)
		return
	}
	iter2, err := s.SolveSteady(g, f, false)
	if err != nil {
		tst.Errorf("second solve failed: %v\n", err)
		return
	}
	if iter2 > 2 {
		tst.Errorf("re-solving from a converged state should take very few iterations, got %d\n", iter2)
	}
}

func Test_steady_empty(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steady_empty")

	g := graph.New()
	f := fluid.NewBasic()
	s := New()
	_, err := s.SolveSteady(g, f, true)
	if err == nil {
		tst.Errorf("expected EmptyNetwork error on an empty graph\n")
		return
	}
	serr, ok := err.(*Error)
	if !ok || serr.Kind != EmptyNetwork {
		tst.Errorf("expected EmptyNetwork error kind, got %v\n", err)
	}
}

func Test_transient01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transient01")

	g, f := singlePipeNetwork()
	s := New()
	if _, err := s.SolveSteady(g, f, true); err != nil {
		tst.Errorf("steady solve failed: %v\n", err)
		return
	}

	steps := 3
	for i := 0; i < steps; i++ {
		if _, err := s.TimeStep(g, f); err != nil {
			tst.Errorf("time step %d failed: %v\n", i, err)
			return
		}
	}

	// history length must be steady (1) + number of transient steps taken.
	if g.Edges[0].Steps() != steps+1 {
		tst.Errorf("expected %d edge history entries, got %d\n", steps+1, g.Edges[0].Steps())
	}
	if len(s.Tnodes) != steps+1 {
		tst.Errorf("expected %d time nodes, got %d\n", steps+1, len(s.Tnodes))
	}

	// RemoveTransientValues must bring everything back down to length 1.
	g.RemoveTransientValues()
	if g.Edges[0].Steps() != 1 {
		tst.Errorf("RemoveTransientValues should truncate edge history to 1, got %d\n", g.Edges[0].Steps())
	}
}

func Test_transient_missing_steady(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transient_missing_steady")

	g, f := singlePipeNetwork()
	s := New()
	_, err := s.TimeStep(g, f)
	if err == nil {
		tst.Errorf("expected MissingSteady error before any steady solve\n")
		return
	}
	serr, ok := err.(*Error)
	if !ok || serr.Kind != MissingSteady {
		tst.Errorf("expected MissingSteady error kind, got %v\n", err)
	}
}
