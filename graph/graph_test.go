package graph

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/flownet/edge"
	"github.com/cpmech/flownet/node"
)

func newTwoNodePipeGraph() *Graph {
	g := New()
	g.AddNode(node.NewPressureWithValue(0, 150000.0))
	g.AddNode(node.NewPressureWithValue(1, 101325.0))
	g.AddEdge(edge.NewPipe(0, 0, 1))
	g.CreateIdToIndex()
	return g
}

func Test_graph01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph01")

	g := newTwoNodePipeGraph()
	if g.NumNodes() != 2 || g.NumEdges() != 1 {
		tst.Errorf("wrong graph size: %d nodes, %d edges\n", g.NumNodes(), g.NumEdges())
	}

	k := g.KMatrix()
	chk.Scalar(tst, "K[0][from]", 1e-15, k[0][g.Index(0)], 1.0)
	chk.Scalar(tst, "K[0][to]", 1e-15, k[0][g.Index(1)], -1.0)

	kt := g.IncidenceMatrix()
	chk.Scalar(tst, "K^T[from][0]", 1e-15, kt[g.Index(0)][0], 1.0)
	chk.Scalar(tst, "K^T[to][0]", 1e-15, kt[g.Index(1)][0], -1.0)
}

func Test_graph02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph02")

	g := newTwoNodePipeGraph()

	// SetSteadySolution/SteadySolutionQH must round-trip (q, h).
	qIn := []float64{0.02}
	hIn := []float64{15.29, 10.33}
	rho, gAcc := 999.1, 9.80665
	g.SetSteadySolution(qIn, hIn, rho, gAcc)
	qOut, hOut := g.SteadySolutionQH(rho, gAcc)
	chk.Scalar(tst, "q round-trip", 1e-9, qOut[0], qIn[0])
	chk.Scalar(tst, "h round-trip", 1e-9, hOut[0], hIn[0])
	chk.Scalar(tst, "h round-trip 2", 1e-9, hOut[1], hIn[1])
}

func Test_graph03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph03")

	g := newTwoNodePipeGraph()
	g.SetSteadySolution([]float64{0.02}, []float64{15.29, 10.33}, 999.1, 9.80665)

	// RemoveTransientValues must truncate histories back to length 1
	// regardless of how many transient steps were pushed. Pressure boundaries
	// are not pushed by PushTransientSolution, so each step first advances
	// the event state, which appends their scheduled sample.
	for i := 0; i < 3; i++ {
		g.AdvanceEventState(float64(i + 1))
		g.PushTransientSolution([]float64{0.02}, []float64{15.29, 10.33}, constFluid{rho: 999.1}, 9.80665)
	}
	for _, n := range g.Nodes {
		if n.Steps() != 4 {
			tst.Errorf("expected 4 steps before reset, got %d\n", n.Steps())
		}
	}
	g.RemoveTransientValues()
	for _, n := range g.Nodes {
		if n.Steps() != 1 {
			tst.Errorf("RemoveTransientValues should truncate to 1 step, got %d\n", n.Steps())
		}
	}
	for _, e := range g.Edges {
		if e.Steps() != 1 {
			tst.Errorf("RemoveTransientValues should truncate edge history to 1 step, got %d\n", e.Steps())
		}
	}
}

// constFluid is a minimal fluid.Fluid stand-in so graph tests don't need to
// import the fluid package just to get a constant density.
type constFluid struct{ rho float64 }

func (f constFluid) Density() float64            { return f.rho }
func (f constFluid) KinematicViscosity() float64 { return 1.0e-6 }
func (f constFluid) BulkModulus() float64        { return 2.15e9 }

func Test_graph04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graph04")

	g := newTwoNodePipeGraph()
	// a node's net inflow must be the sum of its incident edge flows with
	// sign by direction.
	g.Edges[0].SetSteadyMassFlow(5.0)
	in := g.NetInflow(g.Index(1), 0)
	out := g.NetInflow(g.Index(0), 0)
	chk.Scalar(tst, "inflow at To", 1e-15, in, 5.0)
	chk.Scalar(tst, "outflow at From", 1e-15, out, -5.0)
}
