package lam

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/flownet/edge"
	"github.com/cpmech/flownet/fluid"
	"github.com/cpmech/flownet/graph"
	"github.com/cpmech/flownet/node"
)

func Test_guess01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("guess01")

	g := graph.New()
	g.AddNode(node.NewPressureWithValue(0, 150000.0))
	g.AddNode(node.NewPressureWithValue(1, 101325.0))
	g.AddEdge(edge.NewPipe(0, 0, 1))
	g.CreateIdToIndex()

	f := fluid.NewBasic()
	q, h := Guess(g, f, 9.80665)

	if len(q) != 1 || len(h) != 2 {
		tst.Errorf("wrong guess shape: len(q)=%d len(h)=%d\n", len(q), len(h))
	}
	for _, v := range q {
		if math.IsNaN(v) {
			tst.Errorf("guessed q must not be NaN\n")
		}
	}
	// flow should be from the high-pressure node toward the low one.
	if q[0] <= 0 {
		tst.Errorf("expected a positive initial guess flow from node 0 to node 1, got %g\n", q[0])
	}
	// boundary heads must be pinned exactly at their prescribed value.
	rho := f.Density()
	chk.Scalar(tst, "h[0] pinned", 1e-9, h[g.Index(0)], 150000.0/(rho*9.80665))
	chk.Scalar(tst, "h[1] pinned", 1e-9, h[g.Index(1)], 101325.0/(rho*9.80665))
}
