package edge

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_pipe01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pipe01")

	p := NewPipe(0, 0, 1)
	nu := 1.0e-6
	g := 9.81

	// at dh=0, resistance must be an odd function of q (spec: Darcy-Weisbach
	// head loss always opposes the flow direction it is computed from).
	for _, q := range []float64{0.001, 0.01, 0.05} {
		rPos := p.Resistance(q, 0, nu, g, 0)
		rNeg := p.Resistance(-q, 0, nu, g, 0)
		chk.Scalar(tst, "r(q) == -r(-q)", 1e-12, rPos, -rNeg)
	}

	// q == 0 degenerates to the pure Δh term.
	chk.Scalar(tst, "r(0,dh)==dh", 1e-15, p.Resistance(0, 3.3, nu, g, 0), 3.3)

	// DrDdh is the unit coefficient the source's literal "-K" block assumed.
	chk.Scalar(tst, "DrDdh==1", 1e-15, p.DrDdh(0.01, 0, nu, g, 0), 1.0)
}

func Test_pipe02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pipe02")

	p := NewPipe(0, 0, 1)
	area := p.Area()
	chk.Scalar(tst, "area", 1e-12, area, math.Pi*p.Diameter*p.Diameter/4.0)

	// a wide-open pipe at turbulent flow must show some resistance increasing
	// in magnitude with |q| (monotonic loss, not a precise coefficient check).
	r1 := math.Abs(p.Resistance(0.01, 0, 1.0e-6, 9.81, 0))
	r2 := math.Abs(p.Resistance(0.02, 0, 1.0e-6, 9.81, 0))
	if r2 <= r1 {
		tst.Errorf("resistance magnitude should grow with |q|: r(0.01)=%g r(0.02)=%g\n", r1, r2)
	}
}
