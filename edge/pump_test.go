package edge

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

func Test_pump01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pump01")

	p := NewPump(0, 0, 1)

	// theta wraps into [0, 2*pi) regardless of quadrant.
	cases := []struct{ n, q, want float64 }{
		{1, 1, math.Pi / 4},
		{1, 0, math.Pi / 2},
		{0, 1, 0},
		{-1, 0, 3 * math.Pi / 2},
		{0, -1, math.Pi},
	}
	for _, c := range cases {
		got := p.theta(c.n, c.q)
		chk.Scalar(tst, "theta", 1e-14, got, c.want)
		if got < 0 || got >= 2*math.Pi {
			tst.Errorf("theta=%g out of [0, 2*pi)\n", got)
		}
	}

	// the Suter head factor must reproduce the tabulated rated point
	// (theta=90deg, normal pumping) exactly, and interpolate strictly
	// between its neighbours for an in-between angle.
	theta90 := 90.0 * math.Pi / 180.0
	chk.Scalar(tst, "fh(90deg)", 1e-12, p.fh(theta90), 1.35)

	theta92 := 92.5 * math.Pi / 180.0 // midway between the 90deg and 95deg samples
	fhMid := p.fh(theta92)
	if fhMid <= 1.35 || fhMid >= 1.36 {
		tst.Errorf("fh(92.5deg)=%g should lie strictly between the 90deg and 95deg samples\n", fhMid)
	}
}

func Test_pump02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pump02")

	p := NewPump(0, 0, 1)

	// at the rated flow and rated speed, qn=1 and n=1, so theta=45deg and
	// Resistance collapses to h_rated*2*fh(45deg) plus the appended dh.
	g := 9.81
	theta45 := 45.0 * math.Pi / 180.0
	fh45 := p.fh(theta45)
	dh := 3.0
	r := p.Resistance(p.QRated, dh, 0, g, 0)
	want := p.HRated*2.0*fh45 + dh
	chk.Scalar(tst, "resistance at rated point", 1e-9, r, want)

	// DrDdh is always 1 (Δh is appended with unit coefficient).
	chk.Scalar(tst, "dr/ddh", 1e-15, p.DrDdh(p.QRated, dh, 0, g, 0), 1.0)

	// DrDq must agree with a wide-step central difference of Resistance.
	drdq := p.DrDq(p.QRated, dh, 0, g, 0)
	eps := 1e-4
	fd := (p.Resistance(p.QRated+eps, dh, 0, g, 0) - p.Resistance(p.QRated-eps, dh, 0, g, 0)) / (2 * eps)
	chk.Scalar(tst, "dr/dq vs finite difference", 1e-4, drdq, fd)
}

func Test_pump03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pump03")

	p := NewPump(0, 0, 1)

	// KLaminar is the pump's rated slope, independent of viscosity.
	chk.Scalar(tst, "k_laminar", 1e-15, p.KLaminar(1e-6), -p.QRated/p.HRated)

	// DarcyApprox must invert Resistance near q=0: feeding back the head
	// loss at the rated flow should recover something of the same sign
	// and order of magnitude as q_rated (the quadratic expansion is only
	// locally accurate, so this is a loose sanity check, not an exact
	// inverse).
	g := 9.81
	headLoss := p.Resistance(p.QRated, 0, 0, g, 0)
	q := p.DarcyApprox(headLoss, g)
	if math.IsNaN(q) {
		tst.Errorf("DarcyApprox returned NaN\n")
	}

	if chk.Verbose {
		plt.Reset()
		npts := len(p.HeadTheta)
		thetaDeg := make([]float64, npts)
		for i, t := range p.HeadTheta {
			thetaDeg[i] = t * 180.0 / math.Pi
		}
		plt.Plot(thetaDeg, p.HeadFactor, "'b.-', label='F_h'")
		plt.Plot(thetaDeg, p.TorqueFactor, "'r.-', label='F_tau'")
		plt.Gll("theta [deg]", "factor", "")
		plt.SaveD("/tmp/flownet", "pump_suter.png")
	}
}
