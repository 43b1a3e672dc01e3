package node

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_tank01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tank01")

	rho, g := 1000.0, Gravity
	tk := NewTank(0, AtmosphericPressure, rho, g)
	chk.Scalar(tst, "initial level", 1e-15, tk.Z[0], 0.5)
	chk.Scalar(tst, "p0 = patm + rho*g*z", 1e-9, tk.PressureAt(0), AtmosphericPressure+rho*g*0.5)
	if !tk.IsTank() {
		tst.Errorf("tank flag wrong\n")
	}
}

// Test_tank02 checks level integration, clamping and the Saturated flag
// across a sequence of AddTransientValue+AdvanceLevel calls, the
// pattern solver.advanceTanks drives each step.
func Test_tank02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tank02")

	rho, g := 1000.0, Gravity
	tk := NewTankWithValues(0, AtmosphericPressure, rho, g, 1.0, 0.5, 0.0, 1.0)

	dt := 10.0
	qNet := 0.01 // m^3/s, filling

	tk.AddTransientValue(dt)
	tk.AdvanceLevel(qNet, dt, rho, g)
	wantZ := 0.5 + (qNet/tk.Area())*dt
	chk.Scalar(tst, "level after one fill step", 1e-9, tk.Z[1], wantZ)
	if tk.Saturated {
		tst.Errorf("should not be saturated yet\n")
	}

	// drive it far past the top to force clamping at ZMax=1.0.
	for i := 0; i < 50; i++ {
		tk.AddTransientValue(float64(i) * dt)
		tk.AdvanceLevel(1.0, dt, rho, g)
	}
	chk.Scalar(tst, "clamped to z_max", 1e-15, tk.Z[len(tk.Z)-1], 1.0)
	if !tk.Saturated {
		tst.Errorf("tank should report saturated once clamped\n")
	}
}
