package fluid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_basic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("basic01")

	f := NewBasic()
	chk.Scalar(tst, "rho", 1e-15, f.Density(), 999.1)
	chk.Scalar(tst, "nu", 1e-15, f.KinematicViscosity(), 1.1385e-6)
	chk.Scalar(tst, "bulk", 1e-15, f.BulkModulus(), 2.15e9)

	err := f.Init(fun.Prms{&fun.Prm{N: "rho", V: 997.0}, &fun.Prm{N: "nu", V: 1.1375e-6}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "rho", 1e-15, f.Density(), 997.0)

	if err := f.Init(fun.Prms{&fun.Prm{N: "rho", V: -1.0}}); err == nil {
		tst.Errorf("Init should have rejected a non-positive density\n")
	}
}

func Test_water01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water01")

	w := NewWater()
	chk.Scalar(tst, "default temperature", 1e-15, w.TemperatureK, 288.15)

	// spec §8: for water, bulk modulus must equal rho*c^2 with both
	// interpolated at the same temperature -- true here by construction,
	// checked anyway as a regression guard.
	rho := w.Density()
	c := w.SpeedOfSound()
	chk.Scalar(tst, "bulk == rho*c^2", 1e-6, w.BulkModulus(), rho*c*c)

	// the interpolated density must be positive (a sanity check on the
	// interpolation).
	if rho <= 0 {
		tst.Errorf("density must be positive, got %g\n", rho)
	}

	// out-of-range temperature is clamped, not rejected (spec §7).
	err := w.Init(fun.Prms{&fun.Prm{N: "temperature_k", V: 500.0}})
	if err != nil {
		tst.Errorf("Init should clamp, not fail: %v\n", err)
		return
	}
	clamped, tK := w.ClampWarning()
	if !clamped {
		tst.Errorf("expected Clamped=true for an out-of-range temperature\n")
	}
	chk.Scalar(tst, "clamped to table max", 1e-9, tK, 373.15)
}

func Test_wavespeed01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wavespeed01")

	f := NewBasic()
	a := WaveSpeed(f, 52.5e-3, 5e-3, 2e11)
	if a <= 0 || math.IsNaN(a) {
		tst.Errorf("wave speed must be a positive finite number, got %g\n", a)
	}
	// a rigid pipe (huge Young's modulus) should approach sqrt(K/rho).
	aRigid := WaveSpeed(f, 52.5e-3, 5e-3, 1e30)
	cSound := SoundSpeed(f)
	chk.Scalar(tst, "rigid-pipe wave speed -> sound speed", 1e-3, aRigid/cSound, 1.0)
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01")

	f, err := New("basic", fun.Prms{&fun.Prm{N: "rho", V: 1000.0}})
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "rho", 1e-15, f.Density(), 1000.0)

	if _, err := New("unknown", nil); err == nil {
		tst.Errorf("New should reject an unknown fluid kind\n")
	}
}
