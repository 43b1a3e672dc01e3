package event

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_instantaneous01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("instantaneous01")

	e := InstantaneousChange{Value: 5.0, TEvent: 2.0}
	chk.Scalar(tst, "before trigger", 1e-15, OpenPercent(e, 1.0, 1.0), 1.0)
	chk.Scalar(tst, "at trigger", 1e-15, OpenPercent(e, 2.0, 1.0), 5.0)
	chk.Scalar(tst, "after trigger", 1e-15, OpenPercent(e, 10.0, 1.0), 5.0)
}

func Test_valveclosure01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("valveclosure01")

	e := ValveClosure{Exponent: 1.5, TEvent: 0.0, TClose: 10.0}
	chk.Scalar(tst, "at t=0", 1e-12, OpenPercent(e, 0.0, 1.0), 1.0)
	chk.Scalar(tst, "after close", 1e-12, OpenPercent(e, 10.0, 1.0), 0.0)
	chk.Scalar(tst, "past close stays shut", 1e-12, OpenPercent(e, 20.0, 1.0), 0.0)

	mid := OpenPercent(e, 5.0, 1.0)
	if mid <= 0.0 || mid >= 1.0 {
		tst.Errorf("mid-ramp open percent should lie strictly in (0,1), got %g\n", mid)
	}
}

func Test_valveopening01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("valveopening01")

	e := ValveOpening{Exponent: 1.0, TEvent: 0.0, TOpen: 10.0}
	chk.Scalar(tst, "at t=0", 1e-12, OpenPercent(e, 0.0, 0.2), 0.2)
	chk.Scalar(tst, "after open", 1e-12, OpenPercent(e, 10.0, 0.2), 1.0)
	chk.Scalar(tst, "half-way (linear)", 1e-12, OpenPercent(e, 5.0, 0.2), 0.6)
}

func Test_pumpspeed01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pumpspeed01")

	down := PumpShutdown{Exponent: 1.0, TEvent: 0.0, TDown: 4.0}
	chk.Scalar(tst, "shutdown at t=0", 1e-12, PumpSpeed(down, 0.0, 1.0), 1.0)
	chk.Scalar(tst, "shutdown complete", 1e-12, PumpSpeed(down, 4.0, 1.0), 0.0)

	up := PumpStartup{Target: 1.0, Exponent: 1.0, TEvent: 0.0, TUp: 4.0}
	chk.Scalar(tst, "startup half-way", 1e-12, PumpSpeed(up, 2.0, 0.0), 0.5)
}

// Test_apply01 checks the documented "last event wins" rule: when multiple
// events are registered, Apply evaluates every one at time t and keeps
// whichever result came last, not the most temporally relevant one.
func Test_apply01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("apply01")

	events := []Event{
		InstantaneousChange{Value: 1.0, TEvent: 0.0},
		InstantaneousChange{Value: 2.0, TEvent: 100.0},
	}
	got := Apply(events, 1.0, 0.0, OpenPercent)
	chk.Scalar(tst, "last registered event wins even if not yet triggered", 1e-15, got, 0.0)

	none := Apply(nil, 1.0, 0.5, OpenPercent)
	chk.Scalar(tst, "no events -> steady value", 1e-15, none, 0.5)
}
