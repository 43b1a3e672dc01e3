package edge

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_reliefvalve01 exercises openPercentFromDp at and between the default
// table's breakpoints {1000:0, 3000:0.5, 5000:1.0} (spec §8 scenario 6's
// table), including the clamped regions below/above the table.
func Test_reliefvalve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reliefvalve01")

	rv := NewReliefValve(0, 0, 1)

	cases := []struct {
		dp, want float64
	}{
		{0, 0.0},
		{1000, 0.0},
		{2000, 0.25},
		{3000, 0.5},
		{4000, 0.75},
		{5000, 1.0},
		{9000, 1.0},
	}
	for _, c := range cases {
		got := rv.openPercentFromDp(c.dp)
		chk.Scalar(tst, "open_percent_from_dp", 1e-12, got, c.want)
	}
}

// Test_reliefvalve02 reproduces spec §8 scenario 6's flat-then-ramp
// transient sequence: six steps with the valve shut (Δp below the first
// breakpoint), then a ramp through the table to fully open.
func Test_reliefvalve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reliefvalve02")

	rv := NewReliefValve(0, 0, 1)

	from := []float64{0}
	to := []float64{0}
	dps := []float64{0, 0, 0, 0, 0, 0, 2000, 3000, 4000, 5000, 6000}
	want := []float64{0, 0, 0, 0, 0, 0, 0.25, 0.5, 0.75, 1.0, 1.0}
	for i, dp := range dps {
		from = append(from, dp)
		to = append(to, 0)
		rv.AddTransientValue(float64(i+1), from, to)
		got := rv.OpenPercent[len(rv.OpenPercent)-1]
		chk.Scalar(tst, "open_percent sequence", 1e-12, got, want[i])
	}
}
