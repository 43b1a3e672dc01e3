package edge

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/flownet/fluid"
	"github.com/cpmech/flownet/internal/numeric"
)

// ReliefValve ramps open smoothly over a pressure-difference range (unlike
// SafetyValve's hard snap), with its invK interpolated linearly against its
// own open-percentage table (edges/relief_valve.rs).
type ReliefValve struct {
	common
	Diameter      float64   `json:"diameter"`
	Thickness     float64   `json:"thickness"`
	YoungsModulus float64   `json:"youngs_modulus"`
	InvKOpen      []float64 `json:"invk_open"` // x: open percent
	InvK          []float64 `json:"invk"`
	OpenDp        []float64 `json:"open_dp"` // x: pressure difference
	OpenFromDp    []float64 `json:"open_from_dp"`
	OpenPercent   []float64 `json:"open_percent"`
}

func init() {
	allocators["relief_valve"] = func(id, from, to uint64) Edge { return NewReliefValve(id, from, to) }
}

func NewReliefValve(id, from, to uint64) *ReliefValve {
	return &ReliefValve{
		common:        newCommon(id, from, to),
		Diameter:      52.5e-3,
		Thickness:     5.0e-3,
		YoungsModulus: 2.0e11,
		InvKOpen:      []float64{0, 1},
		InvK:          []float64{0.0, 1.0 / 0.25},
		OpenDp:        []float64{1000, 3000, 5000},
		OpenFromDp:    []float64{0.0, 0.5, 1.0},
		OpenPercent:   []float64{0.0},
	}
}

func (o *ReliefValve) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "diameter":
			o.Diameter = p.V
		case "thickness":
			o.Thickness = p.V
		case "youngs_modulus":
			o.YoungsModulus = p.V
		}
	}
	return nil
}

func (o *ReliefValve) Area() float64   { return math.Pi * o.Diameter * o.Diameter / 4.0 }
func (o *ReliefValve) Length() float64 { return 0.0 }

func (o *ReliefValve) WaveSpeed(rho, bulk float64) float64 {
	f := fluid.NewBasic()
	f.Rho, f.Bulk = rho, bulk
	return fluid.WaveSpeed(f, o.Diameter, o.Thickness, o.YoungsModulus)
}

func (o *ReliefValve) MCoefficient(rho, bulk, g float64) float64 { return 0.0 }

func (o *ReliefValve) invK(step int) float64 {
	op := o.OpenPercent[0]
	if step < len(o.OpenPercent) {
		op = o.OpenPercent[step]
	}
	return numeric.Interpolate(op, o.InvKOpen, o.InvK)
}

// openPercentFromDp clamps below the first breakpoint, above the last, and
// linearly interpolates in between (matches open_percent_from_dp).
func (o *ReliefValve) openPercentFromDp(dp float64) float64 {
	if dp <= o.OpenDp[0] {
		return o.OpenFromDp[0]
	}
	last := len(o.OpenDp) - 1
	if dp >= o.OpenDp[last] {
		return o.OpenFromDp[last]
	}
	return numeric.Interpolate(dp, o.OpenDp, o.OpenFromDp)
}

func (o *ReliefValve) Resistance(q, dh, nu, g float64, step int) float64 {
	area := o.Area()
	return -signedSquare(q)/(2*area) + o.invK(step)*g*area*dh
}

func (o *ReliefValve) DrDq(q, dh, nu, g float64, step int) float64 {
	return -math.Abs(q) / o.Area()
}

func (o *ReliefValve) DrDdh(q, dh, nu, g float64, step int) float64 {
	return o.invK(step) * g * o.Area()
}

func (o *ReliefValve) BCoefficient(g float64, step int) float64 { return o.invK(step) }

func (o *ReliefValve) KLaminar(nu float64) float64 {
	k := o.invK(0)
	if k == 0 {
		return 1e-12
	}
	return 1.0 / k
}

func (o *ReliefValve) DarcyApprox(headLoss, g float64) float64 {
	v := math.Abs(headLoss) * o.invK(0)
	if v <= 0 || math.IsNaN(v) {
		return 1e-4
	}
	return math.Sqrt(v)
}

func (o *ReliefValve) AddTransientValue(time float64, fromPressure, toPressure []float64) {
	last := len(fromPressure) - 1
	dp := fromPressure[last] - toPressure[last]
	o.OpenPercent = append(o.OpenPercent, o.openPercentFromDp(dp))
	o.MassFlow = append(o.MassFlow, o.MassFlow[len(o.MassFlow)-1])
}

// Reset truncates the open-percentage history alongside mass flow.
func (o *ReliefValve) Reset() {
	o.common.Reset()
	o.OpenPercent = []float64{o.OpenPercent[0]}
}
