package edge

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/flownet/fluid"
)

// SafetyValve snaps fully open once the upstream-downstream pressure
// difference exceeds SetDp, and fully shut again the instant it drops back
// (non-sticky step function), mirroring edges/safety_valve.rs.
type SafetyValve struct {
	common
	Diameter      float64   `json:"diameter"`
	Thickness     float64   `json:"thickness"`
	YoungsModulus float64   `json:"youngs_modulus"`
	SetDp         float64   `json:"set_dp"`
	InvKClosed    float64   `json:"invk_closed"`
	InvKOpen      float64   `json:"invk_open"`
	OpenPercent   []float64 `json:"open_percent"`
}

func init() {
	allocators["safety_valve"] = func(id, from, to uint64) Edge { return NewSafetyValve(id, from, to) }
}

func NewSafetyValve(id, from, to uint64) *SafetyValve {
	return &SafetyValve{
		common:        newCommon(id, from, to),
		Diameter:      52.5e-3,
		Thickness:     5.0e-3,
		YoungsModulus: 2.0e11,
		SetDp:         5e5,
		InvKClosed:    0.0,
		InvKOpen:      1.0 / 0.25,
		OpenPercent:   []float64{0.0},
	}
}

func (o *SafetyValve) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "diameter":
			o.Diameter = p.V
		case "thickness":
			o.Thickness = p.V
		case "youngs_modulus":
			o.YoungsModulus = p.V
		case "set_dp":
			o.SetDp = p.V
		}
	}
	return nil
}

func (o *SafetyValve) Area() float64   { return math.Pi * o.Diameter * o.Diameter / 4.0 }
func (o *SafetyValve) Length() float64 { return 0.0 }

func (o *SafetyValve) WaveSpeed(rho, bulk float64) float64 {
	f := fluid.NewBasic()
	f.Rho, f.Bulk = rho, bulk
	return fluid.WaveSpeed(f, o.Diameter, o.Thickness, o.YoungsModulus)
}

func (o *SafetyValve) MCoefficient(rho, bulk, g float64) float64 { return 0.0 }

// invK is a step function of the current open percentage: shut unless the
// valve is fully open (matches the source's literal `< 1.0` test).
func (o *SafetyValve) invK(step int) float64 {
	op := o.OpenPercent[0]
	if step < len(o.OpenPercent) {
		op = o.OpenPercent[step]
	}
	if op < 1.0 {
		return o.InvKClosed
	}
	return o.InvKOpen
}

func (o *SafetyValve) Resistance(q, dh, nu, g float64, step int) float64 {
	area := o.Area()
	return -signedSquare(q)/(2*area) + o.invK(step)*g*area*dh
}

func (o *SafetyValve) DrDq(q, dh, nu, g float64, step int) float64 {
	return -math.Abs(q) / o.Area()
}

func (o *SafetyValve) DrDdh(q, dh, nu, g float64, step int) float64 {
	return o.invK(step) * g * o.Area()
}

func (o *SafetyValve) BCoefficient(g float64, step int) float64 { return o.invK(step) }

func (o *SafetyValve) KLaminar(nu float64) float64 {
	if o.InvKClosed == 0 {
		return 1e-12
	}
	return 1.0 / o.InvKClosed
}

func (o *SafetyValve) DarcyApprox(headLoss, g float64) float64 {
	v := math.Abs(headLoss) * o.InvKClosed
	if v <= 0 || math.IsNaN(v) {
		return 1e-4
	}
	return math.Sqrt(v)
}

// AddTransientValue compares the current pressure difference between the
// endpoints to SetDp and snaps open (1.0) or shut (0.0) accordingly: a
// pure function of the present state, not sticky.
func (o *SafetyValve) AddTransientValue(time float64, fromHead, toHead []float64) {
	last := len(fromHead) - 1
	dp := fromHead[last] - toHead[last]
	op := 0.0
	if dp > o.SetDp {
		op = 1.0
	}
	o.OpenPercent = append(o.OpenPercent, op)
	o.MassFlow = append(o.MassFlow, o.MassFlow[len(o.MassFlow)-1])
}

// Reset truncates the open-percentage history alongside mass flow.
func (o *SafetyValve) Reset() {
	o.common.Reset()
	o.OpenPercent = []float64{o.OpenPercent[0]}
}
