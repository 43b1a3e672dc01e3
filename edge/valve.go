package edge

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/flownet/event"
	"github.com/cpmech/flownet/fluid"
	"github.com/cpmech/flownet/internal/numeric"
)

// Valve throttles flow through an open-percentage-dependent inverse loss
// coefficient (spec §4.3). Unlike the retrieved source's Valve (which
// interpolates a raw k table in log space and relies on an externally
// added Δh term), this follows the specification literally: a plain linear
// interpolation over an invK table, self-contained with Δh, matching the
// rest of the valve family (SafetyValve/ReliefValve/BurstingDisk) — see
// DESIGN.md.
type Valve struct {
	common
	Diameter      float64     `json:"diameter"`
	Thickness     float64     `json:"thickness"`
	YoungsModulus float64     `json:"youngs_modulus"`
	OpenPercent   []float64   `json:"open_percent"`
	InvKOpen      []float64   `json:"invk_open"` // x-axis: open percent, in [0,1]
	InvK          []float64   `json:"invk"`       // y-axis: 1/k
}

func init() {
	allocators["valve"] = func(id, from, to uint64) Edge { return NewValve(id, from, to) }
}

// NewValve's default invK table is the reciprocal of the source's default
// raw-k table, re-tabulated for the spec's plain-linear-interpolation
// convention.
func NewValve(id, from, to uint64) *Valve {
	op := []float64{0, 0.111, 0.222, 0.333, 0.444, 0.556, 0.667, 0.778, 0.889, 1.0}
	k := []float64{1e16, 700, 160, 60, 23, 7.9, 3, 1.4, 0.5, 0.25}
	invk := make([]float64, len(k))
	for i, v := range k {
		invk[i] = 1.0 / v
	}
	return &Valve{
		common:        newCommon(id, from, to),
		Diameter:      52.5e-3,
		Thickness:     5.0e-3,
		YoungsModulus: 2.0e11,
		OpenPercent:   []float64{1.0},
		InvKOpen:      op,
		InvK:          invk,
	}
}

func (o *Valve) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "diameter":
			o.Diameter = p.V
		case "thickness":
			o.Thickness = p.V
		case "youngs_modulus":
			o.YoungsModulus = p.V
		case "open_percent":
			o.OpenPercent[0] = p.V
		}
	}
	return nil
}

func (o *Valve) Area() float64   { return math.Pi * o.Diameter * o.Diameter / 4.0 }
func (o *Valve) Length() float64 { return 0.0 }

func (o *Valve) WaveSpeed(rho, bulk float64) float64 {
	f := fluid.NewBasic()
	f.Rho, f.Bulk = rho, bulk
	return fluid.WaveSpeed(f, o.Diameter, o.Thickness, o.YoungsModulus)
}

func (o *Valve) MCoefficient(rho, bulk, g float64) float64 {
	a := o.WaveSpeed(rho, bulk)
	if a == 0 || o.Length() == 0 {
		return 0
	}
	return g * o.Area() * o.Length() / (2 * a * a)
}

func (o *Valve) invK(step int) float64 {
	op := o.OpenPercent[0]
	if step < len(o.OpenPercent) {
		op = o.OpenPercent[step]
	}
	return numeric.Interpolate(op, o.InvKOpen, o.InvK)
}

func (o *Valve) Resistance(q, dh, nu, g float64, step int) float64 {
	area := o.Area()
	return -signedSquare(q)/(2*area*area) + o.invK(step)*g*area*dh
}

func (o *Valve) DrDq(q, dh, nu, g float64, step int) float64 {
	return -math.Abs(q) / (o.Area() * o.Area())
}

func (o *Valve) DrDdh(q, dh, nu, g float64, step int) float64 {
	return o.invK(step) * g * o.Area()
}

func (o *Valve) BCoefficient(g float64, step int) float64 {
	return o.invK(step)
}

func (o *Valve) KLaminar(nu float64) float64 {
	k := o.invK(0)
	if k == 0 {
		return 1e16
	}
	return 1.0 / k
}

func (o *Valve) DarcyApprox(headLoss, g float64) float64 {
	v := math.Abs(headLoss) * o.invK(0)
	if v < 0 || math.IsNaN(v) {
		return 1e-4
	}
	return math.Sqrt(v)
}

// AddTransientValue advances OpenPercent by events, or repeats the last
// value if none (spec §4.4), matching Valve::add_transient_value.
func (o *Valve) AddTransientValue(time float64, fromHead, toHead []float64) {
	steady := o.OpenPercent[0]
	v := event.Apply(o.Events, time, steady, event.OpenPercent)
	if len(o.Events) == 0 {
		v = o.OpenPercent[len(o.OpenPercent)-1]
	}
	o.OpenPercent = append(o.OpenPercent, v)
	o.MassFlow = append(o.MassFlow, o.MassFlow[len(o.MassFlow)-1])
}

// Reset truncates the open-percentage history alongside mass flow.
func (o *Valve) Reset() {
	o.common.Reset()
	o.OpenPercent = []float64{o.OpenPercent[0]}
}
