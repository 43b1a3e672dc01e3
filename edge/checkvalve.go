package edge

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// CheckValve permits forward flow only: it behaves as a nominal valve when
// q >= 0 and as a fully shut valve (invK = 0) the instant flow would
// reverse. Its state is a pure function of the sign of the flow q being
// evaluated: it keeps no open-percentage history and has no latching or
// hysteresis, and the head difference plays no part in opening or shutting
// it. No retrieved source file covers this kind (see DESIGN.md).
type CheckValve struct {
	common
	Diameter float64 `json:"diameter"`
	InvKOpen float64 `json:"invk_open"`
}

func init() {
	allocators["check_valve"] = func(id, from, to uint64) Edge { return NewCheckValve(id, from, to) }
}

func NewCheckValve(id, from, to uint64) *CheckValve {
	return &CheckValve{common: newCommon(id, from, to), Diameter: 52.5e-3, InvKOpen: 0.25}
}

func (o *CheckValve) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "diameter":
			o.Diameter = p.V
		case "invk_open":
			o.InvKOpen = p.V
		}
	}
	return nil
}

func (o *CheckValve) Area() float64                      { return math.Pi * o.Diameter * o.Diameter / 4.0 }
func (o *CheckValve) Length() float64                    { return 0.0 }
func (o *CheckValve) WaveSpeed(rho, bulk float64) float64 { return 0.0 }

func (o *CheckValve) MCoefficient(rho, bulk, g float64) float64 { return 0.0 }

func (o *CheckValve) invK(q float64) float64 {
	if q < 0 {
		return 0.0
	}
	return o.InvKOpen
}

func (o *CheckValve) Resistance(q, dh, nu, g float64, step int) float64 {
	area := o.Area()
	return -signedSquare(q)/(2*area*area) + o.invK(q)*g*area*dh
}

func (o *CheckValve) DrDq(q, dh, nu, g float64, step int) float64 {
	return -math.Abs(q) / (o.Area() * o.Area())
}

func (o *CheckValve) DrDdh(q, dh, nu, g float64, step int) float64 {
	return o.invK(q) * g * o.Area()
}

func (o *CheckValve) BCoefficient(g float64, step int) float64 { return o.InvKOpen }

func (o *CheckValve) KLaminar(nu float64) float64 {
	if o.InvKOpen == 0 {
		return 1e16
	}
	return 1.0 / o.InvKOpen
}

func (o *CheckValve) DarcyApprox(headLoss, g float64) float64 {
	v := math.Abs(headLoss) * o.InvKOpen
	if v < 0 || math.IsNaN(v) {
		return 1e-4
	}
	return math.Sqrt(v)
}

// AddTransientValue: a check valve has no scheduled state; it reacts purely
// to the sign of the flow passed to Resistance/DrDdh within each Newton
// iteration, so the history just tracks mass flow.
func (o *CheckValve) AddTransientValue(time float64, fromHead, toHead []float64) {
	o.MassFlow = append(o.MassFlow, o.MassFlow[len(o.MassFlow)-1])
}
