package edge

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// Generic models an arbitrary two-term power-law loss, r = A + B*q*|q|^(n-1)
// + C*q*|q|^(m-1), for components with no standard hydraulic formula
// (spec §4.3).
type Generic struct {
	common
	CoeffA    float64 `json:"coeff_a"`
	CoeffB    float64 `json:"coeff_b"`
	CoeffC    float64 `json:"coeff_c"`
	ExponentN float64 `json:"exponent_n"`
	ExponentM float64 `json:"exponent_m"`
}

func init() {
	allocators["generic"] = func(id, from, to uint64) Edge { return NewGeneric(id, from, to) }
}

func NewGeneric(id, from, to uint64) *Generic {
	return &Generic{common: newCommon(id, from, to), CoeffA: 0.0, CoeffB: 1.0, CoeffC: 0.0, ExponentN: 2.0, ExponentM: 2.0}
}

func (o *Generic) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "coeff_a":
			o.CoeffA = p.V
		case "coeff_b":
			o.CoeffB = p.V
		case "coeff_c":
			o.CoeffC = p.V
		case "exponent_n":
			o.ExponentN = p.V
		case "exponent_m":
			o.ExponentM = p.V
		}
	}
	return nil
}

// Area is fixed at 1.0, matching the source's constant placeholder for a
// component with no physical cross-section.
func (o *Generic) Area() float64   { return 1.0 }
func (o *Generic) Length() float64 { return 0.0 }

// WaveSpeed is 0; the source marks this TODO ("should be infinity") since a
// lumped-loss element has no physical wave-propagation length.
func (o *Generic) WaveSpeed(rho, bulk float64) float64 { return 0.0 }

func (o *Generic) MCoefficient(rho, bulk, g float64) float64 { return 0.0 }

func (o *Generic) r(q float64) float64 {
	aq := math.Abs(q)
	return o.CoeffA + o.CoeffB*q*math.Pow(aq, o.ExponentN-1) + o.CoeffC*q*math.Pow(aq, o.ExponentM-1)
}

func (o *Generic) Resistance(q, dh, nu, g float64, step int) float64 {
	area := o.Area()
	return -g*area*o.r(q) + g*area*dh
}

func (o *Generic) DrDq(q, dh, nu, g float64, step int) float64 {
	return centralDiff(func(x float64) float64 { return o.Resistance(x, dh, nu, g, step) }, q)
}

func (o *Generic) DrDdh(q, dh, nu, g float64, step int) float64 { return g * o.Area() }

func (o *Generic) BCoefficient(g float64, step int) float64 { return 1.0 / (g * o.Area()) }

func (o *Generic) KLaminar(nu float64) float64 { return 1.0 / o.CoeffB }

func (o *Generic) DarcyApprox(headLoss, g float64) float64 {
	v := math.Abs(headLoss) / math.Max(o.CoeffB, 1e-12)
	if math.IsNaN(v) {
		return 1e-4
	}
	return math.Sqrt(v)
}

func (o *Generic) AddTransientValue(time float64, fromHead, toHead []float64) {
	o.MassFlow = append(o.MassFlow, o.MassFlow[len(o.MassFlow)-1])
}
