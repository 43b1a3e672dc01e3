package edge

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// SizeChange is a sudden contraction or expansion, direction-dependent
// (spec §4.3).
type SizeChange struct {
	common
	Diameter float64 `json:"diameter"`
	Beta     float64 `json:"beta"` // downstream/upstream diameter ratio
}

func init() {
	allocators["size_change"] = func(id, from, to uint64) Edge { return NewSizeChange(id, from, to) }
}

func NewSizeChange(id, from, to uint64) *SizeChange {
	return &SizeChange{common: newCommon(id, from, to), Diameter: 52.5e-3, Beta: 1.0}
}

func (o *SizeChange) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "diameter":
			o.Diameter = p.V
		case "beta":
			o.Beta = p.V
		}
	}
	return nil
}

func (o *SizeChange) Area() float64    { return math.Pi * o.Diameter * o.Diameter / 4.0 }
func (o *SizeChange) Length() float64  { return 0.0 }
func (o *SizeChange) WaveSpeed(rho, bulk float64) float64 { return 0.0 }

func (o *SizeChange) MCoefficient(rho, bulk, g float64) float64 { return 0.0 }

func lambdaSizeChange(beta float64) float64 {
	return 1 + 0.622*(1-0.215*beta*beta-0.785*math.Pow(beta, 5))
}

func kContraction(beta float64) float64 {
	l := lambdaSizeChange(beta)
	return 0.0696*(1-beta*beta)*l*l + (l-1)*(l-1)
}

func kExpansion(beta float64) float64 {
	return (1 - beta*beta) * (1 - beta*beta)
}

// Resistance is self-contained with Δh: q>=0 flows from the Diameter side to
// the Beta-scaled side (a contraction when Beta<1, an expansion when
// Beta>1); q<0 reverses it and uses the Beta-scaled area (spec §4.3).
func (o *SizeChange) Resistance(q, dh, nu, g float64, step int) float64 {
	area := o.Area()
	var k float64
	if q >= 0 {
		if o.Beta < 1.0 {
			k = kContraction(o.Beta)
		} else {
			k = kExpansion(1 / o.Beta)
		}
	} else {
		area = area * o.Beta * o.Beta
		if o.Beta < 1.0 {
			k = kExpansion(o.Beta)
		} else {
			k = kContraction(1 / o.Beta)
		}
	}
	return -(k * q * math.Abs(q) / (2 * area)) + g*o.Area()*dh
}

func (o *SizeChange) DrDq(q, dh, nu, g float64, step int) float64 {
	return centralDiff(func(x float64) float64 { return o.Resistance(x, dh, nu, g, step) }, q)
}

func (o *SizeChange) DrDdh(q, dh, nu, g float64, step int) float64 { return g * o.Area() }

func (o *SizeChange) BCoefficient(g float64, step int) float64 { return 1.0 / (g * o.Area()) }

func (o *SizeChange) KLaminar(nu float64) float64 {
	length := 1.0 // the source leaves the laminar length as a TODO placeholder
	d := o.Diameter
	return math.Pi * pipeGravity * d * d * d * d / (128 * length * nu)
}

func (o *SizeChange) DarcyApprox(headLoss, g float64) float64 {
	length := 1.0
	f := 0.1
	a := o.Area()
	v := 2 * g * o.Diameter * a * a / (f * length * math.Abs(headLoss))
	if v < 0 || math.IsNaN(v) {
		return 1e-4
	}
	return math.Sqrt(v)
}

func (o *SizeChange) AddTransientValue(time float64, fromHead, toHead []float64) {
	o.MassFlow = append(o.MassFlow, o.MassFlow[len(o.MassFlow)-1])
}
