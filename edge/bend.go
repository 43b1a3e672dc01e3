package edge

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/flownet/fluid"
	"github.com/cpmech/flownet/internal/numeric"
)

// Bend is a curved pipe section (spec §4.3).
type Bend struct {
	common
	Radius        float64 `json:"radius"`
	Diameter      float64 `json:"diameter"`
	Angle         float64 `json:"angle"`
	Roughness     float64 `json:"roughness"`
	Thickness     float64 `json:"thickness"`
	YoungsModulus float64 `json:"youngs_modulus"`
}

func init() {
	allocators["bend"] = func(id, from, to uint64) Edge { return NewBend(id, from, to) }
}

// NewBend returns a 90 degree, 52.5mm bend matching the source's defaults.
func NewBend(id, from, to uint64) *Bend {
	return &Bend{
		common:        newCommon(id, from, to),
		Radius:        52.5e-3,
		Diameter:      52.5e-3,
		Angle:         math.Pi / 2,
		Roughness:     0.05e-3,
		Thickness:     5.0e-3,
		YoungsModulus: 2.0e11,
	}
}

func (o *Bend) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "radius":
			o.Radius = p.V
		case "diameter":
			o.Diameter = p.V
		case "angle":
			o.Angle = p.V
		case "roughness":
			o.Roughness = p.V
		case "thickness":
			o.Thickness = p.V
		case "youngs_modulus":
			o.YoungsModulus = p.V
		}
	}
	return nil
}

func (o *Bend) Area() float64   { return math.Pi * o.Diameter * o.Diameter / 4.0 }
func (o *Bend) Length() float64 { return o.Radius * o.Angle }

func (o *Bend) WaveSpeed(rho, bulk float64) float64 {
	f := fluid.NewBasic()
	f.Rho, f.Bulk = rho, bulk
	return fluid.WaveSpeed(f, o.Diameter, o.Thickness, o.YoungsModulus)
}

func (o *Bend) MCoefficient(rho, bulk, g float64) float64 {
	a := o.WaveSpeed(rho, bulk)
	if a == 0 {
		return 0
	}
	return g * o.Area() * o.Length() / (2 * a * a)
}

func (o *Bend) frictionFactor(q, nu float64) float64 {
	re := math.Abs(q) * o.Diameter / (o.Area() * nu)
	return numeric.FrictionFactor(o.Roughness/o.Diameter, re)
}

// k implements the bend loss coefficient, the sum of a friction term, a
// curvature term and a secondary-flow term (spec §4.3).
func (o *Bend) k(q, nu float64) float64 {
	f := o.frictionFactor(q, nu)
	rd := o.Radius / o.Diameter
	s := math.Sin(o.Angle / 2)
	pow := math.Pow(rd, 4*o.Angle/math.Pi)
	return f*o.Angle*rd + (0.1+2.4*f)*s + 6.6*f*(math.Sqrt(s)+s)/pow
}

// Resistance carries no Δh term in the source; one is appended with unit
// coefficient to close the momentum equation (see DESIGN.md).
func (o *Bend) Resistance(q, dh, nu, g float64, step int) float64 {
	if q == 0 {
		return dh
	}
	k := o.k(q, nu)
	a := o.Area()
	return -k*q*math.Abs(q)/(2*g*a*a) + dh
}

func (o *Bend) DrDq(q, dh, nu, g float64, step int) float64 {
	return centralDiff(func(x float64) float64 { return o.Resistance(x, dh, nu, g, step) }, q)
}

func (o *Bend) DrDdh(q, dh, nu, g float64, step int) float64 { return 1.0 }

func (o *Bend) BCoefficient(g float64, step int) float64 {
	return o.Length() / (g * o.Area())
}

func (o *Bend) KLaminar(nu float64) float64 {
	d := o.Diameter
	return math.Pi * pipeGravity * d * d * d * d / (128 * o.Length() * nu)
}

func (o *Bend) DarcyApprox(headLoss, g float64) float64 {
	f := 0.1
	a := o.Area()
	v := 2 * g * o.Diameter * a * a / (f * o.Length() * math.Abs(headLoss))
	if v < 0 || math.IsNaN(v) {
		return 1e-4
	}
	return math.Sqrt(v)
}

func (o *Bend) AddTransientValue(time float64, fromHead, toHead []float64) {
	o.MassFlow = append(o.MassFlow, o.MassFlow[len(o.MassFlow)-1])
}
