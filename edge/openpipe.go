package edge

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// OpenPipe is a fixed-loss-coefficient orifice to atmosphere (spec §4.3).
type OpenPipe struct {
	common
	Diameter float64 `json:"diameter"`
	K        float64 `json:"k"`
}

func init() {
	allocators["open_pipe"] = func(id, from, to uint64) Edge { return NewOpenPipe(id, from, to) }
}

func NewOpenPipe(id, from, to uint64) *OpenPipe {
	return &OpenPipe{common: newCommon(id, from, to), Diameter: 52.5e-3, K: 1.0}
}

func (o *OpenPipe) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "diameter":
			o.Diameter = p.V
		case "k":
			o.K = p.V
		}
	}
	return nil
}

func (o *OpenPipe) Area() float64                      { return math.Pi * o.Diameter * o.Diameter / 4.0 }
func (o *OpenPipe) Length() float64                    { return 0.0 }
func (o *OpenPipe) WaveSpeed(rho, bulk float64) float64 { return 0.0 }

func (o *OpenPipe) MCoefficient(rho, bulk, g float64) float64 { return 0.0 }

func (o *OpenPipe) Resistance(q, dh, nu, g float64, step int) float64 {
	area := o.Area()
	return -(o.K * q * math.Abs(q) / (2 * area)) + g*area*dh
}

func (o *OpenPipe) DrDq(q, dh, nu, g float64, step int) float64 {
	return -o.K * math.Abs(q) / o.Area()
}

func (o *OpenPipe) DrDdh(q, dh, nu, g float64, step int) float64 { return g * o.Area() }

func (o *OpenPipe) BCoefficient(g float64, step int) float64 { return 1.0 / (g * o.Area()) }

func (o *OpenPipe) KLaminar(nu float64) float64 {
	length := 1.0
	d := o.Diameter
	return math.Pi * pipeGravity * d * d * d * d / (128 * length * nu)
}

func (o *OpenPipe) DarcyApprox(headLoss, g float64) float64 {
	length := 1.0
	f := 0.1
	a := o.Area()
	v := 2 * g * o.Diameter * a * a / (f * length * math.Abs(headLoss))
	if v < 0 || math.IsNaN(v) {
		return 1e-4
	}
	return math.Sqrt(v)
}

func (o *OpenPipe) AddTransientValue(time float64, fromHead, toHead []float64) {
	o.MassFlow = append(o.MassFlow, o.MassFlow[len(o.MassFlow)-1])
}
