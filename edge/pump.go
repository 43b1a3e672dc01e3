package edge

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/flownet/event"
	"github.com/cpmech/flownet/fluid"
	"github.com/cpmech/flownet/internal/numeric"
)

// suterPoint is one (angle in degrees, dimensionless factor) sample of a
// four-quadrant Suter characteristic curve.
type suterPoint struct {
	deg, val float64
}

// defaultHeadCurve and defaultTorqueCurve are the standard four-quadrant
// Suter pump characteristic at 5-degree resolution (73 points),
// N_s = 0.46 (Chaudhry p. 523-24), transcribed verbatim from
// edges/pump.rs's default_head_data()/default_torque_data().
var defaultHeadCurve = []suterPoint{
	{0, -0.55}, {5, -0.48}, {10, -0.38}, {15, -0.27}, {20, -0.17},
	{25, -0.09}, {30, 0.06}, {35, 0.22}, {40, 0.37}, {45, 0.50},
	{50, 0.64}, {55, 0.78}, {60, 0.91}, {65, 1.03}, {70, 1.13},
	{75, 1.21}, {80, 1.27}, {85, 1.33}, {90, 1.35}, {95, 1.36},
	{100, 1.34}, {105, 1.31}, {110, 1.28}, {115, 1.22}, {120, 1.17},
	{125, 1.13}, {130, 1.09}, {135, 1.04}, {140, 0.99}, {145, 0.96},
	{150, 0.91}, {155, 0.89}, {160, 0.85}, {165, 0.82}, {170, 0.79},
	{175, 0.75}, {180, 0.71}, {185, 0.68}, {190, 0.65}, {195, 0.61},
	{200, 0.58}, {205, 0.55}, {210, 0.54}, {215, 0.53}, {220, 0.52},
	{225, 0.52}, {230, 0.53}, {235, 0.55}, {240, 0.57}, {245, 0.59},
	{250, 0.61}, {255, 0.63}, {260, 0.64}, {265, 0.66}, {270, 0.66},
	{275, 0.62}, {280, 0.51}, {285, 0.32}, {290, 0.23}, {295, 0.11},
	{300, -0.20}, {305, -0.31}, {310, -0.39}, {315, -0.47}, {320, -0.53},
	{325, -0.59}, {330, -0.64}, {335, -0.66}, {340, -0.68}, {345, -0.67},
	{350, -0.66}, {355, -0.61}, {360, -0.55},
}

var defaultTorqueCurve = []suterPoint{
	{0, -0.43}, {5, -0.26}, {10, -0.11}, {15, -0.05}, {20, 0.04},
	{25, 0.14}, {30, 0.25}, {35, 0.34}, {40, 0.42}, {45, 0.50},
	{50, 0.55}, {55, 0.59}, {60, 0.61}, {65, 0.61}, {70, 0.60},
	{75, 0.58}, {80, 0.55}, {85, 0.50}, {90, 0.44}, {95, 0.41},
	{100, 0.37}, {105, 0.35}, {110, 0.34}, {115, 0.34}, {120, 0.36},
	{125, 0.40}, {130, 0.47}, {135, 0.54}, {140, 0.62}, {145, 0.70},
	{150, 0.77}, {155, 0.82}, {160, 0.86}, {165, 0.89}, {170, 0.91},
	{175, 0.90}, {180, 0.88}, {185, 0.85}, {190, 0.82}, {195, 0.74},
	{200, 0.67}, {205, 0.59}, {210, 0.50}, {215, 0.42}, {220, 0.33},
	{225, 0.24}, {230, 0.16}, {235, 0.07}, {240, 0.01}, {245, -0.12},
	{250, -0.21}, {255, -0.22}, {260, -0.35}, {265, -0.51}, {270, -0.68},
	{275, -0.85}, {280, -1.02}, {285, -1.21}, {290, -1.33}, {295, -1.44},
	{300, -1.56}, {305, -1.65}, {310, -1.67}, {315, -1.67}, {320, -1.63},
	{325, -1.56}, {330, -1.44}, {335, -1.33}, {340, -1.18}, {345, -1.00},
	{350, -0.83}, {355, -0.64}, {360, -0.43},
}

func suterToRadians(pts []suterPoint) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.deg * math.Pi / 180.0
		ys[i] = p.val
	}
	return
}

// Pump is a centrifugal pump driven by a four-quadrant Suter curve and a
// rated point used to non-dimensionalise flow, head and speed
// (edges/pump.rs).
type Pump struct {
	common
	HeadTheta     []float64 `json:"head_theta"`
	HeadFactor    []float64 `json:"head_factor"`
	TorqueTheta   []float64 `json:"torque_theta"`
	TorqueFactor  []float64 `json:"torque_factor"`
	QRated        float64   `json:"q_rated"`
	HRated        float64   `json:"h_rated"`
	NRated        float64   `json:"n_rated"`
	Diameter      float64   `json:"diameter"`
	Speed         []float64 `json:"speed"`
	Thickness     float64   `json:"thickness"`
	YoungsModulus float64   `json:"youngs_modulus"`
}

func init() {
	allocators["pump"] = func(id, from, to uint64) Edge { return NewPump(id, from, to) }
}

func NewPump(id, from, to uint64) *Pump {
	ht, hf := suterToRadians(defaultHeadCurve)
	tt, tf := suterToRadians(defaultTorqueCurve)
	return &Pump{
		common:        newCommon(id, from, to),
		HeadTheta:     ht,
		HeadFactor:    hf,
		TorqueTheta:   tt,
		TorqueFactor:  tf,
		QRated:        600.0 / 3600.0,
		HRated:        330.0,
		NRated:        11300.0,
		Diameter:      163e-3,
		Speed:         []float64{11300.0},
		Thickness:     5e-3,
		YoungsModulus: 2e11,
	}
}

func (o *Pump) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "q_rated":
			o.QRated = p.V
		case "h_rated":
			o.HRated = p.V
		case "n_rated":
			o.NRated = p.V
		case "diameter":
			o.Diameter = p.V
		case "speed":
			o.Speed[0] = p.V
		case "thickness":
			o.Thickness = p.V
		case "youngs_modulus":
			o.YoungsModulus = p.V
		}
	}
	return nil
}

func (o *Pump) Area() float64   { return math.Pi * o.Diameter * o.Diameter / 4.0 }
func (o *Pump) Length() float64 { return 0.0 }

func (o *Pump) WaveSpeed(rho, bulk float64) float64 {
	f := fluid.NewBasic()
	f.Rho, f.Bulk = rho, bulk
	return fluid.WaveSpeed(f, o.Diameter, o.Thickness, o.YoungsModulus)
}

func (o *Pump) MCoefficient(rho, bulk, g float64) float64 { return 0.0 }

func (o *Pump) speedRatio(step int) float64 {
	s := o.Speed[0]
	if step < len(o.Speed) {
		s = o.Speed[step]
	}
	return s / o.NRated
}

// theta maps (n, q) into [0, 2*pi).
func (o *Pump) theta(n, q float64) float64 {
	t := math.Atan2(n, q)
	if t < 0 {
		t += 2 * math.Pi
	}
	return t
}

func (o *Pump) fh(theta float64) float64 {
	return numeric.Interpolate(theta, o.HeadTheta, o.HeadFactor)
}

// Resistance has no Δh term in the source; one is appended with unit
// coefficient (see DESIGN.md).
func (o *Pump) Resistance(q, dh, nu, g float64, step int) float64 {
	qn := q / o.QRated
	n := o.speedRatio(step)
	theta := o.theta(n, qn)
	r := o.HRated * (n*n + qn*qn) * o.fh(theta)
	return r + dh
}

func (o *Pump) DrDq(q, dh, nu, g float64, step int) float64 {
	return centralDiff(func(x float64) float64 { return o.Resistance(x, dh, nu, g, step) }, q)
}

func (o *Pump) DrDdh(q, dh, nu, g float64, step int) float64 { return 1.0 }

func (o *Pump) BCoefficient(g float64, step int) float64 {
	if o.Area() == 0 {
		return 0
	}
	return 1.0 / (g * o.Area())
}

func (o *Pump) KLaminar(nu float64) float64 { return -o.QRated / o.HRated }

// DarcyApprox recovers a flow estimate from a head loss by solving the
// quadratic expansion of Resistance around q=0, using a numerical first
// and second derivative (source's delta=1e-8 approach).
func (o *Pump) DarcyApprox(headLoss, g float64) float64 {
	const delta = 1e-8
	r0 := o.Resistance(0, 0, 0, g, 0)
	rp := o.Resistance(delta, 0, 0, g, 0)
	rm := o.Resistance(-delta, 0, 0, g, 0)
	rd := (rp - rm) / (2 * delta)
	rdd := (rp - 2*r0 + rm) / (delta * delta)
	if rdd == 0 {
		return 1e-4
	}
	disc := rd*rd - 4*rdd*(r0-headLoss)
	if disc < 0 {
		return 1e-4
	}
	x := (-rd + math.Sqrt(disc)) / (2 * rdd)
	if math.IsNaN(x) {
		return 1e-4
	}
	return x
}

// AddTransientValue advances Speed by events, or repeats the last value if
// none (spec §4.4).
func (o *Pump) AddTransientValue(time float64, fromPressure, toPressure []float64) {
	steady := o.Speed[0]
	v := event.Apply(o.Events, time, steady, event.PumpSpeed)
	if len(o.Events) == 0 {
		v = o.Speed[len(o.Speed)-1]
	}
	o.Speed = append(o.Speed, v)
	o.MassFlow = append(o.MassFlow, o.MassFlow[len(o.MassFlow)-1])
}

// Reset truncates the speed history alongside mass flow.
func (o *Pump) Reset() {
	o.common.Reset()
	o.Speed = []float64{o.Speed[0]}
}
