package edge

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/flownet/fluid"
)

// BurstingDisk ruptures once and stays open forever after (sticky, unlike
// SafetyValve's reversible snap), matching edges/bursting_disk.rs.
type BurstingDisk struct {
	common
	Diameter      float64   `json:"diameter"`
	Thickness     float64   `json:"thickness"`
	YoungsModulus float64   `json:"youngs_modulus"`
	BurstDp       float64   `json:"burst_dp"`
	InvKClosed    float64   `json:"invk_closed"`
	InvKOpen      float64   `json:"invk_open"`
	OpenPercent   []float64 `json:"open_percent"`
}

func init() {
	allocators["bursting_disk"] = func(id, from, to uint64) Edge { return NewBurstingDisk(id, from, to) }
}

func NewBurstingDisk(id, from, to uint64) *BurstingDisk {
	return &BurstingDisk{
		common:        newCommon(id, from, to),
		Diameter:      52.5e-3,
		Thickness:     5.0e-3,
		YoungsModulus: 2.0e11,
		BurstDp:       1e6,
		InvKClosed:    0.0,
		InvKOpen:      1.0 / 0.25,
		OpenPercent:   []float64{0.0},
	}
}

func (o *BurstingDisk) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "diameter":
			o.Diameter = p.V
		case "thickness":
			o.Thickness = p.V
		case "youngs_modulus":
			o.YoungsModulus = p.V
		case "burst_dp":
			o.BurstDp = p.V
		}
	}
	return nil
}

func (o *BurstingDisk) Area() float64   { return math.Pi * o.Diameter * o.Diameter / 4.0 }
func (o *BurstingDisk) Length() float64 { return 0.0 }

func (o *BurstingDisk) WaveSpeed(rho, bulk float64) float64 {
	f := fluid.NewBasic()
	f.Rho, f.Bulk = rho, bulk
	return fluid.WaveSpeed(f, o.Diameter, o.Thickness, o.YoungsModulus)
}

func (o *BurstingDisk) MCoefficient(rho, bulk, g float64) float64 { return 0.0 }

func (o *BurstingDisk) invK(step int) float64 {
	op := o.OpenPercent[0]
	if step < len(o.OpenPercent) {
		op = o.OpenPercent[step]
	}
	if op < 1.0 {
		return o.InvKClosed
	}
	return o.InvKOpen
}

func (o *BurstingDisk) Resistance(q, dh, nu, g float64, step int) float64 {
	area := o.Area()
	return -signedSquare(q)/(2*area) + o.invK(step)*g*area*dh
}

func (o *BurstingDisk) DrDq(q, dh, nu, g float64, step int) float64 {
	return -math.Abs(q) / o.Area()
}

func (o *BurstingDisk) DrDdh(q, dh, nu, g float64, step int) float64 {
	return o.invK(step) * g * o.Area()
}

func (o *BurstingDisk) BCoefficient(g float64, step int) float64 { return o.invK(step) }

func (o *BurstingDisk) KLaminar(nu float64) float64 {
	if o.InvKClosed == 0 {
		return 1e-12
	}
	return 1.0 / o.InvKClosed
}

func (o *BurstingDisk) DarcyApprox(headLoss, g float64) float64 {
	v := math.Abs(headLoss) * o.InvKClosed
	if v <= 0 || math.IsNaN(v) {
		return 1e-4
	}
	return math.Sqrt(v)
}

// AddTransientValue latches open the first time dp exceeds BurstDp and
// never closes again afterward, matching the source's `||` with the
// previous open percentage.
func (o *BurstingDisk) AddTransientValue(time float64, fromPressure, toPressure []float64) {
	last := len(fromPressure) - 1
	dp := fromPressure[last] - toPressure[last]
	prevOpen := o.OpenPercent[len(o.OpenPercent)-1]
	op := 0.0
	if dp > o.BurstDp || prevOpen > 0.0 {
		op = 1.0
	}
	o.OpenPercent = append(o.OpenPercent, op)
	o.MassFlow = append(o.MassFlow, o.MassFlow[len(o.MassFlow)-1])
}

// Reset truncates the open-percentage history alongside mass flow.
func (o *BurstingDisk) Reset() {
	o.common.Reset()
	o.OpenPercent = []float64{o.OpenPercent[0]}
}
