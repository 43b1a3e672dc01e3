package node

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// Tank behaves like a pressure boundary whose head is derived from a
// stored fluid level z, integrated from net inflow each transient step and
// clamped to [ZMin, ZMax] (spec §3, §9 — the level-integration equation is
// not realised in the retrieved source; this follows the spec's explicit
// resolution of that open question).
type Tank struct {
	common
	PAtm      float64   `json:"p_atm"`
	ZInit     float64   `json:"z_init"`
	ZMin      float64   `json:"z_min"`
	ZMax      float64   `json:"z_max"`
	Diameter  float64   `json:"diameter"`
	Z         []float64 `json:"z"`
	Saturated bool      `json:"saturated"`
}

func init() {
	allocators["tank"] = func(id uint64) Node { return NewTank(id, AtmosphericPressure, 1000.0, Gravity) }
}

// NewTank returns a tank half-full (z_init=0.5m) between 0 and 1m, 1m
// diameter, matching the source's Default::default().
func NewTank(id uint64, pAtm, rho, g float64) *Tank {
	zInit := 0.5
	p0 := pAtm + rho*g*zInit
	return &Tank{
		common:   newCommon(id, p0, 0.0),
		PAtm:     pAtm,
		ZInit:    zInit,
		ZMin:     0.0,
		ZMax:     1.0,
		Diameter: 1.0,
		Z:        []float64{zInit},
	}
}

// NewTankWithValues mirrors Tank::new_with_values.
func NewTankWithValues(id uint64, pAtm, rho, g, diameter, zInit, zMin, zMax float64) *Tank {
	p0 := pAtm + rho*g*zInit
	return &Tank{
		common:   newCommon(id, p0, 0.0),
		PAtm:     pAtm,
		ZInit:    zInit,
		ZMin:     zMin,
		ZMax:     zMax,
		Diameter: diameter,
		Z:        []float64{zInit},
	}
}

// Init applies named parameters: elevation, p_atm, z_init, z_min, z_max,
// diameter, rho, g. It always resets the level history to z_init and
// recomputes the steady pressure from it, using rho=1000 and g=Gravity
// unless rho/g are given.
func (o *Tank) Init(prms fun.Prms) error {
	rho, g := 1000.0, Gravity
	for _, p := range prms {
		switch p.N {
		case "elevation":
			o.Elev = p.V
		case "p_atm":
			o.PAtm = p.V
		case "z_init":
			o.ZInit = p.V
		case "z_min":
			o.ZMin = p.V
		case "z_max":
			o.ZMax = p.V
		case "diameter":
			o.Diameter = p.V
		case "rho":
			rho = p.V
		case "g":
			g = p.V
		}
	}
	o.Z = []float64{o.ZInit}
	o.Pressure[0] = o.PAtm + rho*g*o.ZInit
	return nil
}

// Area returns the tank's cross-sectional area, A = pi*d^2/4.
func (o *Tank) Area() float64 {
	return math.Pi * o.Diameter * o.Diameter / 4.0
}

func (o *Tank) IsKnownPressure() bool { return false }
func (o *Tank) IsKnownFlow() bool     { return false }
func (o *Tank) IsConnection() bool    { return false }
func (o *Tank) IsTank() bool          { return true }

func (o *Tank) Head(step int, rho, g float64) float64 {
	return o.Elev + o.Pressure[step]/(rho*g)
}

// AddTransientValue repeats the last committed level/pressure; the actual
// integration happens in AdvanceLevel, called by the graph once the
// previous step's converged flows are known (a tank's next head must be
// fixed before the Newton iteration that uses it as a boundary row, exactly
// like every other boundary kind's event hook).
func (o *Tank) AddTransientValue(time float64) {
	o.Pressure = append(o.Pressure, o.Pressure[len(o.Pressure)-1])
	o.Consumption = append(o.Consumption, o.Consumption[0])
	o.Z = append(o.Z, o.Z[len(o.Z)-1])
}

// AdvanceLevel integrates the tank level by the net inflow qNet [m^3/s]
// over dt, clamps to [ZMin, ZMax] recording saturation, and rewrites the
// just-appended pressure sample accordingly. Must be called after
// AddTransientValue and before the step's Newton iteration.
func (o *Tank) AdvanceLevel(qNet, dt, rho, g float64) {
	last := len(o.Z) - 1
	z := o.Z[last-1] + (qNet/o.Area())*dt
	o.Saturated = false
	if z < o.ZMin {
		z = o.ZMin
		o.Saturated = true
	} else if z > o.ZMax {
		z = o.ZMax
		o.Saturated = true
	}
	o.Z[last] = z
	o.Pressure[last] = o.PAtm + rho*g*z
}

func (o *Tank) AddBoundaryValue(value float64) {
	o.ZInit = value
	o.Z[0] = value
}

// Reset truncates the level history alongside pressure/consumption.
func (o *Tank) Reset() {
	o.common.Reset()
	o.Z = []float64{o.Z[0]}
	o.Saturated = false
}
