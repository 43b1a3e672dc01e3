package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/flownet/internal/numeric"
	"github.com/cpmech/flownet/internal/waterprop"
)

// Water is a fluid whose density, kinematic viscosity and bulk modulus are
// all derived from a temperature table rather than given as constants.
// Bulk modulus is rho*c^2 with rho and c interpolated at the same
// temperature (fluids/water.rs::bulk_modulus), not an independently
// settable field — this is what keeps the bulk=rho*c^2 invariant (spec §8)
// true by construction instead of by coincidence.
type Water struct {
	TemperatureK float64 `json:"temperature_k"`
	// Clamped records whether the last Init call clamped TemperatureK into
	// the tabulated range (spec §7: out-of-range temperature is clamped
	// silently, reported as a warning by the driver, not a hard failure).
	Clamped bool `json:"clamped"`
}

// NewWater returns water at 288.15 K (15 C), the source's default
// ("Assume the fluid is water at 15 degrees C & 1 bar").
func NewWater() *Water {
	return &Water{TemperatureK: 288.15}
}

// Init sets parameters by name, following the mreten.Model Init(prms) idiom.
// An out-of-range temperature is clamped to the tabulated bounds rather than
// rejected; Clamped is set so the driver can surface it as a warning.
func (o *Water) Init(prms fun.Prms) (err error) {
	*o = *NewWater()
	for _, p := range prms {
		switch p.N {
		case "temperature_k":
			o.TemperatureK = p.V
		default:
			return chk.Err("fluid/water: parameter named %q is unknown\n", p.N)
		}
	}
	lo, hi := waterprop.Temp[0], waterprop.Temp[len(waterprop.Temp)-1]
	o.Clamped = false
	if o.TemperatureK < lo {
		o.TemperatureK = lo
		o.Clamped = true
	} else if o.TemperatureK > hi {
		o.TemperatureK = hi
		o.Clamped = true
	}
	return
}

// Density interpolates the tabulated density at TemperatureK.
func (o *Water) Density() float64 {
	return numeric.Interpolate(o.TemperatureK, waterprop.Temp, waterprop.Rho)
}

// KinematicViscosity derives nu = mu/rho from the tabulated dynamic
// viscosity and density at TemperatureK.
func (o *Water) KinematicViscosity() float64 {
	mu := numeric.Interpolate(o.TemperatureK, waterprop.Temp, waterprop.Viscosity)
	return mu / o.Density()
}

// BulkModulus returns rho*c^2 with both interpolated at TemperatureK
// (fluids/water.rs::bulk_modulus), so it tracks Density/SpeedOfSound by
// construction rather than being stored independently.
func (o *Water) BulkModulus() float64 {
	c := o.SpeedOfSound()
	rho := o.Density()
	return rho * c * c
}

// SpeedOfSound interpolates the tabulated speed of sound at TemperatureK,
// an alternative route to wave speed the source exposes alongside the bulk
// modulus one (fluids/water.rs); flownet keeps the bulk-modulus route as the
// single source of truth for WaveSpeed and exposes this for callers that
// want the tabulated value directly.
func (o *Water) SpeedOfSound() float64 {
	return numeric.Interpolate(o.TemperatureK, waterprop.Temp, waterprop.Sound)
}

// ClampWarning reports whether Init clamped TemperatureK into the tabulated
// range, and the clamped value, so a caller (e.g. the cmd/flownet driver)
// can surface the solver.OutOfRangeTemperature condition as a warning
// rather than a failure (spec §7).
func (o *Water) ClampWarning() (bool, float64) { return o.Clamped, o.TemperatureK }

func init() {
	fluidAllocators["basic"] = func() interface{ Init(fun.Prms) error } { return NewBasic() }
	fluidAllocators["water"] = func() interface{ Init(fun.Prms) error } { return NewWater() }
}

// fluidAllocators is the factory registry for named fluid kinds.
var fluidAllocators = make(map[string]func() interface{ Init(fun.Prms) error })

// New builds a fluid of the named kind with default parameters, then
// applies prms (mirrors node.New/edge.New).
func New(kind string, prms fun.Prms) (Fluid, error) {
	alloc, ok := fluidAllocators[kind]
	if !ok {
		return nil, chk.Err("fluid: unknown kind %q\n", kind)
	}
	f := alloc()
	if err := f.Init(prms); err != nil {
		return nil, err
	}
	return f.(Fluid), nil
}
