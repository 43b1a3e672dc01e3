package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Basic is a fluid of three constant scalars: density, kinematic viscosity
// and bulk modulus. Defaults match the source's reference liquid.
type Basic struct {
	Rho  float64 `json:"rho"`  // density [kg/m^3]
	Nu   float64 `json:"nu"`   // kinematic viscosity [m^2/s]
	Bulk float64 `json:"bulk"` // bulk modulus [Pa]
}

// NewBasic returns the default basic fluid (rho=999.1, nu=1.1385e-6, K=2.15e9).
func NewBasic() *Basic {
	return &Basic{Rho: 999.1, Nu: 1.1385e-6, Bulk: 2.15e9}
}

// Init sets parameters by name, following the mreten.Model Init(prms) idiom.
func (o *Basic) Init(prms fun.Prms) (err error) {
	*o = *NewBasic()
	for _, p := range prms {
		switch p.N {
		case "rho":
			o.Rho = p.V
		case "nu":
			o.Nu = p.V
		case "bulk":
			o.Bulk = p.V
		default:
			return chk.Err("fluid/basic: parameter named %q is unknown\n", p.N)
		}
	}
	if o.Rho <= 0 || o.Nu <= 0 || o.Bulk <= 0 {
		return chk.Err("fluid/basic: rho, nu and bulk must all be positive\n")
	}
	return
}

func (o *Basic) Density() float64            { return o.Rho }
func (o *Basic) KinematicViscosity() float64  { return o.Nu }
func (o *Basic) BulkModulus() float64         { return o.Bulk }
