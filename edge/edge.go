// Package edge implements the eleven edge kinds of a fluid network: Pipe,
// Bend, SizeChange, OpenPipe, Generic, Valve, CheckValve, SafetyValve,
// ReliefValve, BurstingDisk and Pump. Every kind exposes a uniform
// Resistance(q, dh, nu, g, step) residual and a DrDdh coefficient so the
// solver's Jacobian assembly never special-cases a kind (spec §4.3, §9).
package edge

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/flownet/event"
)

// Edge is implemented by every edge kind.
type Edge interface {
	Id() uint64
	From() uint64
	To() uint64

	// Area returns the edge's characteristic cross-sectional area [m^2].
	Area() float64
	// Length returns the edge's characteristic length [m], or 0 when the
	// kind has none (size changes, open pipes, generic, valves).
	Length() float64
	// WaveSpeed returns the pressure-wave speed used to build M_diag, or
	// 0 for kinds whose wave speed is not modelled (spec §9).
	WaveSpeed(rho, bulk float64) float64
	// MCoefficient returns g*A*L/(2*a^2), the per-edge lumped-capacitance
	// coefficient used to assemble D_diag (spec §4.6); 0 for kinds with
	// no wave speed (no pressure storage modelled).
	MCoefficient(rho, bulk, g float64) float64

	// Resistance returns the complete momentum residual r(q, dh) for the
	// current step, including the closing Δh term (spec §4.3, adapted
	// per the uniform-signature decision recorded in DESIGN.md).
	Resistance(q, dh, nu, g float64, step int) float64
	// DrDq returns ∂r/∂q, analytic where available, central-difference
	// otherwise.
	DrDq(q, dh, nu, g float64, step int) float64
	// DrDdh returns ∂r/∂Δh, the coefficient that replaces the Jacobian's
	// literal "-K" block entry for this edge (spec §9).
	DrDdh(q, dh, nu, g float64, step int) float64
	// BCoefficient returns the inertance coefficient used to build
	// B_diag (spec §4.6); most kinds use L/(g*A) or 1/(g*A), but the
	// valve kinds return their inverse loss coefficient instead
	// (invK(step), or InvKOpen for CheckValve).
	BCoefficient(g float64, step int) float64
	// KLaminar returns the linearised conductance used by the laminar
	// warm-start (spec §4.8).
	KLaminar(nu float64) float64
	// DarcyApprox recovers a flow estimate from a head loss, used by the
	// laminar warm-start's flow-recovery step.
	DarcyApprox(headLoss, g float64) float64

	MassFlowAt(step int) float64
	Steps() int
	PushMassFlow(v float64)
	SetSteadyMassFlow(v float64)

	// AddTransientValue advances any event-driven internal state (valve
	// openings, pump speed, relief/safety/bursting thresholds) by one
	// step (spec §4.4). fromPressure/toPressure are the endpoint nodes'
	// pressure histories [Pa], needed by the pressure-activated valve
	// kinds; most kinds ignore them.
	AddTransientValue(time float64, fromPressure, toPressure []float64)

	Reset()
}

// common holds the fields shared by every edge kind.
type common struct {
	ID       uint64        `json:"id"`
	From_    uint64        `json:"from"`
	To_      uint64        `json:"to"`
	MassFlow []float64     `json:"mass_flow"`
	Events   []event.Event `json:"events,omitempty"`
	Width    float32       `json:"width"`
	Selected bool          `json:"selected"`
}

func newCommon(id, from, to uint64) common {
	return common{ID: id, From_: from, To_: to, MassFlow: []float64{0.0}, Width: 10.0}
}

func (c *common) Id() uint64   { return c.ID }
func (c *common) From() uint64 { return c.From_ }
func (c *common) To() uint64   { return c.To_ }

func (c *common) MassFlowAt(step int) float64 { return c.MassFlow[step] }
func (c *common) Steps() int                  { return len(c.MassFlow) }
func (c *common) PushMassFlow(v float64)      { c.MassFlow = append(c.MassFlow, v) }
func (c *common) SetSteadyMassFlow(v float64) { c.MassFlow[0] = v }
func (c *common) Reset()                      { c.MassFlow = []float64{c.MassFlow[0]} }

// centralDiff wraps gosl/num.DerivCen for the fallback ∂r/∂q computation
// used by kinds whose resistance law is not worth differentiating by hand
// (matches mdl/solid.driver's use of num.DerivCen for consistency checks).
func centralDiff(fcn func(q float64) float64, q0 float64) float64 {
	return num.DerivCen(func(x float64, args ...interface{}) (res float64) {
		res = fcn(x)
		return
	}, q0)
}

// allocators is the factory registry for named edge kinds.
var allocators = make(map[string]func(id, from, to uint64) Edge)

// New builds an edge of the named kind with default parameters, then
// applies prms.
func New(kind string, id, from, to uint64, prms fun.Prms) (Edge, error) {
	alloc, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("edge: unknown kind %q\n", kind)
	}
	e := alloc(id, from, to)
	if initer, ok := e.(interface{ Init(fun.Prms) error }); ok {
		if err := initer.Init(prms); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func signedSquare(q float64) float64 { return q * math.Abs(q) }
