// Package node implements the four node kinds of a fluid network: pressure
// boundary, flow boundary, connection (junction) and tank. Every kind
// carries pressure and consumption history vectors whose index 0 is always
// the steady-state value (spec §3).
package node

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/flownet/event"
)

// Node is implemented by every node kind. The matrix assembler (graph,
// solver) only ever talks to nodes through this interface, keeping it
// oblivious to the concrete kind (spec §9 "visitor-style dispatch").
type Node interface {
	Id() uint64

	Elevation() float64

	// IsKnownPressure is true for a Pressure boundary: its head is
	// prescribed and the corresponding Newton row is pinned.
	IsKnownPressure() bool
	// IsKnownFlow is true for a Flow boundary: its consumption is
	// prescribed and its head is solved.
	IsKnownFlow() bool
	// IsConnection is true for a junction: both pressure and
	// consumption are solved.
	IsConnection() bool
	// IsTank is true for a Tank: like a pressure boundary, but whose
	// head is derived from the stored fluid level.
	IsTank() bool

	// PressureAt/ConsumptionAt read the history at a given step
	// (0 = steady).
	PressureAt(step int) float64
	ConsumptionAt(step int) float64
	Steps() int

	// PushPressure/PushConsumption append one sample (transient commit).
	PushPressure(v float64)
	PushConsumption(v float64)

	// SetSteadyPressure/SetSteadyConsumption overwrite index 0 (steady commit).
	SetSteadyPressure(v float64)
	SetSteadyConsumption(v float64)

	// Head returns elevation + p/(rho*g) at the given step for
	// Pressure/Connection nodes, or the tank-level-derived head for
	// Tank nodes (spec §3). Only meaningful for nodes where
	// IsKnownPressure()||IsTank() is true; used to pin the boundary row.
	Head(step int, rho, g float64) float64

	// AddTransientValue appends one value to every event-driven
	// history at the committed step (spec §4.4's node hook), using the
	// just-committed simulation time.
	AddTransientValue(time float64)

	// AddBoundaryValue records one externally supplied scheduled value
	// (spec §6 Graph::add_boundary_value); semantics depend on kind.
	AddBoundaryValue(value float64)

	// Reset truncates every history back to length 1 (the steady value).
	Reset()
}

// common holds the fields shared by every node kind.
type common struct {
	ID          uint64        `json:"id"`
	Elev        float64       `json:"elevation"`
	Pressure    []float64     `json:"pressure"`
	Consumption []float64     `json:"consumption"`
	Events      []event.Event `json:"events,omitempty"`
	R           float32       `json:"r"`
	Selected    bool          `json:"selected"`
}

func newCommon(id uint64, pressure0, consumption0 float64) common {
	return common{
		ID:          id,
		Pressure:    []float64{pressure0},
		Consumption: []float64{consumption0},
		R:           20.0,
	}
}

func (c *common) Id() uint64                      { return c.ID }
func (c *common) Elevation() float64               { return c.Elev }
func (c *common) PressureAt(step int) float64      { return c.Pressure[step] }
func (c *common) ConsumptionAt(step int) float64   { return c.Consumption[step] }
func (c *common) Steps() int                       { return len(c.Pressure) }
func (c *common) PushPressure(v float64)           { c.Pressure = append(c.Pressure, v) }
func (c *common) PushConsumption(v float64)        { c.Consumption = append(c.Consumption, v) }
func (c *common) SetSteadyPressure(v float64)      { c.Pressure[0] = v }
func (c *common) SetSteadyConsumption(v float64)   { c.Consumption[0] = v }
func (c *common) Reset() {
	c.Pressure = []float64{c.Pressure[0]}
	c.Consumption = []float64{c.Consumption[0]}
}

// AtmosphericPressure is the default boundary pressure [Pa], 101 325 Pa.
const AtmosphericPressure = 101325.0

// Gravity is the default acceleration due to gravity [m/s^2].
const Gravity = 9.80665

// allocators is the factory registry for named node kinds, following the
// mdl/solid.Model / mreten allocators[name] idiom.
var allocators = make(map[string]func(id uint64) Node)

// New builds a node of the named kind with default parameters, then applies
// prms (mirrors mreten's New(name)+Init(prms) pair).
func New(kind string, id uint64, prms fun.Prms) (Node, error) {
	alloc, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("node: unknown kind %q\n", kind)
	}
	n := alloc(id)
	if initer, ok := n.(interface{ Init(fun.Prms) error }); ok {
		if err := initer.Init(prms); err != nil {
			return nil, err
		}
	}
	return n, nil
}
