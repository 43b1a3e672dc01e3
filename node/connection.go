package node

import "github.com/cpmech/gosl/fun"

// Connection is a junction node: both pressure and consumption are solved
// (spec §3). It carries no event stream — a connection is never a
// scheduled actuator.
type Connection struct {
	common
}

func init() {
	allocators["connection"] = func(id uint64) Node { return NewConnection(id) }
}

// NewConnection returns a junction at atmospheric pressure with zero
// consumption.
func NewConnection(id uint64) *Connection {
	return &Connection{common: newCommon(id, AtmosphericPressure, 0.0)}
}

// Init applies named parameters: elevation.
func (o *Connection) Init(prms fun.Prms) error {
	for _, p := range prms {
		if p.N == "elevation" {
			o.Elev = p.V
		}
	}
	return nil
}

func (o *Connection) IsKnownPressure() bool { return false }
func (o *Connection) IsKnownFlow() bool     { return false }
func (o *Connection) IsConnection() bool    { return true }
func (o *Connection) IsTank() bool          { return false }

func (o *Connection) Head(step int, rho, g float64) float64 {
	return o.Elev + o.Pressure[step]/(rho*g)
}

// AddTransientValue just repeats the steady consumption (a connection has
// no driven series of its own; its pressure/consumption are both solved
// each step).
func (o *Connection) AddTransientValue(time float64) {
	o.Pressure = append(o.Pressure, o.Pressure[len(o.Pressure)-1])
	o.Consumption = append(o.Consumption, o.Consumption[0])
}

func (o *Connection) AddBoundaryValue(value float64) {}
