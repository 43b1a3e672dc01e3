package node

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/flownet/event"
)

// Pressure is a pressure-boundary node: its head is prescribed and its
// consumption is solved (spec §3).
type Pressure struct {
	common
}

func init() {
	allocators["pressure"] = func(id uint64) Node { return NewPressure(id) }
}

// NewPressure returns a pressure boundary at atmospheric pressure, zero
// consumption, zero elevation.
func NewPressure(id uint64) *Pressure {
	return &Pressure{common: newCommon(id, AtmosphericPressure, 0.0)}
}

// NewPressureWithValue returns a pressure boundary at the given pressure.
func NewPressureWithValue(id uint64, value float64) *Pressure {
	p := NewPressure(id)
	p.Pressure[0] = value
	return p
}

// Init applies named parameters: elevation, pressure.
func (o *Pressure) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "elevation":
			o.Elev = p.V
		case "pressure":
			o.Pressure[0] = p.V
		}
	}
	return nil
}

func (o *Pressure) IsKnownPressure() bool { return true }
func (o *Pressure) IsKnownFlow() bool     { return false }
func (o *Pressure) IsConnection() bool    { return false }
func (o *Pressure) IsTank() bool          { return false }

func (o *Pressure) Head(step int, rho, g float64) float64 {
	return o.Elev + o.Pressure[step]/(rho*g)
}

// AddTransientValue appends the next scheduled pressure: the last event's
// evaluation wins (event.Apply), or the steady value repeats if there are
// no events (spec §4.4).
func (o *Pressure) AddTransientValue(time float64) {
	steady := o.Pressure[0]
	v := event.Apply(o.Events, time, steady, event.OpenPercent)
	if len(o.Events) == 0 {
		v = o.Pressure[len(o.Pressure)-1]
	}
	o.Pressure = append(o.Pressure, v)
	o.Consumption = append(o.Consumption, o.Consumption[0])
}

// AddBoundaryValue schedules an instantaneous pressure change at t=value's
// index-0 interpretation is host-defined; flownet treats it as pushing an
// InstantaneousChange event at time=0 with the given target pressure,
// matching Graph::add_boundary_value's single-value contract (spec §6).
func (o *Pressure) AddBoundaryValue(value float64) {
	o.Events = append(o.Events, event.InstantaneousChange{Value: value, TEvent: 0})
}
