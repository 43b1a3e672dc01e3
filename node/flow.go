package node

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/flownet/event"
)

// Flow is a flow-boundary node: its consumption is prescribed (driven) and
// its head is solved (spec §3).
type Flow struct {
	common
}

func init() {
	allocators["flow"] = func(id uint64) Node { return NewFlow(id) }
}

// NewFlow returns a flow boundary drawing 0.1 kg/s by default (matching the
// source's -0.1 default consumption).
func NewFlow(id uint64) *Flow {
	return &Flow{common: newCommon(id, AtmosphericPressure, -0.1)}
}

// NewFlowWithValue returns a flow boundary with the given steady consumption.
func NewFlowWithValue(id uint64, value float64) *Flow {
	f := NewFlow(id)
	f.Consumption[0] = value
	return f
}

// Init applies named parameters: elevation, consumption.
func (o *Flow) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "elevation":
			o.Elev = p.V
		case "consumption":
			o.Consumption[0] = p.V
		}
	}
	return nil
}

func (o *Flow) IsKnownPressure() bool { return false }
func (o *Flow) IsKnownFlow() bool     { return true }
func (o *Flow) IsConnection() bool    { return false }
func (o *Flow) IsTank() bool          { return false }

func (o *Flow) Head(step int, rho, g float64) float64 {
	return o.Elev + o.Pressure[step]/(rho*g)
}

// AddTransientValue appends the next scheduled consumption (spec §4.4: a
// Flow node's event stream drives consumption, not pressure).
func (o *Flow) AddTransientValue(time float64) {
	steady := o.Consumption[0]
	v := event.Apply(o.Events, time, steady, event.OpenPercent)
	if len(o.Events) == 0 {
		v = o.Consumption[len(o.Consumption)-1]
	}
	o.Consumption = append(o.Consumption, v)
	o.Pressure = append(o.Pressure, o.Pressure[0])
}

func (o *Flow) AddBoundaryValue(value float64) {
	o.Events = append(o.Events, event.InstantaneousChange{Value: value, TEvent: 0})
}
