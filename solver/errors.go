package solver

import "github.com/cpmech/gosl/chk"

// Kind enumerates the error conditions the solver can report (spec §7).
type Kind int

const (
	// EmptyNetwork: the graph has no nodes or no edges.
	EmptyNetwork Kind = iota
	// NotConverged: the Newton iteration hit MaxIter without meeting
	// Tolerance.
	NotConverged
	// NumericalFailure: the correction vector contained a NaN or Inf.
	NumericalFailure
	// MissingSteady: a transient step was requested before a steady
	// solution existed.
	MissingSteady
	// UnknownId: a node or edge id referenced by the caller is not part
	// of the network.
	UnknownId
	// OutOfRangeTemperature: a fluid lookup temperature fell outside the
	// tabulated water-property range.
	OutOfRangeTemperature
)

func (k Kind) String() string {
	switch k {
	case EmptyNetwork:
		return "EmptyNetwork"
	case NotConverged:
		return "NotConverged"
	case NumericalFailure:
		return "NumericalFailure"
	case MissingSteady:
		return "MissingSteady"
	case UnknownId:
		return "UnknownId"
	case OutOfRangeTemperature:
		return "OutOfRangeTemperature"
	default:
		return "Unknown"
	}
}

// Error is the solver's typed error, carrying the offending residual or
// iteration count where relevant (spec §7).
type Error struct {
	Kind     Kind
	Message  string
	Residual float64
	Iter     int
}

func (e *Error) Error() string {
	return chk.Err("solver: %s: %s (residual=%g, iter=%d)\n", e.Kind, e.Message, e.Residual, e.Iter).Error()
}

func newErr(kind Kind, msg string, residual float64, iter int) *Error {
	return &Error{Kind: kind, Message: msg, Residual: residual, Iter: iter}
}
