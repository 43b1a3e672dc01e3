// Package fluid describes the working fluid of a network: density, kinematic
// viscosity and bulk modulus, either as three constant scalars or as water
// properties interpolated from a temperature table.
package fluid

import "math"

// Fluid is implemented by every working-fluid kind. Density, kinematic
// viscosity and bulk modulus are the only quantities the graph/solver
// packages ever read from a fluid.
type Fluid interface {
	Density() float64
	KinematicViscosity() float64
	BulkModulus() float64
}

// SoundSpeed returns c = sqrt(K/rho) for any fluid, derived rather than stored.
func SoundSpeed(f Fluid) float64 {
	return math.Sqrt(f.BulkModulus() / f.Density())
}

// WaveSpeed returns the pressure-wave celerity in a thin-walled pipe of
// diameter D, wall thickness e and Young's modulus E carrying fluid f:
//
//	a = sqrt( (K/rho) / (1 + D*K/(e*E)) )
func WaveSpeed(f Fluid, diameter, thickness, youngsModulus float64) float64 {
	kOverRho := f.BulkModulus() / f.Density()
	dk := diameter * f.BulkModulus()
	te := thickness * youngsModulus
	return math.Sqrt(kOverRho / (1.0 + dk/te))
}
