// Package numeric holds the small numerical helpers shared by the edge
// constitutive laws and the laminar warm-start: the Colebrook-region
// friction factor, 1-D linear interpolation/extrapolation over a table,
// and min/max over a history slice. None of these have a gosl counterpart
// (see DESIGN.md) so they are plain stdlib math, exactly as the source
// engine's own `utility` module was a thin, dependency-free layer.
package numeric

import "math"

// FrictionFactor returns the Darcy friction factor for relative roughness
// eps/D and Reynolds number re:
//
//	re < 2100            : laminar, f = 64/re
//	re > 3000             : Praks-Brkic explicit approximation to Colebrook-White
//	2100 <= re <= 3000  : Churchill-style blend of the two branches
func FrictionFactor(relative, reynolds float64) float64 {
	switch {
	case reynolds < 2100.0:
		return 64.0 / reynolds
	case reynolds > 3000.0:
		a := reynolds * relative / 8.0897
		b := math.Log(reynolds) - 0.779626
		x := a + b
		c := math.Log(x)
		k := 0.8685972 * (b - c + (c / (x - 0.5588*c + 1.2079)))
		return 1.0 / (k * k)
	default:
		k1 := math.Pow(64.0/reynolds, 12)
		cc := 1.0 / ((0.833*math.Pow(reynolds, 1.282)/math.Pow(reynolds, 1.007)) + (0.27 * relative) + (110.0 * relative / reynolds))
		a := 0.8687 * math.Log(math.Pow(cc, 16))
		b := math.Pow(13269.0/reynolds, 16)
		k2 := math.Pow(a+b, -1.5)
		return math.Pow(k1+k2, 0.08333333333)
	}
}

// Interpolate performs 1-D linear interpolation of y_data(x_data) at x,
// bracketing by linear scan and extrapolating linearly beyond the table's
// ends using the outer segment's slope (not clamped).
func Interpolate(x float64, xData, yData []float64) float64 {
	n := len(xData)
	i := 1
	for i < n-1 && x > xData[i] {
		i++
	}
	x1, x2 := xData[i-1], xData[i]
	y1, y2 := yData[i-1], yData[i]
	slope := (y2 - y1) / (x2 - x1)
	return y1 + slope*(x-x1)
}

// Split separates a table of (x, y) pairs into two parallel slices.
func Split(pairs [][2]float64) (xs, ys []float64) {
	xs = make([]float64, len(pairs))
	ys = make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p[0]
		ys[i] = p[1]
	}
	return
}

// MaxValue returns the largest entry of values.
func MaxValue(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// MinValue returns the smallest entry of values.
func MinValue(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// CentralDiff returns the central-difference derivative of fcn at x with
// step h=1e-8, the fallback spec §4.3/§9 requires when an edge kind has no
// analytic drdq; grounded on num.DerivCen's call shape
// (mdl/solid/driver.go, msolid/driver.go, mdl/porous/driver.go) but
// implemented locally since flownet's resistance laws are plain
// float64->float64 functions rather than the driver's stress-update
// closures gosl's DerivCen targets.
func CentralDiff(fcn func(x float64) float64, x float64) float64 {
	const h = 1.0e-8
	return (fcn(x+h) - fcn(x-h)) / (2.0 * h)
}
