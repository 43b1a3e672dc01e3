package edge

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_checkvalve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("checkvalve01")

	cv := NewCheckValve(0, 0, 1)

	// forward flow behaves as a nominal valve.
	chk.Scalar(tst, "invK(q>0)", 1e-15, cv.invK(1.0), cv.InvKOpen)

	// reverse flow shuts instantly (invK collapses to zero).
	chk.Scalar(tst, "invK(q<0)", 1e-15, cv.invK(-1.0), 0.0)

	r := cv.Resistance(-0.01, 5.0, 1e-6, 9.81, 0)
	area := cv.Area()
	expect := -signedSquare(-0.01) / (2 * area * area)
	chk.Scalar(tst, "shut check valve ignores dh", 1e-15, r, expect)
}
