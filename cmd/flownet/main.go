// Command flownet reads a network/fluid/solver JSON document, runs the
// steady solve and (optionally) the transient time-stepping loop, and
// prints a gofem-style progress and summary banner (grounded on
// fem/fem.go's onexit and main.go's flag-driven entry point; no mpi here,
// flownet is single-threaded per spec §5 Non-goals).
package main

import (
	"flag"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/flownet/config"
)

func main() {
	var err error
	defer func() {
		if r := recover(); r != nil {
			io.PfRed("ERROR: %v\n", r)
		}
		onexit(time.Now(), err)
	}()

	docPath := flag.String("doc", "", "path to the network/fluid/solver JSON document")
	transient := flag.Bool("transient", false, "run the transient loop after the steady solve")
	steps := flag.Int("steps", 0, "number of transient steps to run (0 = until tmax)")
	out := flag.String("out", "", "path to write the solved document back to (optional)")
	flag.Parse()

	started := time.Now()

	if *docPath == "" {
		io.PfRed("ERROR: -doc is required\n")
		return
	}

	io.PfWhite("\nflownet -- steady and transient fluid-network solver\n\n")

	doc, rerr := config.Read(*docPath)
	if rerr != nil {
		err = rerr
		return
	}

	g, f, berr := doc.Build()
	if berr != nil {
		err = berr
		return
	}

	s := &doc.Solver
	it, serr := s.SolveSteady(g, f, true)
	if serr != nil {
		err = serr
		return
	}
	io.Pf("> steady solve converged in %d iterations\n", it)

	if *transient {
		n := *steps
		if n == 0 {
			n = int(s.Tmax/s.Dt + 0.5)
		}
		for i := 0; i < n; i++ {
			it, terr := s.TimeStep(g, f)
			if terr != nil {
				err = terr
				return
			}
			io.Pf("> step %d (t=%g): converged in %d iterations\n", i+1, s.Tnodes[len(s.Tnodes)-1], it)
		}
	}

	if w, ok := f.(interface{ ClampWarning() (bool, float64) }); ok {
		if clamped, tK := w.ClampWarning(); clamped {
			io.PfYel("> warning: fluid temperature clamped to %g K (outside tabulated range)\n", tK)
		}
	}

	if *out != "" {
		if werr := config.Write(*out, doc); werr != nil {
			err = werr
			return
		}
		io.Pf("> wrote solved document to %s\n", *out)
	}

	io.Pf("> total time = %v\n", time.Now().Sub(started))
}

// onexit prints the final success/failure banner, matching fem.FEM.onexit's
// shape without the mpi/domain-cleanup machinery this single-graph CLI has
// no use for.
func onexit(start time.Time, err error) {
	if err == nil {
		io.PfGreen("> Success\n")
		return
	}
	io.PfRed("> Failed: %v\n", err)
	chk.Verbose = true
}
