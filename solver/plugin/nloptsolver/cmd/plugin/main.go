// Command plugin is the Go plugin shim for nloptsolver: built with
// `go build -buildmode=plugin`, it exports the four ABI symbols
// spec.md §6 requires of a backend artifact. It is intentionally thin;
// all solver logic lives in the importable nloptsolver package so
// ordinary (non-plugin) code can use it directly too.
package main

import (
	"github.com/roboptim/core-go/problem"
	"github.com/roboptim/core-go/solver"
	"github.com/roboptim/core-go/solver/plugin/nloptsolver"
)

// GetSizeOfProblem reports the problem fingerprint this plugin was
// built with: the value of compiledFingerprint.
func GetSizeOfProblem() string {
	return compiledFingerprint
}

// compiledFingerprint is empty unless set at build time with
// `-ldflags -X main.compiledFingerprint=...`; it is a variable (not a
// constant) so one source tree can build plugins that report different
// fingerprints.
var compiledFingerprint = ""

// GetTypeIdOfConstraintsList reports this backend's constraint-family
// identifier.
func GetTypeIdOfConstraintsList() string {
	return nloptsolver.FamilyID
}

// Create constructs a solver bound to p.
func Create(p *problem.Problem) (solver.Solver, error) {
	return nloptsolver.New(p)
}

// Destroy is a no-op beyond satisfying the ABI: the Go solver has no
// external resources to release (NLopt's optimizer object is already
// destroyed inside Solve via a deferred call).
func Destroy(solver.Solver) {}
