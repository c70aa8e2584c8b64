// Package plugin implements the Plugin ABI loader of spec.md §4.4 and
// §6: dynamic dispatch from a problem to a backend shared artifact,
// using Go's standard `plugin` package as the direct analogue of the
// original's dlopen/dlsym-based factory (no example repo in the
// retrieval pack ships a shared-object plugin loader; this is the one
// ambient concern the corpus offers no library for, so the stdlib
// `plugin` package is used directly — see DESIGN.md).
package plugin

import (
	goplugin "plugin"

	"github.com/pkg/errors"

	"github.com/roboptim/core-go/problem"
	"github.com/roboptim/core-go/solver"
)

// Fingerprinter is implemented by the caller's problem: it reports an
// identity string the loader compares against the plugin's own report
// of the problem type it was compiled against. This substitutes for the
// C++ ABI's `sizeof(problem_t)` comparison, since Go plugins share no
// stable struct layout across the shared-object boundary (spec.md §6,
// Open Question decision recorded in DESIGN.md).
type Fingerprinter interface {
	ProblemFingerprint() string
}

// Symbol names a compliant backend artifact must export with C-style
// exported identifiers (Go plugin symbols are exported Go identifiers,
// not C-linkage symbols, but play the same role).
const (
	SymbolGetSizeOfProblem          = "GetSizeOfProblem"
	SymbolGetTypeIdOfConstraintsList = "GetTypeIdOfConstraintsList"
	SymbolCreate                    = "Create"
	SymbolDestroy                   = "Destroy"
)

// ErrFingerprintMismatch is returned when the plugin's reported problem
// fingerprint does not exactly match the caller's.
var ErrFingerprintMismatch = errors.New("plugin: problem fingerprint mismatch")

// ErrConstraintFamilyMismatch is returned when the plugin's reported
// constraint-family identifier does not exactly match the caller's.
var ErrConstraintFamilyMismatch = errors.New("plugin: constraint family identifier mismatch")

// Handle is the caller-held handle to a loaded backend: destroying it
// tears down the solver and releases the loaded artifact's create/
// destroy pair (spec.md §5 "plugin handles acquired by the factory are
// released when the factory's returned handle is destroyed"). Go's
// plugin package has no unload primitive; the artifact itself stays
// mapped for the process lifetime, but the solver instance it produced
// is destroyed exactly once.
type Handle[T solver.Solver] struct {
	solv    T
	destroy func(solver.Solver)
	closed  bool
}

// Solver returns the loaded, typed solver handle.
func (h *Handle[T]) Solver() T { return h.solv }

// Close tears down the solver by invoking the plugin's Destroy exactly
// once. Calling Close more than once is a no-op.
func (h *Handle[T]) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.destroy(h.solv)
	return nil
}

// Load opens the shared artifact at path, verifies its reported problem
// fingerprint and constraint-family identifier exactly match caller and
// familyID, constructs a solver bound to prob, and returns a Handle.
// Mismatch on either check is a hard error: the factory refuses to
// instantiate and leaves no handle behind (spec.md §4.4).
func Load[T solver.Solver](path string, caller Fingerprinter, familyID string, prob *problem.Problem) (*Handle[T], error) {
	plug, err := goplugin.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "plugin: opening %s", path)
	}

	sizeSym, err := plug.Lookup(SymbolGetSizeOfProblem)
	if err != nil {
		return nil, errors.Wrapf(err, "plugin: missing %s", SymbolGetSizeOfProblem)
	}
	getSize, ok := sizeSym.(func() string)
	if !ok {
		return nil, errors.Errorf("plugin: %s has unexpected signature", SymbolGetSizeOfProblem)
	}

	typeSym, err := plug.Lookup(SymbolGetTypeIdOfConstraintsList)
	if err != nil {
		return nil, errors.Wrapf(err, "plugin: missing %s", SymbolGetTypeIdOfConstraintsList)
	}
	getFamily, ok := typeSym.(func() string)
	if !ok {
		return nil, errors.Errorf("plugin: %s has unexpected signature", SymbolGetTypeIdOfConstraintsList)
	}

	if got := getSize(); got != caller.ProblemFingerprint() {
		return nil, errors.Wrapf(ErrFingerprintMismatch, "plugin reports %q, caller is %q", got, caller.ProblemFingerprint())
	}
	if got := getFamily(); got != familyID {
		return nil, errors.Wrapf(ErrConstraintFamilyMismatch, "plugin reports %q, caller wants %q", got, familyID)
	}

	createSym, err := plug.Lookup(SymbolCreate)
	if err != nil {
		return nil, errors.Wrapf(err, "plugin: missing %s", SymbolCreate)
	}
	create, ok := createSym.(func(*problem.Problem) (solver.Solver, error))
	if !ok {
		return nil, errors.Errorf("plugin: %s has unexpected signature", SymbolCreate)
	}

	destroySym, err := plug.Lookup(SymbolDestroy)
	if err != nil {
		return nil, errors.Wrapf(err, "plugin: missing %s", SymbolDestroy)
	}
	destroy, ok := destroySym.(func(solver.Solver))
	if !ok {
		return nil, errors.Errorf("plugin: %s has unexpected signature", SymbolDestroy)
	}

	raw, err := create(prob)
	if err != nil {
		return nil, errors.Wrap(err, "plugin: create")
	}
	typed, ok := raw.(T)
	if !ok {
		destroy(raw)
		return nil, errors.Errorf("plugin: created solver does not implement the requested type")
	}

	return &Handle[T]{solv: typed, destroy: destroy}, nil
}
