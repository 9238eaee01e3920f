package solver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/typematch/booleq/internal/satcheck"
	"github.com/typematch/booleq/pkg/booleq"
	"github.com/typematch/booleq/pkg/booleq/term"
)

// DuplicateImplication is returned by Implies when an implication has
// already been registered for the same equality.
type DuplicateImplication term.Eq

func (e DuplicateImplication) Error() string {
	return fmt.Sprintf("duplicate implication registered for %s", term.Eq(e))
}

// IllegalImplicationKey is returned by Implies when the key is not an
// equality, e.g. one of the constants.
type IllegalImplicationKey struct {
	Key term.Term
}

func (e IllegalImplicationKey) Error() string {
	return fmt.Sprintf("implication key must be an equality, got %s", e.Key)
}

// Solver computes the union of all solutions of a system of equalities
// and conditional implications: rather than producing one assignment of
// values to variables, it computes, for each variable, every value the
// variable takes in any solution.
//
// It works by iterating two rewriting rules until a fixpoint:
//
//	(t in X && ...) || (t in Y && ...)  -->  t in (X | Y)
//	t in X && t in Y                    -->  t in (X & Y)
//
// Extracting these bounds ("pivots") for each variable in turn reduces
// the system to one where the possible values can be read off directly.
//
// A Solver is populated once via RegisterVariable, RegisterValue,
// Implies and AlwaysTrue, solved via Solve, and then discarded. It is
// not safe for concurrent use; independent solves need independent
// Solver instances.
type Solver struct {
	variables    []booleq.Label
	values       []booleq.Label
	implications map[term.Eq]term.Term
	groundTruth  term.Term

	tracer Tracer
}

func New(options ...Option) (*Solver, error) {
	s := Solver{
		implications: map[term.Eq]term.Term{},
		groundTruth:  term.True,
	}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Solver) error

// WithTracer has the solver report the working assignment after each
// fixpoint pass to t.
func WithTracer(t Tracer) Option {
	return func(s *Solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}

// RegisterVariable registers a variable. Call before Solve. Duplicate
// registration is harmless.
func (s *Solver) RegisterVariable(variable booleq.Label) {
	s.variables = append(s.variables, variable)
}

// RegisterValue registers a value any variable may take. Call before
// Solve. Duplicate registration is harmless.
func (s *Solver) RegisterValue(value booleq.Label) {
	s.values = append(s.values, value)
}

// AlwaysTrue conjoins t into the ground truth, the term that must hold
// unconditionally. Registering the constant False is a contradiction the
// caller can detect and is rejected here rather than deferred to Solve.
func (s *Solver) AlwaysTrue(t term.Term) error {
	if term.Equal(t, term.False) {
		return errors.New("ground truth cannot be the constant FALSE")
	}
	s.groundTruth = term.NewAnd(s.groundTruth, t)
	return nil
}

// Implies records that implication must hold whenever eq holds. eq must
// be an equality, and at most one implication may be registered per
// equality.
func (s *Solver) Implies(eq term.Term, implication term.Term) error {
	e, ok := eq.(term.Eq)
	if !ok {
		return IllegalImplicationKey{Key: eq}
	}
	if _, exists := s.implications[e]; exists {
		return DuplicateImplication(e)
	}
	s.implications[e] = implication
	return nil
}

// Satisfiable reports whether any complete assignment of values to
// variables satisfies every implication and the ground truth at once.
// It is a diagnostic on top of Solve, which never signals
// unsatisfiability itself: the constant False has no pivots, so a
// contradictory system simply stops narrowing and can finish with
// non-empty candidate sets.
func (s *Solver) Satisfiable() (bool, error) {
	s.complete()
	return satcheck.Check(s.variables, s.values, s.implications, s.groundTruth)
}

// String renders the registered system for debugging: the ground truth
// when it is not the constant True, then every implication whose term is
// neither constant.
func (s *Solver) String() string {
	var lines []string
	if !term.Equal(s.groundTruth, term.True) {
		lines = append(lines, fmt.Sprintf("always: %s", s.groundTruth))
	}
	eqs := make([]term.Eq, 0, len(s.implications))
	for e := range s.implications {
		eqs = append(eqs, e)
	}
	sort.Slice(eqs, func(i, j int) bool {
		if eqs[i].Left != eqs[j].Left {
			return eqs[i].Left < eqs[j].Left
		}
		return eqs[i].Right < eqs[j].Right
	})
	for _, e := range eqs {
		implication := s.implications[e]
		if term.Equal(implication, term.True) || term.Equal(implication, term.False) {
			continue
		}
		lines = append(lines, fmt.Sprintf("if %s then %s", e, implication))
	}
	return strings.Join(lines, "\n") + "\n"
}
