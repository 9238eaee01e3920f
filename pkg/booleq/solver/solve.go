package solver

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/typematch/booleq/pkg/booleq"
	"github.com/typematch/booleq/pkg/booleq/term"
)

// complete inserts an implicit True implication for every
// (variable, value) pair without an explicit one, making the implication
// table total. Missing entries are typical for combinations the caller
// never considered, e.g. auxiliary variables introduced while setting up
// the main equations.
func (s *Solver) complete() {
	for _, variable := range s.variables {
		for _, value := range s.values {
			e, ok := term.NewEq(variable, value).(term.Eq)
			if !ok {
				// a label registered as both variable and value;
				// the equality with itself is True and needs no entry
				continue
			}
			if _, exists := s.implications[e]; !exists {
				s.implications[e] = term.True
			}
		}
	}
}

func (s *Solver) implicationFor(variable, value booleq.Label) term.Term {
	if e, ok := term.NewEq(variable, value).(term.Eq); ok {
		return s.implications[e]
	}
	return term.True
}

// Solve runs completion, initialization, ground-truth narrowing and the
// fixpoint loop, and returns the final assignment mapping each variable
// to the values it may still take. Candidate sets only ever shrink, so
// the loop terminates once a full pass narrows nothing. An empty set
// means no solution exists for that variable; an unsatisfiable system
// overall is not signaled (see Satisfiable).
func (s *Solver) Solve() booleq.Assignment {
	s.complete()

	assignments := booleq.Assignment{}
	for _, variable := range s.variables {
		candidates := booleq.NewLabelSet()
		for _, value := range s.values {
			if !term.Equal(s.implicationFor(variable, value), term.False) {
				candidates.Insert(value)
			}
		}
		assignments[variable] = candidates
	}

	for pivot, candidates := range s.groundTruth.Simplify(assignments).Pivots() {
		// pivots can name value labels or unregistered variables;
		// only registered variables are narrowed
		if current, ok := assignments[pivot]; ok {
			assignments[pivot] = current.Intersection(candidates)
		}
	}

	pass := 0
	changed := true
	for changed {
		changed = false
		pass++
		for _, variable := range s.variables {
			terms := make([]term.Term, 0, assignments[variable].Len())
			for _, value := range sets.List(assignments[variable]) {
				implication := s.implicationFor(variable, value)
				if term.Equal(implication.Simplify(assignments), term.False) {
					// the removal is visible to the remaining
					// simplifications within this same pass
					assignments[variable].Delete(value)
					changed = true
				}
				terms = append(terms, implication)
			}
			d := term.NewOr(terms...).Simplify(assignments)
			for pivot, candidates := range d.Pivots() {
				current, ok := assignments[pivot]
				if !ok {
					continue
				}
				narrowed := current.Intersection(candidates)
				changed = changed || narrowed.Len() != current.Len()
				assignments[pivot] = narrowed
			}
		}
		s.tracer.Trace(passSnapshot{number: pass, assignments: assignments})
	}

	return assignments
}

type passSnapshot struct {
	number      int
	assignments booleq.Assignment
}

func (p passSnapshot) Number() int {
	return p.number
}

func (p passSnapshot) Assignment() booleq.Assignment {
	return p.assignments
}
