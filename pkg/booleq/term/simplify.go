package term

import (
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/typematch/booleq/pkg/booleq"
)

func (c constant) Simplify(_ booleq.Assignment) Term {
	return c
}

// Simplify checks the equality against the current candidate sets. If
// either side is still a possible value of the other, the equality is
// returned unchanged. Otherwise the sides are related through their
// common candidates: the result is the disjunction, over the
// intersection of both candidate sets, of Eq(left, i) & Eq(i, right).
// An empty intersection yields False. This is how a variable-to-variable
// equality reduces to variable-to-value equalities once partial
// information is known.
func (e Eq) Simplify(assignments booleq.Assignment) Term {
	if assignments.Possible(e.Left, e.Right) || assignments.Possible(e.Right, e.Left) {
		return e
	}
	common := assignments.Candidates(e.Left).Intersection(assignments.Candidates(e.Right))
	alternatives := make([]Term, 0, common.Len())
	for _, i := range sets.List(common) {
		alternatives = append(alternatives, NewAnd(NewEq(e.Left, i), NewEq(i, e.Right)))
	}
	return NewOr(alternatives...)
}

func (a *And) Simplify(assignments booleq.Assignment) Term {
	simplified := make([]Term, len(a.children))
	for i, child := range a.children {
		simplified[i] = child.Simplify(assignments)
	}
	return NewAnd(simplified...)
}

func (o *Or) Simplify(assignments booleq.Assignment) Term {
	simplified := make([]Term, len(o.children))
	for i, child := range o.children {
		simplified[i] = child.Simplify(assignments)
	}
	return NewOr(simplified...)
}
