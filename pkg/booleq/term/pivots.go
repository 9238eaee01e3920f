package term

import (
	"github.com/typematch/booleq/pkg/booleq"
)

func (constant) Pivots() booleq.Pivots {
	return booleq.Pivots{}
}

// Pivots of a bare equality bound each side to (at most) the other
// side's label.
func (e Eq) Pivots() booleq.Pivots {
	return booleq.Pivots{
		e.Left:  booleq.NewLabelSet(e.Right),
		e.Right: booleq.NewLabelSet(e.Left),
	}
}

// Pivots of a conjunction cover every label pivoted by any child. A
// label pivoted by several children is bounded by the intersection of
// their candidate sets, since every conjunct's bound has to hold at
// once.
func (a *And) Pivots() booleq.Pivots {
	pivots := booleq.Pivots{}
	for _, child := range a.children {
		for name, candidates := range child.Pivots() {
			if current, ok := pivots[name]; ok {
				pivots[name] = current.Intersection(candidates)
			} else {
				pivots[name] = candidates
			}
		}
	}
	return pivots
}

// Pivots of a disjunction cover only the labels pivoted by every child,
// since any single disjunct being true satisfies the term. Each such
// label is bounded by the union of the children's candidate sets.
func (o *Or) Pivots() booleq.Pivots {
	perChild := make([]booleq.Pivots, len(o.children))
	for i, child := range o.children {
		perChild[i] = child.Pivots()
	}
	pivots := booleq.Pivots{}
outer:
	for name, candidates := range perChild[0] {
		union := candidates
		for _, p := range perChild[1:] {
			other, ok := p[name]
			if !ok {
				continue outer
			}
			union = union.Union(other)
		}
		pivots[name] = union
	}
	return pivots
}
