// Package satcheck decides whether a registered equation system admits
// any complete assignment at all. It is a diagnostic companion to the
// propagation solver, which computes the union of all solutions but
// deliberately does not signal an unsatisfiable system.
package satcheck

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/typematch/booleq/pkg/booleq"
	"github.com/typematch/booleq/pkg/booleq/term"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Check reports whether some assignment of exactly one value to each
// variable satisfies the ground truth and every implication. The
// implication table is expected to be total over variables and values.
func Check(variables, values []booleq.Label, implications map[term.Eq]term.Term, groundTruth term.Term) (bool, error) {
	d := newLitMapping(variables, values)

	var roots []z.Lit
	for _, variable := range sets.List(d.variables) {
		if len(d.valueList) == 0 {
			// a variable with no values to take
			return false, nil
		}
		ms := make([]z.Lit, 0, len(d.valueList))
		for _, value := range d.valueList {
			ms = append(ms, d.litOf(variable, value))
		}
		// exactly one value per variable
		roots = append(roots, d.c.Ors(ms...))
		roots = append(roots, d.c.CardSort(ms).Leq(1))
	}
	for e, implication := range implications {
		roots = append(roots, d.c.Or(d.encode(e).Not(), d.encode(implication)))
	}
	roots = append(roots, d.encode(groundTruth))

	if err := d.Error(); err != nil {
		return false, err
	}

	g := gini.New()
	d.c.ToCnf(g)
	g.Assume(roots...)
	switch g.Solve() {
	case satisfiable:
		return true, nil
	case unsatisfiable:
		return false, nil
	}
	// gini only returns unknown under deadlines, which we do not set
	return false, errUnknownOutcome
}
