package satcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/typematch/booleq/pkg/booleq"
	"github.com/typematch/booleq/pkg/booleq/term"
)

var errUnknownOutcome = errors.New("sat solver returned an unknown outcome")

// litMapping performs translation between the term algebra and the
// literals of the SAT formula: one literal per (variable, value)
// equality, allocated on demand in a shared logic circuit.
type litMapping struct {
	c         *logic.C
	lits      map[term.Eq]z.Lit
	variables sets.Set[booleq.Label]
	values    sets.Set[booleq.Label]
	valueList []booleq.Label
	errs      []error
}

func newLitMapping(variables, values []booleq.Label) *litMapping {
	d := &litMapping{
		c:         logic.NewC(),
		lits:      map[term.Eq]z.Lit{},
		variables: sets.New(variables...),
		values:    sets.New(values...),
	}
	d.valueList = sets.List(d.values)
	return d
}

// litOf returns the literal standing for "variable takes value". The
// equality key is canonical, so both argument orders map to the same
// literal.
func (d *litMapping) litOf(variable, value booleq.Label) z.Lit {
	e, ok := term.NewEq(variable, value).(term.Eq)
	if !ok {
		// a label equal to itself
		return d.c.T
	}
	if m, ok := d.lits[e]; ok {
		return m
	}
	m := d.c.Lit()
	d.lits[e] = m
	return m
}

// encode compiles a term into the logic circuit.
func (d *litMapping) encode(t term.Term) z.Lit {
	switch t := t.(type) {
	case term.Eq:
		return d.encodeEq(t)
	case *term.And:
		children := t.Children()
		ms := make([]z.Lit, len(children))
		for i, c := range children {
			ms[i] = d.encode(c)
		}
		return d.c.Ands(ms...)
	case *term.Or:
		children := t.Children()
		ms := make([]z.Lit, len(children))
		for i, c := range children {
			ms[i] = d.encode(c)
		}
		return d.c.Ors(ms...)
	default:
		if term.Equal(t, term.True) {
			return d.c.T
		}
		if term.Equal(t, term.False) {
			return d.c.F
		}
		d.errs = append(d.errs, fmt.Errorf("no encoding for term %s", t))
		return d.c.F
	}
}

func (d *litMapping) encodeEq(e term.Eq) z.Lit {
	leftVar, rightVar := d.variables.Has(e.Left), d.variables.Has(e.Right)
	switch {
	case leftVar && d.values.Has(e.Right):
		return d.litOf(e.Left, e.Right)
	case rightVar && d.values.Has(e.Left):
		return d.litOf(e.Right, e.Left)
	case leftVar && rightVar:
		// two variables are equal iff they take the same value
		if len(d.valueList) == 0 {
			return d.c.F
		}
		ms := make([]z.Lit, 0, len(d.valueList))
		for _, value := range d.valueList {
			ms = append(ms, d.c.And(d.litOf(e.Left, value), d.litOf(e.Right, value)))
		}
		return d.c.Ors(ms...)
	default:
		// two distinct concrete values, or an unregistered label
		return d.c.F
	}
}

// Error returns a single error aggregating everything encountered while
// encoding, or nil. A non-nil return indicates the system references
// terms the encoding cannot express.
func (d *litMapping) Error() error {
	if len(d.errs) == 0 {
		return nil
	}
	s := make([]string, len(d.errs))
	for i, err := range d.errs {
		s[i] = err.Error()
	}
	return fmt.Errorf("%d errors encountered: %s", len(s), strings.Join(s, ", "))
}
