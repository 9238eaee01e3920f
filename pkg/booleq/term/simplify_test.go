package term

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/typematch/booleq/pkg/booleq"
)

func TestSimplify(t *testing.T) {
	type tc struct {
		Name        string
		Term        Term
		Assignments booleq.Assignment
		Expected    Term
	}

	for _, tt := range []tc{
		{
			Name:        "constants are returned unchanged",
			Term:        True,
			Assignments: booleq.Assignment{},
			Expected:    True,
		},
		{
			Name:        "disjunction loses an impossible alternative",
			Term:        NewOr(NewEq("x", "0"), NewEq("x", "1")),
			Assignments: booleq.Assignment{"x": booleq.NewLabelSet("0")},
			Expected:    NewEq("x", "0"),
		},
		{
			Name:        "disjunction with both alternatives possible",
			Term:        NewOr(NewEq("x", "0"), NewEq("x", "1")),
			Assignments: booleq.Assignment{"x": booleq.NewLabelSet("0", "1")},
			Expected:    NewOr(NewEq("x", "0"), NewEq("x", "1")),
		},
		{
			Name:        "impossible equality becomes false",
			Term:        NewEq("x", "0"),
			Assignments: booleq.Assignment{"x": booleq.NewLabelSet("1")},
			Expected:    False,
		},
		{
			Name:        "possible equality is unchanged",
			Term:        NewEq("x", "0"),
			Assignments: booleq.Assignment{"x": booleq.NewLabelSet("0")},
			Expected:    NewEq("x", "0"),
		},
		{
			Name:        "disjunction over two variables",
			Term:        NewOr(NewEq("x", "0"), NewEq("y", "1")),
			Assignments: booleq.Assignment{"x": booleq.NewLabelSet("1"), "y": booleq.NewLabelSet("1")},
			Expected:    NewEq("y", "1"),
		},
		{
			Name:        "disjunction over two variables, both possible",
			Term:        NewOr(NewEq("x", "0"), NewEq("y", "1")),
			Assignments: booleq.Assignment{"x": booleq.NewLabelSet("0"), "y": booleq.NewLabelSet("1")},
			Expected:    NewOr(NewEq("x", "0"), NewEq("y", "1")),
		},
		{
			Name:        "variable to variable equality narrows to the common candidate",
			Term:        NewEq("x", "y"),
			Assignments: booleq.Assignment{"x": booleq.NewLabelSet("0", "1"), "y": booleq.NewLabelSet("1", "2")},
			Expected:    NewAnd(NewEq("x", "1"), NewEq("y", "1")),
		},
		{
			Name:        "variable to variable equality with no common candidate",
			Term:        NewEq("x", "y"),
			Assignments: booleq.Assignment{"x": booleq.NewLabelSet("0"), "y": booleq.NewLabelSet("1")},
			Expected:    False,
		},
		{
			Name:        "variable to variable equality with full overlap",
			Term:        NewEq("x", "y"),
			Assignments: booleq.Assignment{"x": booleq.NewLabelSet("1", "2"), "y": booleq.NewLabelSet("1", "2")},
			Expected: NewOr(
				NewAnd(NewEq("x", "1"), NewEq("y", "1")),
				NewAnd(NewEq("x", "2"), NewEq("y", "2")),
			),
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, tt.Term.Simplify(tt.Assignments))
		})
	}
}

func TestPivots(t *testing.T) {
	type tc struct {
		Name     string
		Term     Term
		Expected booleq.Pivots
	}

	for _, tt := range []tc{
		{
			Name:     "constants pivot nothing",
			Term:     False,
			Expected: booleq.Pivots{},
		},
		{
			Name: "bare equality bounds each side to the other",
			Term: NewEq("a", "b"),
			Expected: booleq.Pivots{
				"a": booleq.NewLabelSet("b"),
				"b": booleq.NewLabelSet("a"),
			},
		},
		{
			Name: "disjunction unions the bounds",
			Term: NewOr(NewEq("x", "0"), NewEq("x", "1")),
			Expected: booleq.Pivots{
				"x": booleq.NewLabelSet("0", "1"),
			},
		},
		{
			Name: "conjunction intersects the bounds",
			Term: NewAnd(NewEq("x", "0"), NewOr(NewEq("x", "0"), NewEq("x", "1"))),
			Expected: booleq.Pivots{
				"x": booleq.NewLabelSet("0"),
				"0": booleq.NewLabelSet("x"),
			},
		},
		{
			Name: "disjunction keeps only labels pivoted by every alternative",
			Term: NewOr(NewEq("x", "0"), NewEq("y", "1")),
			Expected: booleq.Pivots{},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, tt.Term.Pivots())
		})
	}
}
