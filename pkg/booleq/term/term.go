package term

import (
	"fmt"
	"sort"
	"strings"

	"github.com/typematch/booleq/pkg/booleq"
)

// Term is a node of the boolean term algebra. Terms are immutable and
// canonical: structurally equal terms construct to equal values, so they
// are safe to share across solver instances and to use as map keys. The
// interface is closed; the only implementations are the constants True
// and False, Eq, And and Or.
type Term interface {
	// Simplify evaluates the term against a partial assignment and
	// returns an equivalent, potentially smaller term.
	Simplify(assignments booleq.Assignment) Term
	// Pivots derives, for each label the term bounds, the candidate
	// set that label must fall into for the term to be satisfiable.
	// The candidates may include variable labels if the term has not
	// been simplified first.
	Pivots() booleq.Pivots

	fmt.Stringer

	// key returns the canonical encoding used for structural equality
	// and child-set deduplication. Keeping it unexported closes the
	// interface to this package.
	key() string
}

// Equal reports whether two terms are structurally equal, e.g. whether
// two conjunctions hold the same child set regardless of construction
// order.
func Equal(a, b Term) bool {
	return a.key() == b.key()
}

type constant bool

// True and False are the two constant terms. They compare by value, so
// a True obtained anywhere equals any other True.
var (
	True  Term = constant(true)
	False Term = constant(false)
)

func (c constant) String() string {
	if c {
		return "TRUE"
	}
	return "FALSE"
}

func (c constant) key() string {
	return c.String()
}

// Eq is an equality between two labels: a variable and a value, or a
// variable and another variable. It is symmetric; constructions with
// swapped sides compare as equal. Left always holds the lexicographically
// greater label.
type Eq struct {
	Left  booleq.Label
	Right booleq.Label
}

// NewEq constructs an equality or its simplified equivalent: an equality
// between a label and itself is the constant True, and never exists as a
// distinct term.
func NewEq(left, right booleq.Label) Term {
	if left == right {
		return True
	}
	if left < right {
		left, right = right, left
	}
	return Eq{Left: left, Right: right}
}

func (e Eq) String() string {
	return fmt.Sprintf("%s == %s", e.Left, e.Right)
}

func (e Eq) key() string {
	return fmt.Sprintf("(%q=%q)", string(e.Left), string(e.Right))
}

// And is a conjunction over a set of terms. A constructed And always has
// at least two children and contains no nested And, no duplicates and no
// constants.
type And struct {
	children []Term
	k        string
}

// NewAnd constructs a conjunction or its simplified equivalent. Nested
// conjunctions are flattened, True children are dropped, any False child
// collapses the whole term to False, a single remaining child is returned
// as-is and an empty conjunction is True.
func NewAnd(children ...Term) Term {
	byKey := make(map[string]Term, len(children))
	for _, c := range children {
		if nested, ok := c.(*And); ok {
			// nested children are already flat and constant-free
			for _, gc := range nested.children {
				byKey[gc.key()] = gc
			}
			continue
		}
		if c == True {
			continue
		}
		if c == False {
			return False
		}
		byKey[c.key()] = c
	}
	set, joined := orderChildren(byKey)
	switch len(set) {
	case 0:
		return True
	case 1:
		return set[0]
	}
	return &And{children: set, k: "&(" + joined + ")"}
}

// Children returns the child terms in canonical order. The slice is
// shared and must not be modified.
func (a *And) Children() []Term {
	return a.children
}

func (a *And) String() string {
	return "(" + joinTerms(a.children, " & ") + ")"
}

func (a *And) key() string {
	return a.k
}

// Or is a disjunction over a set of terms, with the invariants dual to
// And's.
type Or struct {
	children []Term
	k        string
}

// NewOr constructs a disjunction or its simplified equivalent. Nested
// disjunctions are flattened, False children are dropped, any True child
// collapses the whole term to True, a single remaining child is returned
// as-is and an empty disjunction is False.
func NewOr(children ...Term) Term {
	byKey := make(map[string]Term, len(children))
	for _, c := range children {
		if nested, ok := c.(*Or); ok {
			for _, gc := range nested.children {
				byKey[gc.key()] = gc
			}
			continue
		}
		if c == False {
			continue
		}
		if c == True {
			return True
		}
		byKey[c.key()] = c
	}
	set, joined := orderChildren(byKey)
	switch len(set) {
	case 0:
		return False
	case 1:
		return set[0]
	}
	return &Or{children: set, k: "|(" + joined + ")"}
}

// Children returns the child terms in canonical order. The slice is
// shared and must not be modified.
func (o *Or) Children() []Term {
	return o.children
}

func (o *Or) String() string {
	return "(" + joinTerms(o.children, " | ") + ")"
}

func (o *Or) key() string {
	return o.k
}

func orderChildren(byKey map[string]Term) ([]Term, string) {
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	children := make([]Term, len(keys))
	for i, k := range keys {
		children[i] = byKey[k]
	}
	return children, strings.Join(keys, " ")
}

func joinTerms(terms []Term, sep string) string {
	s := make([]string, len(terms))
	for i, t := range terms {
		s[i] = t.String()
	}
	return strings.Join(s, sep)
}
