package booleq

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// Label names a variable or a value. Variables and values share one
// namespace, since an equality may relate a variable to another variable.
type Label string

func (l Label) String() string {
	return string(l)
}

// LabelFromString returns a Label based on a provided string.
func LabelFromString(s string) Label {
	return Label(s)
}

// LabelSet is a set of labels, e.g. the candidate values a variable may
// still take.
type LabelSet = sets.Set[Label]

// NewLabelSet returns a LabelSet containing the given labels.
func NewLabelSet(labels ...Label) LabelSet {
	return sets.New(labels...)
}

// Assignment maps each variable to the set of values it may still take.
// It is the working state of one solve: candidate sets start at the full
// value universe and only ever shrink.
type Assignment map[Label]LabelSet

// Possible reports whether candidate is currently a possible value of
// label. A label with no entry has an empty candidate set, so value
// labels (which are never assignment keys) are never "possible" here.
func (a Assignment) Possible(label, candidate Label) bool {
	return a[label].Has(candidate)
}

// Candidates returns the current candidate set for label, which is nil
// (empty) when the label has no entry.
func (a Assignment) Candidates(label Label) LabelSet {
	return a[label]
}

// Pivots is a derived bound: a term is satisfiable only if each pivoted
// label's value lies within the associated candidate set. Candidates may
// be variable labels for terms that have not been simplified yet.
type Pivots map[Label]LabelSet
