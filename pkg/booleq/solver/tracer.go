package solver

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/typematch/booleq/pkg/booleq"
)

// Pass is the state of the working assignment after one full fixpoint
// pass over all variables.
type Pass interface {
	Number() int
	Assignment() booleq.Assignment
}

type Tracer interface {
	Trace(p Pass)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ Pass) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p Pass) {
	fmt.Fprintf(t.Writer, "---\npass %d:\n", p.Number())
	assignments := p.Assignment()
	variables := make([]booleq.Label, 0, len(assignments))
	for v := range assignments {
		variables = append(variables, v)
	}
	sort.Slice(variables, func(i, j int) bool { return variables[i] < variables[j] })
	for _, v := range variables {
		fmt.Fprintf(t.Writer, "- %s in {%s}\n", v, joinLabels(sets.List(assignments[v])))
	}
}

func joinLabels(labels []booleq.Label) string {
	s := make([]string, len(labels))
	for i, l := range labels {
		s[i] = string(l)
	}
	return strings.Join(s, ", ")
}
