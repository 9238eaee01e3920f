package eqn

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/typematch/booleq/pkg/booleq"
	"github.com/typematch/booleq/pkg/booleq/solver"
	"github.com/typematch/booleq/pkg/booleq/term"
)

// System is an equation system parsed from the line-oriented eqn format:
//
//	# a comment
//	var t u
//	val v1 v2 v3
//	if t = v3 then FALSE
//	always t = v1 | (t = v2 & (t = v2 | t = v3))
//
// Terms are built from TRUE, FALSE, label = label and parenthesized
// groups, with & binding tighter than |.
type System struct {
	variables    []booleq.Label
	values       []booleq.Label
	implications []Implication
	truths       []term.Term
}

// Implication pairs an equality with the term that must hold whenever
// the equality holds.
type Implication struct {
	Eq   term.Term
	Then term.Term
}

func (s *System) Variables() []booleq.Label {
	return s.variables
}

func (s *System) Values() []booleq.Label {
	return s.values
}

func (s *System) Implications() []Implication {
	return s.implications
}

func (s *System) Truths() []term.Term {
	return s.truths
}

// NewSystem creates a System with the statements parsed from the eqn
// formatted stream afforded by r.
func NewSystem(r io.Reader) (*System, error) {
	reader := bufio.NewReader(r)
	sys := &System{}
	lineno := 0
	for {
		line, err := reader.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return nil, fmt.Errorf("error reading eqn data: %w", err)
		}
		lineno++
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			if err := sys.parseLine(line); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
		}
		if eof {
			break
		}
	}

	if len(sys.variables) == 0 {
		return nil, fmt.Errorf("invalid system: no variables declared")
	}
	if len(sys.values) == 0 {
		return nil, fmt.Errorf("invalid system: no values declared")
	}
	return sys, nil
}

// ApplyTo registers the parsed system on a solver.
func (s *System) ApplyTo(so *solver.Solver) error {
	for _, v := range s.variables {
		so.RegisterVariable(v)
	}
	for _, v := range s.values {
		so.RegisterValue(v)
	}
	for _, imp := range s.implications {
		if err := so.Implies(imp.Eq, imp.Then); err != nil {
			return err
		}
	}
	for _, t := range s.truths {
		if err := so.AlwaysTrue(t); err != nil {
			return err
		}
	}
	return nil
}

func (s *System) parseLine(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "var":
		if len(fields) == 1 {
			return fmt.Errorf("invalid statement (%s): expected at least one variable", line)
		}
		for _, f := range fields[1:] {
			s.variables = append(s.variables, booleq.Label(f))
		}
	case "val":
		if len(fields) == 1 {
			return fmt.Errorf("invalid statement (%s): expected at least one value", line)
		}
		for _, f := range fields[1:] {
			s.values = append(s.values, booleq.Label(f))
		}
	case "if":
		p := newParser(strings.TrimPrefix(line, "if"))
		condition, err := p.parseTerm()
		if err != nil {
			return err
		}
		if _, ok := condition.(term.Eq); !ok {
			return fmt.Errorf("invalid condition (%s): must be an equality between two distinct labels", condition)
		}
		if err := p.expect("then"); err != nil {
			return err
		}
		then, err := p.parseTerm()
		if err != nil {
			return err
		}
		if err := p.expectEnd(); err != nil {
			return err
		}
		s.implications = append(s.implications, Implication{Eq: condition, Then: then})
	case "always":
		p := newParser(strings.TrimPrefix(line, "always"))
		t, err := p.parseTerm()
		if err != nil {
			return err
		}
		if err := p.expectEnd(); err != nil {
			return err
		}
		s.truths = append(s.truths, t)
	default:
		return fmt.Errorf("invalid statement: %s", line)
	}
	return nil
}

const symbols = "()&|="

type parser struct {
	tokens []string
	pos    int
}

func newParser(s string) *parser {
	var tokens []string
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case strings.IndexByte(symbols, c) >= 0:
			tokens = append(tokens, string(c))
			i++
		default:
			j := i
			for j < len(s) && s[j] != ' ' && s[j] != '\t' && strings.IndexByte(symbols, s[j]) < 0 {
				j++
			}
			tokens = append(tokens, s[i:j])
			i = j
		}
	}
	return &parser{tokens: tokens}
}

func (p *parser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	tok := p.peek()
	if tok != "" {
		p.pos++
	}
	return tok
}

func (p *parser) expect(tok string) error {
	if got := p.next(); got != tok {
		return fmt.Errorf("expected %q, got %q", tok, got)
	}
	return nil
}

func (p *parser) expectEnd() error {
	if tok := p.peek(); tok != "" {
		return fmt.Errorf("unexpected trailing token %q", tok)
	}
	return nil
}

// parseTerm parses a disjunction; | binds loosest.
func (p *parser) parseTerm() (term.Term, error) {
	children := []term.Term{}
	for {
		child, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		if p.peek() != "|" {
			break
		}
		p.next()
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return term.NewOr(children...), nil
}

func (p *parser) parseConjunction() (term.Term, error) {
	children := []term.Term{}
	for {
		child, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		if p.peek() != "&" {
			break
		}
		p.next()
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return term.NewAnd(children...), nil
}

func (p *parser) parseAtom() (term.Term, error) {
	tok := p.next()
	switch tok {
	case "":
		return nil, fmt.Errorf("unexpected end of term")
	case "(":
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return t, nil
	case "TRUE":
		return term.True, nil
	case "FALSE":
		return term.False, nil
	case ")", "&", "|", "=", "then":
		return nil, fmt.Errorf("unexpected token %q", tok)
	}
	// label = label
	if err := p.expect("="); err != nil {
		return nil, err
	}
	right := p.next()
	if right == "" || strings.Contains(symbols, right) || right == "then" {
		return nil, fmt.Errorf("expected a label on the right of %q =", tok)
	}
	return term.NewEq(booleq.Label(tok), booleq.Label(right)), nil
}
