package eqn_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/typematch/booleq/cmd/eqn"
	"github.com/typematch/booleq/pkg/booleq"
	"github.com/typematch/booleq/pkg/booleq/solver"
	"github.com/typematch/booleq/pkg/booleq/term"
)

func TestEqn(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Eqn Suite")
}

var _ = Describe("Eqn", func() {
	parse := func(input string) (*eqn.System, error) {
		return eqn.NewSystem(bytes.NewReader([]byte(input)))
	}

	It("should fail if no variables are declared", func() {
		_, err := parse("val v1 v2\n")
		Expect(err).To(HaveOccurred())
	})

	It("should fail if no values are declared", func() {
		_, err := parse("var t\n")
		Expect(err).To(HaveOccurred())
	})

	It("should fail on an unknown statement", func() {
		_, err := parse("var t\nval v1\nfrobnicate t\n")
		Expect(err).To(MatchError(ContainSubstring("line 3")))
	})

	It("should fail on a condition that is not an equality", func() {
		_, err := parse("var t\nval v1\nif TRUE then t = v1\n")
		Expect(err).To(HaveOccurred())
	})

	It("should fail on a trailing token", func() {
		_, err := parse("var t\nval v1\nalways t = v1 v1\n")
		Expect(err).To(HaveOccurred())
	})

	It("should fail on an unbalanced parenthesis", func() {
		_, err := parse("var t\nval v1\nalways (t = v1\n")
		Expect(err).To(HaveOccurred())
	})

	It("should parse a valid system", func() {
		system, err := parse(`# comment
var t
val v1 v2 v3

if t = v3 then FALSE
always t = v1 | (t = v2 & (t = v2 | t = v3))
`)
		Expect(err).ToNot(HaveOccurred())
		Expect(system.Variables()).To(Equal([]booleq.Label{"t"}))
		Expect(system.Values()).To(Equal([]booleq.Label{"v1", "v2", "v3"}))
		Expect(system.Implications()).To(HaveLen(1))
		Expect(system.Implications()[0].Eq).To(Equal(term.NewEq("t", "v3")))
		Expect(system.Implications()[0].Then).To(Equal(term.False))
		Expect(system.Truths()).To(HaveLen(1))
		Expect(system.Truths()[0]).To(Equal(term.NewOr(
			term.NewEq("t", "v1"),
			term.NewAnd(
				term.NewEq("t", "v2"),
				term.NewOr(term.NewEq("t", "v2"), term.NewEq("t", "v3")),
			),
		)))
	})

	It("should bind & tighter than |", func() {
		system, err := parse("var t u\nval a b\nalways t = a & u = a | t = b\n")
		Expect(err).ToNot(HaveOccurred())
		Expect(system.Truths()[0]).To(Equal(term.NewOr(
			term.NewAnd(term.NewEq("t", "a"), term.NewEq("u", "a")),
			term.NewEq("t", "b"),
		)))
	})

	It("should not require whitespace around operators", func() {
		system, err := parse("var t\nval a b\nalways (t=a)|(t=b)\n")
		Expect(err).ToNot(HaveOccurred())
		Expect(system.Truths()[0]).To(Equal(term.NewOr(
			term.NewEq("t", "a"),
			term.NewEq("t", "b"),
		)))
	})
})

var _ = Describe("Eqn Solver", func() {
	It("should solve a parsed system", func() {
		system, err := eqn.NewSystem(bytes.NewReader([]byte(`var t
val v1 v2 v3
if t = v3 then FALSE
always t = v1 | (t = v2 & (t = v2 | t = v3))
`)))
		Expect(err).ToNot(HaveOccurred())

		s, err := solver.New()
		Expect(err).ToNot(HaveOccurred())
		Expect(system.ApplyTo(s)).To(Succeed())
		Expect(s.Solve()).To(Equal(booleq.Assignment{
			"t": booleq.NewLabelSet("v1", "v2"),
		}))
	})
})
