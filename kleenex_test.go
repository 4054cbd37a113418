package kleenex

import (
	"testing"

	"github.com/dekarrin/kleenex/automaton"
	"github.com/stretchr/testify/assert"
)

func TestAutomaton_ConversionsPreserveLanguage(t *testing.T) {
	assert := assert.New(t)

	a, err := ParseRegex("(ab)*a?", []rune("ab"))
	assert.NoError(err)

	n := a.ToNFA()
	d := a.ToDFA()
	back := a.ToRegex()

	words := []string{"", "a", "ab", "aba", "abab", "ababa", "b"}
	for _, w := range words {
		expect := n.Run([]rune(w))
		assert.Equal(expect, d.Run([]rune(w)), "DFA word %q", w)
		assert.Equal(expect, back.ToNFA().Run([]rune(w)), "REG round-trip word %q", w)
	}
}

func TestAutomaton_CompareOrdering(t *testing.T) {
	assert := assert.New(t)

	alphabet := []rune("ab")
	a := FromNFA(automaton.Matching(alphabet, []rune("a")))
	aOrB := a.Unite(FromNFA(automaton.Matching(alphabet, []rune("b"))))

	assert.Equal(Subset, a.Compare(aOrB))
	assert.Equal(Superset, aOrB.Compare(a))
	assert.Equal(Equal, a.Compare(a))

	b := FromNFA(automaton.Matching(alphabet, []rune("b")))
	assert.Equal(Incomparable, a.Compare(b))
}

func TestAutomaton_ClosureOperations(t *testing.T) {
	assert := assert.New(t)

	alphabet := []rune("ab")
	a := FromNFA(automaton.Matching(alphabet, []rune("a")))
	b := FromNFA(automaton.Matching(alphabet, []rune("b")))

	assert.True(a.Unite(b).Run([]rune("a")))
	assert.True(a.Unite(b).Run([]rune("b")))
	assert.True(a.Concatenate(b).Run([]rune("ab")))
	assert.True(a.Kleene().Run([]rune("aaa")))
	assert.True(a.Kleene().Run([]rune("")))
	assert.False(a.Negate().Run([]rune("a")))
	assert.True(a.Negate().Run([]rune("b")))
	assert.True(a.Repeat(2, 3).Run([]rune("aa")))
	assert.False(a.Repeat(2, 3).Run([]rune("a")))
}

func TestAutomaton_IntersectAndDifference(t *testing.T) {
	assert := assert.New(t)

	alphabet := []rune("ab")
	ab := FromNFA(automaton.Matching(alphabet, []rune("ab")))
	aAny := FromNFA(automaton.OfLength(alphabet, 2))

	inter := ab.Intersect(aAny)
	assert.True(inter.Run([]rune("ab")))
	assert.False(inter.Run([]rune("ba")))

	diff := aAny.Difference(ab)
	assert.False(diff.Run([]rune("ab")))
	assert.True(diff.Run([]rune("ba")))
}

func TestAutomaton_Graphviz(t *testing.T) {
	assert := assert.New(t)

	a := FromNFA(automaton.Matching([]rune("ab"), []rune("a")))
	dot := a.Graphviz()
	assert.Contains(dot, "digraph")
}
