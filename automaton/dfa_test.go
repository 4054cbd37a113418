package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNFA_Determinize_PreservesLanguage(t *testing.T) {
	assert := assert.New(t)

	n := multiplesOf3Base2(t)
	d := n.Determinize()

	words := []string{"", "0", "1", "10", "11", "100", "110", "111", "1001"}
	for _, w := range words {
		assert.Equal(n.Run([]rune(w)), d.Run([]rune(w)), "word %q", w)
	}
}

func TestDFA_Complete(t *testing.T) {
	assert := assert.New(t)

	d := Matching([]rune("01"), []rune("1")).Determinize()
	assert.False(d.IsComplete())

	c := d.Complete()
	assert.True(c.IsComplete())
	assert.Equal(d.Run([]rune("1")), c.Run([]rune("1")))
	assert.Equal(d.Run([]rune("0")), c.Run([]rune("0")))
}

func TestMinimize_PreservesLanguage(t *testing.T) {
	assert := assert.New(t)

	n := multiplesOf3Base2(t)
	d := n.Determinize()
	min := Minimize(d)

	words := []string{"", "0", "1", "10", "11", "100", "110", "111", "1001", "1100"}
	for _, w := range words {
		assert.Equal(d.Run([]rune(w)), min.Run([]rune(w)), "word %q", w)
	}
}

func TestMinimize_DuplicatedUnionDoesNotGrow(t *testing.T) {
	assert := assert.New(t)

	// an NFA built by unioning the same matcher with itself duplicates
	// every state; subset construction already merges the copies (2 DFA
	// states), and minimization must not add states or change the language.
	a := Matching([]rune("ab"), []rune("a"))
	redundant := a.Unite(a).Determinize()
	min := Minimize(redundant)

	assert.LessOrEqual(min.NumStates(), redundant.NumStates())
	assert.Equal(redundant.Run([]rune("a")), min.Run([]rune("a")))
}

func TestDFAFromRaw_Validation(t *testing.T) {
	assert := assert.New(t)

	_, err := DFAFromRaw(RawDFA[rune]{
		Alphabet:  digitAlphabet(),
		NumStates: 1,
		Initial:   4,
	})
	assert.Error(err)

	_, err = DFAFromRaw(RawDFA[rune]{
		Alphabet:  digitAlphabet(),
		NumStates: 1,
		Initial:   0,
		Trans: map[int]map[rune]int{
			0: {'x': 0},
		},
	})
	assert.Error(err)
}

func TestDFA_ToRaw_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	d := multiplesOf3Base2(t).Determinize()
	raw := d.ToRaw()
	rebuilt, err := DFAFromRaw(raw)
	assert.NoError(err)

	words := []string{"", "0", "1", "10", "11", "100"}
	for _, w := range words {
		assert.Equal(d.Run([]rune(w)), rebuilt.Run([]rune(w)), "word %q", w)
	}
}

func TestNFA_EncodeBinary_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	n := multiplesOf3Base2(t)
	data := n.EncodeBinary()
	rebuilt, consumed, err := DecodeNFABinary[rune](data)
	assert.NoError(err)
	assert.Equal(len(data), consumed)

	words := []string{"", "0", "1", "10", "11", "100", "110", "111", "1001"}
	for _, w := range words {
		assert.Equal(n.Run([]rune(w)), rebuilt.Run([]rune(w)), "word %q", w)
	}
}

func TestDFA_EncodeBinary_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	d := multiplesOf3Base2(t).Determinize()
	data := d.EncodeBinary()
	rebuilt, consumed, err := DecodeDFABinary[rune](data)
	assert.NoError(err)
	assert.Equal(len(data), consumed)

	words := []string{"", "0", "1", "10", "11", "100"}
	for _, w := range words {
		assert.Equal(d.Run([]rune(w)), rebuilt.Run([]rune(w)), "word %q", w)
	}
}

func TestDFA_DumpTable(t *testing.T) {
	assert := assert.New(t)

	d := multiplesOf3Base2(t).Determinize()
	out := d.DumpTable()
	assert.Contains(out, "0")
	assert.Contains(out, "1")
	assert.Contains(out, ">")
	assert.Contains(out, "*")
}

func TestNFA_DumpTable(t *testing.T) {
	assert := assert.New(t)

	n := multiplesOf3Base2(t)
	out := n.DumpTable()
	assert.Contains(out, "0")
	assert.Contains(out, "1")
	assert.Contains(out, ">")
	assert.Contains(out, "*")
}
