package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func digitAlphabet() []rune {
	return []rune("0123456789")
}

func TestParse_LiteralConcat(t *testing.T) {
	assert := assert.New(t)

	r, err := Parse("abc", []rune("abc"))
	assert.NoError(err)

	n := r.ToNFA()
	assert.True(n.Run([]rune("abc")))
	assert.False(n.Run([]rune("ab")))
	assert.False(n.Run([]rune("abcd")))
}

func TestParse_Union(t *testing.T) {
	assert := assert.New(t)

	r, err := Parse("a|b|c", []rune("abc"))
	assert.NoError(err)

	n := r.ToNFA()
	for _, w := range []string{"a", "b", "c"} {
		assert.True(n.Run([]rune(w)), "word %q", w)
	}
	assert.False(n.Run([]rune("d")))
	assert.False(n.Run([]rune("ab")))
}

func TestParse_Quantifiers(t *testing.T) {
	assert := assert.New(t)

	star, err := Parse("a*", []rune("a"))
	assert.NoError(err)
	starNFA := star.ToNFA()
	assert.True(starNFA.Run([]rune("")))
	assert.True(starNFA.Run([]rune("aaaa")))

	plus, err := Parse("a+", []rune("a"))
	assert.NoError(err)
	plusNFA := plus.ToNFA()
	assert.False(plusNFA.Run([]rune("")))
	assert.True(plusNFA.Run([]rune("aaa")))

	opt, err := Parse("a?", []rune("a"))
	assert.NoError(err)
	optNFA := opt.ToNFA()
	assert.True(optNFA.Run([]rune("")))
	assert.True(optNFA.Run([]rune("a")))
	assert.False(optNFA.Run([]rune("aa")))
}

func TestParse_BoundedRepeat(t *testing.T) {
	assert := assert.New(t)

	exact, err := Parse("a{2}", []rune("a"))
	assert.NoError(err)
	exactNFA := exact.ToNFA()
	assert.False(exactNFA.Run([]rune("a")))
	assert.True(exactNFA.Run([]rune("aa")))
	assert.False(exactNFA.Run([]rune("aaa")))

	atLeast, err := Parse("a{2,}", []rune("a"))
	assert.NoError(err)
	atLeastNFA := atLeast.ToNFA()
	assert.False(atLeastNFA.Run([]rune("a")))
	assert.True(atLeastNFA.Run([]rune("aa")))
	assert.True(atLeastNFA.Run([]rune("aaaaa")))

	between, err := Parse("a{1,3}", []rune("a"))
	assert.NoError(err)
	betweenNFA := between.ToNFA()
	assert.False(betweenNFA.Run([]rune("")))
	assert.True(betweenNFA.Run([]rune("a")))
	assert.True(betweenNFA.Run([]rune("aaa")))
	assert.False(betweenNFA.Run([]rune("aaaa")))
}

func TestParse_GroupingAndDot(t *testing.T) {
	assert := assert.New(t)

	r, err := Parse("(ab)+.c", []rune("abc"))
	assert.NoError(err)
	n := r.ToNFA()
	assert.True(n.Run([]rune("abac")))
	assert.True(n.Run([]rune("ababbc")))
	assert.False(n.Run([]rune("abc")))
}

func TestParse_Epsilon(t *testing.T) {
	assert := assert.New(t)

	r, err := Parse(EpsilonGlyph+"a", []rune("a"))
	assert.NoError(err)
	n := r.ToNFA()
	assert.True(n.Run([]rune("a")))
}

func TestParse_UnknownLetterRejectedWithAlphabet(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("xyz", []rune("ab"))
	assert.Error(err)
}

func TestParse_InfersAlphabetWhenNil(t *testing.T) {
	assert := assert.New(t)

	r, err := Parse("cab", nil)
	assert.NoError(err)
	assert.ElementsMatch([]rune("abc"), r.Alphabet())
}

func TestParse_MalformedInputErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("(a", []rune("a"))
	assert.Error(err)

	_, err = Parse("a)", []rune("a"))
	assert.Error(err)

	_, err = Parse("*a", []rune("a"))
	assert.Error(err)

	_, err = Parse("a{", []rune("a"))
	assert.Error(err)
}

// TestParse_EmptyInputErrors pins down that the empty string has no valid
// derivation of concat (one-or-more quantified atoms): Parse must report a
// syntax error rather than silently returning NewEmpty, which would make
// Parse("") recognize the empty language instead of rejecting malformed
// input.
func TestParse_EmptyInputErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("", []rune("a"))
	assert.Error(err)

	_, err = Parse("", nil)
	assert.Error(err)
}

// TestParse_ComplexScenario exercises the combined union/concat/quantifier
// grammar against a single non-trivial pattern over the digit alphabet:
// scenarios S7 ("4312"), S8 ("43129") and S9 ("0184430").
func TestParse_ComplexScenario(t *testing.T) {
	assert := assert.New(t)

	r, err := Parse("(018)*4(5+|6|7*)?3+.29?", digitAlphabet())
	assert.NoError(err)
	n := r.ToNFA()

	assert.True(n.Run([]rune("4312")))
	assert.True(n.Run([]rune("43129")))
	assert.False(n.Run([]rune("0184430")))
}
