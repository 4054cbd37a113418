package regex

import (
	"fmt"
	"strconv"
	"strings"
)

// EpsilonGlyph is printed for the Epsilon node and recognized by the
// parser as a literal match for the empty word.
const EpsilonGlyph = "ε" // ε

// EmptyGlyph is printed for the Empty (bottom) node. Empty can only be
// produced programmatically (by NewEmpty or Simplify), never parsed: the
// parser does not treat this glyph specially and reads it as an ordinary
// letter.
const EmptyGlyph = "∅" // ∅

// String renders r using the classical Kleene-algebra surface syntax:
// '|' for union, bare concatenation for Concat, and '*'/'+'/'?'/'{n}'/
// '{n,m}'/'{n,}' sugar for the common Repeat shapes. Multi-child children
// are parenthesized.
func (r REG[V]) String() string {
	switch r.k {
	case kindEmpty:
		return EmptyGlyph
	case kindEpsilon:
		return EpsilonGlyph
	case kindDot:
		return "."
	case kindLetter:
		if c, ok := any(r.letter).(rune); ok {
			return string(c)
		}
		return fmt.Sprintf("%v", r.letter)
	case kindUnion:
		if r.coversAlphabet() {
			return "."
		}
		parts := make([]string, len(r.children))
		for i, c := range r.children {
			parts[i] = c.String()
		}
		return strings.Join(parts, "|")
	case kindConcat:
		var b strings.Builder
		for _, c := range r.children {
			b.WriteString(parenIfNeeded(c))
		}
		return b.String()
	case kindRepeat:
		inner := parenIfNeeded(*r.repeated)
		return inner + repeatSuffix(r.min, r.max)
	default:
		return ""
	}
}

// coversAlphabet reports whether r is a union of Letter children that
// together name every symbol of r's alphabet, exactly once each. Such a
// union is semantically Dot, and is printed as "." rather than as an
// explicit letter-by-letter union.
func (r REG[V]) coversAlphabet() bool {
	if len(r.alphabet) == 0 || len(r.children) != len(r.alphabet) {
		return false
	}
	seen := make(map[V]bool, len(r.children))
	for _, c := range r.children {
		if c.k != kindLetter {
			return false
		}
		if seen[c.letter] {
			return false
		}
		seen[c.letter] = true
	}
	for _, v := range r.alphabet {
		if !seen[v] {
			return false
		}
	}
	return true
}

// parenIfNeeded wraps c in parentheses when printing it bare inside a
// Concat or as a Repeat's operand would be ambiguous: anything other than
// a single letter, Dot, Epsilon, Empty, or an already-suffixed Repeat.
func parenIfNeeded[V Symbol](c REG[V]) string {
	switch c.k {
	case kindLetter, kindDot, kindEpsilon, kindEmpty:
		return c.String()
	case kindRepeat:
		return c.String()
	default:
		return "(" + c.String() + ")"
	}
}

func repeatSuffix(lo, hi int) string {
	switch {
	case lo == 0 && hi < 0:
		return "*"
	case lo == 1 && hi < 0:
		return "+"
	case lo == 0 && hi == 1:
		return "?"
	case hi < 0:
		return "{" + strconv.Itoa(lo) + ",}"
	case lo == hi:
		return "{" + strconv.Itoa(lo) + "}"
	default:
		return "{" + strconv.Itoa(lo) + "," + strconv.Itoa(hi) + "}"
	}
}
