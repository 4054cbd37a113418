package regex

import "github.com/dekarrin/kleenex/automaton"

// ToNFA builds an automaton.NFA recognizing the same language as r. It
// recurses over r's structure the way a Thompson construction walks a
// regex AST node by node (Toasa-regexp's Generator is built the same
// way, one genXNFA per node kind) but targets automaton.NFA's own
// closure combinators (Unite, Concatenate, Kleene/Repeat) at each step
// rather than splicing raw epsilon fragments: those combinators are
// already epsilon-free by construction, so reusing them here avoids a
// second, independent implementation of epsilon elimination.
func (r REG[V]) ToNFA() automaton.NFA[V] {
	switch r.k {
	case kindEmpty:
		return automaton.Empty(r.alphabet)
	case kindEpsilon:
		return automaton.EmptyWord(r.alphabet)
	case kindDot:
		return automaton.OfLength(r.alphabet, 1)
	case kindLetter:
		return automaton.Matching(r.alphabet, []V{r.letter})
	case kindUnion:
		out := r.children[0].ToNFA()
		for _, c := range r.children[1:] {
			out = out.Unite(c.ToNFA())
		}
		return out
	case kindConcat:
		out := r.children[0].ToNFA()
		for _, c := range r.children[1:] {
			out = out.Concatenate(c.ToNFA())
		}
		return out
	case kindRepeat:
		return r.repeated.ToNFA().Repeat(r.min, r.max)
	default:
		return automaton.Empty(r.alphabet)
	}
}
