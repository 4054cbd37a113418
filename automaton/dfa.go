package automaton

import (
	"fmt"

	"github.com/dekarrin/kleenex/internal/collections"
)

// DFA is a deterministic finite automaton over an alphabet of V. Like NFA,
// states are dense integers in [0, NumStates). The transition function is
// partial: a missing (state, symbol) entry means no transition is defined,
// which is only valid when the DFA is not required to be Complete.
//
// The zero value is not a valid DFA; build one via NFA.Determinize,
// Minimize, or DFAFromRaw.
type DFA[V Symbol] struct {
	alphabet  []V
	alphaSet  map[V]bool
	numStates int
	initial   int
	final     collections.IntSet
	trans     map[int]map[V]int
}

// NumStates returns the number of states in the automaton.
func (d DFA[V]) NumStates() int { return d.numStates }

// Alphabet returns the automaton's alphabet, sorted ascending.
func (d DFA[V]) Alphabet() []V {
	out := make([]V, len(d.alphabet))
	copy(out, d.alphabet)
	return out
}

// Initial returns the automaton's single initial state.
func (d DFA[V]) Initial() int { return d.initial }

// Final returns the automaton's final (accepting) states, sorted ascending.
func (d DFA[V]) Final() []int { return d.final.Elements() }

// Successor returns the state reached from state on symbol sym, and
// whether that transition is defined.
func (d DFA[V]) Successor(state int, sym V) (int, bool) {
	row, ok := d.trans[state]
	if !ok {
		return 0, false
	}
	to, ok := row[sym]
	return to, ok
}

// Run reports whether word is accepted.
func (d DFA[V]) Run(word []V) bool {
	cur := d.initial
	for _, sym := range word {
		next, ok := d.Successor(cur, sym)
		if !ok {
			return false
		}
		cur = next
	}
	return d.final.Has(cur)
}

// IsComplete reports whether every (state, symbol) pair has a defined
// transition.
func (d DFA[V]) IsComplete() bool {
	for q := 0; q < d.numStates; q++ {
		for _, sym := range d.alphabet {
			if _, ok := d.Successor(q, sym); !ok {
				return false
			}
		}
	}
	return true
}

// Complete returns a DFA recognizing the same language with a transition
// defined for every (state, symbol) pair, adding a fresh non-accepting
// sink state if one is needed.
func (d DFA[V]) Complete() DFA[V] {
	return d.completeOver(d.alphabet)
}

// completeOver is Complete but against a possibly larger alphabet than the
// receiver's own, used by Intersect/Difference when unifying two
// DFAs' alphabets before building a product automaton.
func (d DFA[V]) completeOver(alphabet []V) DFA[V] {
	sorted, set := newAlphaSet(alphabet)
	out := DFA[V]{
		alphabet:  sorted,
		alphaSet:  set,
		numStates: d.numStates,
		initial:   d.initial,
		final:     d.final.Copy(),
		trans:     map[int]map[V]int{},
	}
	for from, row := range d.trans {
		cp := map[V]int{}
		for sym, to := range row {
			cp[sym] = to
		}
		out.trans[from] = cp
	}

	sink := out.numStates
	needsSink := false
	for q := 0; q < out.numStates; q++ {
		for _, sym := range out.alphabet {
			if _, ok := out.Successor(q, sym); !ok {
				if out.trans[q] == nil {
					out.trans[q] = map[V]int{}
				}
				out.trans[q][sym] = sink
				needsSink = true
			}
		}
	}
	if needsSink {
		out.numStates = sink + 1
		out.trans[sink] = map[V]int{}
		for _, sym := range out.alphabet {
			out.trans[sink][sym] = sink
		}
	}
	return out
}

// ToNFA converts the DFA to an equivalent NFA with the same states and a
// single initial state.
func (d DFA[V]) ToNFA() NFA[V] {
	out := Empty(d.alphabet)
	out.numStates = d.numStates
	out.initial.Add(d.initial)
	out.final = d.final.Copy()
	for from, row := range d.trans {
		for sym, to := range row {
			out.addTrans(from, sym, to)
		}
	}
	return out
}

// complementDFA returns a DFA recognizing Sigma* minus L(d). The receiver
// must already be complete; Negate (on NFA) ensures this before calling.
func (d DFA[V]) complementDFA() DFA[V] {
	out := d
	out.final = collections.NewIntSet()
	for q := 0; q < d.numStates; q++ {
		if !d.final.Has(q) {
			out.final.Add(q)
		}
	}
	return out
}

// productDFA builds the synchronized product of da and db, which must
// share the same alphabet and both be complete, accepting a state pair
// (p, q) according to accept(p accepting, q accepting).
func productDFA[V Symbol](da, db DFA[V], accept func(aAccept, bAccept bool) bool) DFA[V] {
	alphabet := da.alphabet
	out := DFA[V]{
		alphabet: alphabet,
		alphaSet: da.alphaSet,
		trans:    map[int]map[V]int{},
		final:    collections.NewIntSet(),
	}

	pairID := map[[2]int]int{}
	var order [][2]int
	idOf := func(p [2]int) int {
		if id, ok := pairID[p]; ok {
			return id
		}
		id := len(order)
		pairID[p] = id
		order = append(order, p)
		return id
	}

	start := [2]int{da.initial, db.initial}
	out.initial = idOf(start)
	if accept(da.final.Has(start[0]), db.final.Has(start[1])) {
		out.final.Add(out.initial)
	}

	for i := 0; i < len(order); i++ {
		p := order[i]
		row := map[V]int{}
		for _, sym := range alphabet {
			ta, aok := da.Successor(p[0], sym)
			tb, bok := db.Successor(p[1], sym)
			if !aok || !bok {
				continue
			}
			next := [2]int{ta, tb}
			nextID := idOf(next)
			row[sym] = nextID
			if accept(da.final.Has(ta), db.final.Has(tb)) {
				out.final.Add(nextID)
			}
		}
		out.trans[i] = row
	}
	out.numStates = len(order)
	return out
}

// String gives a compact, single-line description of the automaton.
func (d DFA[V]) String() string {
	return fmt.Sprintf("DFA{states=%d, initial=%d, final=%v, alphabet=%v}",
		d.numStates, d.initial, d.Final(), d.Alphabet())
}

// Minimize returns the minimal DFA recognizing the same language as d,
// computed with Brzozowski's algorithm: reverse, determinise, reverse,
// determinise. No partition-refinement pass is needed.
func Minimize[V Symbol](d DFA[V]) DFA[V] {
	step1 := d.ToNFA().Reverse().Determinize()
	step2 := step1.ToNFA().Reverse().Determinize()
	return step2
}
