package automaton

import (
	"fmt"
	"sort"

	"github.com/dekarrin/kleenex/internal/collections"
)

// NFA is a nondeterministic finite automaton over an alphabet of V. States
// are dense integers in [0, NumStates). There are no epsilon transitions;
// epsilon is purely a structural notion at the regular-expression level.
//
// The zero value is not a valid NFA; use one of the constructors (Empty,
// EmptyWord, Full, Matching, OfLength) or NFAFromRaw.
type NFA[V Symbol] struct {
	alphabet  []V
	alphaSet  map[V]bool
	numStates int
	initial   collections.IntSet
	final     collections.IntSet

	// trans[state][symbol] holds the (possibly multi-valued) successor set
	// for that state and symbol. A state or symbol with no entry has no
	// outgoing transitions on that symbol.
	trans map[int]map[V][]int
}

func newAlphaSet[V Symbol](alphabet []V) (sorted []V, set map[V]bool) {
	set = make(map[V]bool, len(alphabet))
	for _, v := range alphabet {
		set[v] = true
	}
	sorted = make([]V, 0, len(set))
	for v := range set {
		sorted = append(sorted, v)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted, set
}

// Empty returns the NFA recognizing the empty language over alphabet.
func Empty[V Symbol](alphabet []V) NFA[V] {
	sorted, set := newAlphaSet(alphabet)
	return NFA[V]{
		alphabet: sorted,
		alphaSet: set,
		initial:  collections.NewIntSet(),
		final:    collections.NewIntSet(),
		trans:    map[int]map[V][]int{},
	}
}

// EmptyWord returns the NFA recognizing {epsilon}, the language containing
// only the empty word.
func EmptyWord[V Symbol](alphabet []V) NFA[V] {
	n := Empty(alphabet)
	n.numStates = 1
	n.initial.Add(0)
	n.final.Add(0)
	return n
}

// Full returns the NFA recognizing Sigma*, every word over alphabet.
func Full[V Symbol](alphabet []V) NFA[V] {
	n := Empty(alphabet)
	n.numStates = 1
	n.initial.Add(0)
	n.final.Add(0)
	n.trans[0] = map[V][]int{}
	for _, s := range n.alphabet {
		n.trans[0][s] = []int{0}
	}
	return n
}

// Matching returns the NFA recognizing the single word w, exactly.
func Matching[V Symbol](alphabet []V, w []V) NFA[V] {
	n := Empty(alphabet)
	n.numStates = len(w) + 1
	n.initial.Add(0)
	n.final.Add(len(w))
	for i, sym := range w {
		n.addTrans(i, sym, i+1)
	}
	return n
}

// OfLength returns the NFA recognizing Sigma^k, every word of exactly length
// k over alphabet.
func OfLength[V Symbol](alphabet []V, k int) NFA[V] {
	n := Empty(alphabet)
	n.numStates = k + 1
	n.initial.Add(0)
	n.final.Add(k)
	for i := 0; i < k; i++ {
		for _, sym := range n.alphabet {
			n.addTrans(i, sym, i+1)
		}
	}
	return n
}

func (n *NFA[V]) addTrans(from int, sym V, to int) {
	if n.trans == nil {
		n.trans = map[int]map[V][]int{}
	}
	row, ok := n.trans[from]
	if !ok {
		row = map[V][]int{}
		n.trans[from] = row
	}
	for _, existing := range row[sym] {
		if existing == to {
			return
		}
	}
	row[sym] = append(row[sym], to)
}

// NumStates returns the number of states in the automaton.
func (n NFA[V]) NumStates() int { return n.numStates }

// Alphabet returns the automaton's alphabet, sorted ascending.
func (n NFA[V]) Alphabet() []V {
	out := make([]V, len(n.alphabet))
	copy(out, n.alphabet)
	return out
}

// Initial returns the automaton's initial states, sorted ascending.
func (n NFA[V]) Initial() []int { return n.initial.Elements() }

// Final returns the automaton's final (accepting) states, sorted ascending.
func (n NFA[V]) Final() []int { return n.final.Elements() }

// Successors returns the set of states reachable from state on symbol sym.
func (n NFA[V]) Successors(state int, sym V) []int {
	row, ok := n.trans[state]
	if !ok {
		return nil
	}
	out := make([]int, len(row[sym]))
	copy(out, row[sym])
	return out
}

// Run reports whether word is accepted: whether there exists a path from
// some initial state to some final state whose edges spell out word, in
// order. Simulation tracks the set of currently reachable states rather
// than enumerating paths, and exits as soon as the frontier becomes empty.
func (n NFA[V]) Run(word []V) bool {
	frontier := n.initial.Copy()
	for _, sym := range word {
		if frontier.Empty() {
			return false
		}
		next := collections.NewIntSet()
		for _, q := range frontier.Elements() {
			for _, t := range n.Successors(q, sym) {
				next.Add(t)
			}
		}
		frontier = next
	}
	return !frontier.Intersection(n.final).Empty()
}

// IsComplete reports whether the automaton has at least one initial state
// and a defined transition for every (state, symbol) pair.
func (n NFA[V]) IsComplete() bool {
	if n.initial.Empty() {
		return false
	}
	for q := 0; q < n.numStates; q++ {
		for _, sym := range n.alphabet {
			if len(n.Successors(q, sym)) == 0 {
				return false
			}
		}
	}
	return true
}

func (n NFA[V]) reachableFrom(seed collections.IntSet, forward bool) collections.IntSet {
	visited := seed.Copy()
	var stack collections.Stack[int]
	for _, q := range seed.Elements() {
		stack.Push(q)
	}
	adj := n.trans
	if !forward {
		adj = n.reverseTrans()
	}
	for !stack.Empty() {
		q, _ := stack.Pop()
		row := adj[q]
		for _, targets := range row {
			for _, t := range targets {
				if !visited.Has(t) {
					visited.Add(t)
					stack.Push(t)
				}
			}
		}
	}
	return visited
}

func (n NFA[V]) reverseTrans() map[int]map[V][]int {
	rev := map[int]map[V][]int{}
	for from, row := range n.trans {
		for sym, targets := range row {
			for _, to := range targets {
				if rev[to] == nil {
					rev[to] = map[V][]int{}
				}
				rev[to][sym] = append(rev[to][sym], from)
			}
		}
	}
	return rev
}

// IsReachable reports whether every state can be reached from some initial
// state.
func (n NFA[V]) IsReachable() bool {
	return n.reachableFrom(n.initial, true).Len() == n.numStates
}

// IsCoreachable reports whether every state can reach some final state.
func (n NFA[V]) IsCoreachable() bool {
	return n.reachableFrom(n.final, false).Len() == n.numStates
}

// IsTrimmed reports whether the automaton is both reachable and
// coreachable: every state lies on some path from an initial state to a
// final state.
func (n NFA[V]) IsTrimmed() bool {
	return n.IsReachable() && n.IsCoreachable()
}

// IsEmpty reports whether the automaton's language is empty: no path
// exists from an initial state to a final state.
func (n NFA[V]) IsEmpty() bool {
	if !n.initial.Intersection(n.final).Empty() {
		return false
	}
	reached := n.reachableFrom(n.initial, true)
	return reached.Intersection(n.final).Empty()
}

// IsFull reports whether the automaton's language is Sigma*. The receiver
// is determinised and completed internally first, so the precondition the
// naive algorithm carries (the automaton must already be complete and
// deterministic) can never be violated by a caller; see the design notes
// for why this implementation was chosen over documenting the
// precondition instead.
func (n NFA[V]) IsFull() bool {
	c := n.Determinize().Complete().ToNFA()
	if c.initial.Intersection(c.final).Empty() {
		return false
	}
	reached := c.reachableFrom(c.initial, true)
	for _, q := range reached.Elements() {
		if !c.final.Has(q) {
			return false
		}
	}
	return true
}

// Complete returns an automaton with the same language that additionally
// has a transition defined for every (state, symbol) pair, adding a single
// fresh non-accepting sink state if needed. If the receiver is already
// complete, it is returned unchanged.
func (n NFA[V]) Complete() NFA[V] {
	if n.IsComplete() {
		return n
	}
	out := n.clone()
	sink := out.numStates
	needsSink := false
	for q := 0; q < out.numStates; q++ {
		for _, sym := range out.alphabet {
			if len(out.Successors(q, sym)) == 0 {
				out.addTrans(q, sym, sink)
				needsSink = true
			}
		}
	}
	if out.initial.Empty() {
		needsSink = true
	}
	if needsSink {
		out.numStates = sink + 1
		for _, sym := range out.alphabet {
			out.addTrans(sink, sym, sink)
		}
		if out.initial.Empty() {
			out.initial.Add(sink)
		}
	}
	return out
}

// Reverse returns the automaton whose language is the reversal of every
// word in the receiver's language: transitions are transposed and the
// initial and final sets are swapped.
func (n NFA[V]) Reverse() NFA[V] {
	out := Empty(n.alphabet)
	out.numStates = n.numStates
	out.initial = n.final.Copy()
	out.final = n.initial.Copy()
	for from, row := range n.trans {
		for sym, targets := range row {
			for _, to := range targets {
				out.addTrans(to, sym, from)
			}
		}
	}
	return out
}

// MakeReachable returns an automaton recognizing the same language with
// every unreachable state removed and the remaining states renumbered
// compactly starting at 0, keeping the ascending order of their old
// numbers.
func (n NFA[V]) MakeReachable() NFA[V] {
	reached := n.reachableFrom(n.initial, true)
	return n.restrictTo(reached)
}

// MakeCoreachable returns an automaton recognizing the same language with
// every state that cannot reach a final state removed.
func (n NFA[V]) MakeCoreachable() NFA[V] {
	reached := n.reachableFrom(n.final, false)
	return n.restrictTo(reached)
}

// Trim returns an automaton recognizing the same language in which every
// remaining state is both reachable and coreachable.
func (n NFA[V]) Trim() NFA[V] {
	return n.MakeReachable().MakeCoreachable()
}

func (n NFA[V]) restrictTo(keep collections.IntSet) NFA[V] {
	ordered := keep.Elements()
	remap := make(map[int]int, len(ordered))
	for newID, oldID := range ordered {
		remap[oldID] = newID
	}

	out := Empty(n.alphabet)
	out.numStates = len(ordered)
	for _, old := range n.initial.Elements() {
		if newID, ok := remap[old]; ok {
			out.initial.Add(newID)
		}
	}
	for _, old := range n.final.Elements() {
		if newID, ok := remap[old]; ok {
			out.final.Add(newID)
		}
	}
	for _, old := range ordered {
		newFrom := remap[old]
		for sym, targets := range n.trans[old] {
			for _, oldTo := range targets {
				if newTo, ok := remap[oldTo]; ok {
					out.addTrans(newFrom, sym, newTo)
				}
			}
		}
	}
	return out
}

func (n NFA[V]) clone() NFA[V] {
	out := Empty(n.alphabet)
	out.numStates = n.numStates
	out.initial = n.initial.Copy()
	out.final = n.final.Copy()
	for from, row := range n.trans {
		for sym, targets := range row {
			for _, to := range targets {
				out.addTrans(from, sym, to)
			}
		}
	}
	return out
}

// Negate returns an NFA recognizing the complement of the receiver's
// language relative to Sigma*: it determinises the receiver, flips which
// states are accepting, and converts back to an NFA representation.
func (n NFA[V]) Negate() NFA[V] {
	d := n.Determinize().Complete()
	return d.complementDFA().ToNFA()
}

// Unite returns an NFA recognizing the union of the receiver's language
// and other's, built as the disjoint union of the two automata (other's
// states are shifted past the receiver's).
func (n NFA[V]) Unite(other NFA[V]) NFA[V] {
	alphabet := unionAlphabet(n.alphabet, other.alphabet)
	out := Empty(alphabet)
	out.numStates = n.numStates + other.numStates
	shift := n.numStates

	for _, q := range n.initial.Elements() {
		out.initial.Add(q)
	}
	for _, q := range n.final.Elements() {
		out.final.Add(q)
	}
	for from, row := range n.trans {
		for sym, targets := range row {
			for _, to := range targets {
				out.addTrans(from, sym, to)
			}
		}
	}

	for _, q := range other.initial.Elements() {
		out.initial.Add(q + shift)
	}
	for _, q := range other.final.Elements() {
		out.final.Add(q + shift)
	}
	for from, row := range other.trans {
		for sym, targets := range row {
			for _, to := range targets {
				out.addTrans(from+shift, sym, to+shift)
			}
		}
	}

	return out
}

// Concatenate returns an NFA recognizing the language L(n)*L(other): every
// final state of the receiver gains the outgoing transitions that other's
// initial states have, splicing the two automata together. The result's
// final states are other's final states, plus the receiver's final states
// when other accepts the empty word (one of its initial states is final).
func (n NFA[V]) Concatenate(other NFA[V]) NFA[V] {
	alphabet := unionAlphabet(n.alphabet, other.alphabet)
	out := Empty(alphabet)
	out.numStates = n.numStates + other.numStates
	shift := n.numStates

	for _, q := range n.initial.Elements() {
		out.initial.Add(q)
	}
	for from, row := range n.trans {
		for sym, targets := range row {
			for _, to := range targets {
				out.addTrans(from, sym, to)
			}
		}
	}
	for from, row := range other.trans {
		for sym, targets := range row {
			for _, to := range targets {
				out.addTrans(from+shift, sym, to+shift)
			}
		}
	}

	// splice: every final of n gets every transition leaving an initial of
	// other.
	for _, f := range n.final.Elements() {
		for _, i := range other.initial.Elements() {
			for sym, targets := range other.trans[i] {
				for _, to := range targets {
					out.addTrans(f, sym, to+shift)
				}
			}
		}
	}

	out.final = collections.NewIntSet()
	if !other.initial.DisjointWith(other.final) {
		for _, f := range n.final.Elements() {
			out.final.Add(f)
		}
	}
	for _, f := range other.final.Elements() {
		out.final.Add(f + shift)
	}

	return out
}

// Kleene returns an NFA recognizing the Kleene star of the receiver's
// language: L* = union over i>=0 of L^i. A single fresh state is added
// that is both the sole new initial state and a new final state; it is
// given every transition any old initial state had, and every old final
// state is given that same set of transitions, so that accepting the
// empty word and looping back to repeat the language both become
// possible without epsilon transitions.
func (n NFA[V]) Kleene() NFA[V] {
	out := n.clone()
	fresh := out.numStates
	out.numStates = fresh + 1

	mirrored := map[V][]int{}
	for _, i := range n.initial.Elements() {
		for sym, targets := range n.trans[i] {
			mirrored[sym] = append(mirrored[sym], targets...)
		}
	}
	for sym, targets := range mirrored {
		for _, to := range targets {
			out.addTrans(fresh, sym, to)
		}
	}
	for _, f := range n.final.Elements() {
		for sym, targets := range mirrored {
			for _, to := range targets {
				out.addTrans(f, sym, to)
			}
		}
	}

	out.initial = collections.NewIntSet()
	out.initial.Add(fresh)
	out.final.Add(fresh)
	return out
}

// AtMost returns an NFA recognizing the language of words formed by
// concatenating between 0 and k copies of the receiver's language,
// inclusive.
func (n NFA[V]) AtMost(k int) NFA[V] {
	if k <= 0 {
		return EmptyWord(n.alphabet)
	}
	optional := n.unionEpsilon()
	out := optional
	for i := 1; i < k; i++ {
		out = out.Concatenate(optional)
	}
	return out
}

// unionEpsilon returns an NFA recognizing L(n) union {epsilon}. If some
// initial state of n is already final, n is returned unchanged; otherwise
// it adds a fresh state that is both initial and final and mirrors none of
// the old transitions, preserving the old initial/final sets as
// alternatives.
func (n NFA[V]) unionEpsilon() NFA[V] {
	if n.initial.Any(func(q int) bool { return n.final.Has(q) }) {
		return n
	}
	eps := EmptyWord(n.alphabet)
	return n.Unite(eps)
}

// AtLeast returns an NFA recognizing the language of words formed by
// concatenating k or more copies of the receiver's language.
func (n NFA[V]) AtLeast(k int) NFA[V] {
	if k <= 0 {
		return n.Kleene()
	}
	out := n
	for i := 1; i < k; i++ {
		out = out.Concatenate(n)
	}
	return out.Concatenate(n.Kleene())
}

// Repeat returns an NFA recognizing the language of words formed by
// concatenating between lo and hi copies of the receiver's language,
// inclusive. hi < 0 means unbounded (equivalent to AtLeast(lo)).
func (n NFA[V]) Repeat(lo, hi int) NFA[V] {
	if hi >= 0 && hi < lo {
		return Empty(n.alphabet)
	}
	if hi < 0 {
		return n.AtLeast(lo)
	}
	if lo == 0 && hi == 0 {
		return EmptyWord(n.alphabet)
	}
	var lower NFA[V]
	if lo == 0 {
		lower = EmptyWord(n.alphabet)
	} else {
		lower = n
		for i := 1; i < lo; i++ {
			lower = lower.Concatenate(n)
		}
	}
	if hi == lo {
		return lower
	}
	extra := n.AtMost(hi - lo)
	if lo == 0 {
		return extra
	}
	return lower.Concatenate(extra)
}

func unionAlphabet[V Symbol](a, b []V) []V {
	set := map[V]bool{}
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		set[v] = true
	}
	out := make([]V, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Intersect returns an NFA recognizing L(n) intersected with L(other),
// built as the product automaton of the two operands' completed DFAs.
func (n NFA[V]) Intersect(other NFA[V]) NFA[V] {
	alphabet := unionAlphabet(n.alphabet, other.alphabet)
	da := n.Determinize().completeOver(alphabet)
	db := other.Determinize().completeOver(alphabet)
	return productDFA(da, db, func(aAccept, bAccept bool) bool { return aAccept && bAccept }).ToNFA()
}

// Difference returns an NFA recognizing L(n) minus L(other).
func (n NFA[V]) Difference(other NFA[V]) NFA[V] {
	alphabet := unionAlphabet(n.alphabet, other.alphabet)
	da := n.Determinize().completeOver(alphabet)
	db := other.Determinize().completeOver(alphabet)
	return productDFA(da, db, func(aAccept, bAccept bool) bool { return aAccept && !bAccept }).ToNFA()
}

// Equivalent reports whether the receiver and other recognize the same
// language.
func (n NFA[V]) Equivalent(other NFA[V]) bool {
	return n.Contains(other) && other.Contains(n)
}

// Contains reports whether the receiver's language is a superset of
// other's language: L(other) subset-of L(n).
func (n NFA[V]) Contains(other NFA[V]) bool {
	diff := other.Difference(n)
	return diff.IsEmpty()
}

// String gives a compact, single-line description of the automaton,
// useful for test failure messages and logging.
func (n NFA[V]) String() string {
	return fmt.Sprintf("NFA{states=%d, initial=%v, final=%v, alphabet=%v}",
		n.numStates, n.Initial(), n.Final(), n.Alphabet())
}
