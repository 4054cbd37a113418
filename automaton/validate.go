package automaton

import (
	"fmt"

	"github.com/dekarrin/kleenex/errs"
	"github.com/dekarrin/kleenex/internal/collections"
)

// RawNFA is the unvalidated, fully exported field set of an NFA. It is the
// input to NFAFromRaw and the output of NFA.ToRaw, and is also the type
// that gets serialized by NFA's binary encoding (see serialize.go): rezi
// operates by reflection over exported struct fields, so the unexported
// NFA type itself cannot be handed to it directly.
type RawNFA[V Symbol] struct {
	Alphabet  []V
	NumStates int
	Initial   []int
	Final     []int

	// Trans holds, for each source state with at least one outgoing
	// transition, a map from symbol to the (possibly multi-valued) set of
	// destination states.
	Trans map[int]map[V][]int
}

// ToRaw exports n's fields into a RawNFA value.
func (n NFA[V]) ToRaw() RawNFA[V] {
	raw := RawNFA[V]{
		Alphabet:  n.Alphabet(),
		NumStates: n.numStates,
		Initial:   n.Initial(),
		Final:     n.Final(),
		Trans:     map[int]map[V][]int{},
	}
	for from, row := range n.trans {
		cp := map[V][]int{}
		for sym, targets := range row {
			dup := make([]int, len(targets))
			copy(dup, targets)
			cp[sym] = dup
		}
		raw.Trans[from] = cp
	}
	return raw
}

// NFAFromRaw validates raw and builds an NFA from it. It reports
// errs.ErrInvalidInitial, errs.ErrInvalidFinal, errs.ErrUnknownLetter, or
// errs.ErrInvalidTransition (wrapped in an errs.Error) for the first
// problem found.
func NFAFromRaw[V Symbol](raw RawNFA[V]) (NFA[V], error) {
	sorted, set := newAlphaSet(raw.Alphabet)

	for _, q := range raw.Initial {
		if q < 0 || q >= raw.NumStates {
			return NFA[V]{}, errs.New(fmt.Sprintf("initial state %d is out of range [0, %d)", q, raw.NumStates), errs.ErrInvalidInitial)
		}
	}
	for _, q := range raw.Final {
		if q < 0 || q >= raw.NumStates {
			return NFA[V]{}, errs.New(fmt.Sprintf("final state %d is out of range [0, %d)", q, raw.NumStates), errs.ErrInvalidFinal)
		}
	}
	for from, row := range raw.Trans {
		if from < 0 || from >= raw.NumStates {
			return NFA[V]{}, errs.New(fmt.Sprintf("transition source state %d is out of range [0, %d)", from, raw.NumStates), errs.ErrInvalidTransition)
		}
		for sym, targets := range row {
			if !set[sym] {
				return NFA[V]{}, errs.New(fmt.Sprintf("transition symbol %v is not in the alphabet", sym), errs.ErrUnknownLetter)
			}
			for _, to := range targets {
				if to < 0 || to >= raw.NumStates {
					return NFA[V]{}, errs.New(fmt.Sprintf("transition %d --%v--> %d: destination out of range [0, %d)", from, sym, to, raw.NumStates), errs.ErrInvalidTransition)
				}
			}
		}
	}

	n := NFA[V]{
		alphabet:  sorted,
		alphaSet:  set,
		numStates: raw.NumStates,
		initial:   collections.IntSetOf(raw.Initial),
		final:     collections.IntSetOf(raw.Final),
		trans:     map[int]map[V][]int{},
	}
	for from, row := range raw.Trans {
		cp := map[V][]int{}
		for sym, targets := range row {
			dup := make([]int, len(targets))
			copy(dup, targets)
			cp[sym] = dup
		}
		n.trans[from] = cp
	}
	return n, nil
}

// RawDFA is the unvalidated, fully exported field set of a DFA.
type RawDFA[V Symbol] struct {
	Alphabet  []V
	NumStates int
	Initial   int
	Final     []int
	Trans     map[int]map[V]int
}

// ToRaw exports d's fields into a RawDFA value.
func (d DFA[V]) ToRaw() RawDFA[V] {
	raw := RawDFA[V]{
		Alphabet:  d.Alphabet(),
		NumStates: d.numStates,
		Initial:   d.initial,
		Final:     d.Final(),
		Trans:     map[int]map[V]int{},
	}
	for from, row := range d.trans {
		cp := map[V]int{}
		for sym, to := range row {
			cp[sym] = to
		}
		raw.Trans[from] = cp
	}
	return raw
}

// DFAFromRaw validates raw and builds a DFA from it, reporting the same
// errors as NFAFromRaw for the first problem found. Determinism needs no
// separate check: RawDFA's map[V]int shape allows only one destination
// per state and symbol.
func DFAFromRaw[V Symbol](raw RawDFA[V]) (DFA[V], error) {
	sorted, set := newAlphaSet(raw.Alphabet)

	if raw.Initial < 0 || raw.Initial >= raw.NumStates {
		return DFA[V]{}, errs.New(fmt.Sprintf("initial state %d is out of range [0, %d)", raw.Initial, raw.NumStates), errs.ErrInvalidInitial)
	}
	for _, q := range raw.Final {
		if q < 0 || q >= raw.NumStates {
			return DFA[V]{}, errs.New(fmt.Sprintf("final state %d is out of range [0, %d)", q, raw.NumStates), errs.ErrInvalidFinal)
		}
	}
	for from, row := range raw.Trans {
		if from < 0 || from >= raw.NumStates {
			return DFA[V]{}, errs.New(fmt.Sprintf("transition source state %d is out of range [0, %d)", from, raw.NumStates), errs.ErrInvalidTransition)
		}
		for sym, to := range row {
			if !set[sym] {
				return DFA[V]{}, errs.New(fmt.Sprintf("transition symbol %v is not in the alphabet", sym), errs.ErrUnknownLetter)
			}
			if to < 0 || to >= raw.NumStates {
				return DFA[V]{}, errs.New(fmt.Sprintf("transition %d --%v--> %d: destination out of range [0, %d)", from, sym, to, raw.NumStates), errs.ErrInvalidTransition)
			}
		}
	}

	d := DFA[V]{
		alphabet:  sorted,
		alphaSet:  set,
		numStates: raw.NumStates,
		initial:   raw.Initial,
		final:     collections.IntSetOf(raw.Final),
		trans:     map[int]map[V]int{},
	}
	for from, row := range raw.Trans {
		cp := map[V]int{}
		for sym, to := range row {
			cp[sym] = to
		}
		d.trans[from] = cp
	}
	return d, nil
}
