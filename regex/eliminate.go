package regex

import "github.com/dekarrin/kleenex/automaton"

// Eliminate converts n back into a REG recognizing the same language,
// using the classical state-elimination method: two fresh states (a
// sole new initial and a sole new terminal) are wired in with epsilon
// edges to n's own initial/final states, every other state is then
// removed one at a time, each removal folding that state's self-loop
// and its in/out edges into a single new edge between every pair of its
// neighbors, until only the new initial and new terminal remain and
// the edge between them is the answer. This mirrors the "state
// removal" shape of wolever-nfa2regex's ToRegexWithConfig, adapted from
// its string-concatenation edge labels to a REG-valued transition
// matrix so the intermediate Kleene-star/concat/union structure stays
// exact instead of being flattened through string formatting.
func Eliminate[V Symbol](n automaton.NFA[V]) REG[V] {
	alphabet := n.Alphabet()
	numOld := n.NumStates()
	newInitial := numOld
	newTerminal := numOld + 1

	m := newRegMatrix[V]()

	for q := 0; q < numOld; q++ {
		for _, sym := range alphabet {
			for _, to := range n.Successors(q, sym) {
				m.union(q, to, NewLetter(alphabet, sym))
			}
		}
	}
	for _, i := range n.Initial() {
		m.union(newInitial, i, NewEpsilon[V](alphabet))
	}
	for _, f := range n.Final() {
		m.union(f, newTerminal, NewEpsilon[V](alphabet))
	}

	remaining := make([]int, 0, numOld+2)
	for q := 0; q <= newTerminal; q++ {
		remaining = append(remaining, q)
	}

	for k := 0; k < numOld; k++ {
		loop, hasLoop := m.get(k, k)
		var loopStar *REG[V]
		if hasLoop {
			s := Repeat(loop, 0, -1)
			loopStar = &s
		}

		for _, i := range remaining {
			if i == k {
				continue
			}
			inEdge, ok := m.get(i, k)
			if !ok {
				continue
			}
			for _, j := range remaining {
				if j == k {
					continue
				}
				outEdge, ok := m.get(k, j)
				if !ok {
					continue
				}
				var through REG[V]
				if loopStar != nil {
					through = Concat(inEdge, *loopStar, outEdge)
				} else {
					through = Concat(inEdge, outEdge)
				}
				m.union(i, j, through)
			}
		}

		m.remove(k)
		remaining = removeInt(remaining, k)
	}

	result, ok := m.get(newInitial, newTerminal)
	if !ok {
		return NewEmpty[V](alphabet)
	}
	return result.Simplify()
}

func removeInt(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// regMatrix is a sparse REG-valued adjacency matrix: absence of an
// entry means "no edge" (the Empty language), which is the identity
// element the elimination loop skips without having to Union in an
// explicit Empty node at every step.
type regMatrix[V Symbol] struct {
	rows map[int]map[int]REG[V]
}

func newRegMatrix[V Symbol]() *regMatrix[V] {
	return &regMatrix[V]{rows: map[int]map[int]REG[V]{}}
}

func (m *regMatrix[V]) get(i, j int) (REG[V], bool) {
	row, ok := m.rows[i]
	if !ok {
		return REG[V]{}, false
	}
	v, ok := row[j]
	return v, ok
}

func (m *regMatrix[V]) union(i, j int, r REG[V]) {
	row, ok := m.rows[i]
	if !ok {
		row = map[int]REG[V]{}
		m.rows[i] = row
	}
	if existing, ok := row[j]; ok {
		row[j] = Union(existing, r)
	} else {
		row[j] = r
	}
}

func (m *regMatrix[V]) remove(k int) {
	delete(m.rows, k)
	for _, row := range m.rows {
		delete(row, k)
	}
}
