package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// Graphviz renders the NFA as a textual DOT graph: final states are drawn
// doublecircle, the initial states each get a dangling arrow from a point
// node, and parallel edges between the same pair of states are collapsed
// into one edge with a comma-separated label list.
func (n NFA[V]) Graphviz() string {
	var b strings.Builder
	b.WriteString("digraph automaton {\n")
	b.WriteString("    rankdir=LR;\n")

	for q := 0; q < n.numStates; q++ {
		shape := "circle"
		if n.final.Has(q) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    q%d [shape = %s];\n", q, shape)
	}
	for i, q := range n.Initial() {
		fmt.Fprintf(&b, "    start%d [shape = point];\n", i)
		fmt.Fprintf(&b, "    start%d -> q%d;\n", i, q)
	}

	type edgeKey struct{ from, to int }
	labels := map[edgeKey][]string{}
	var order []edgeKey
	for from, row := range n.trans {
		for sym, targets := range row {
			for _, to := range targets {
				k := edgeKey{from, to}
				if _, ok := labels[k]; !ok {
					order = append(order, k)
				}
				labels[k] = append(labels[k], fmt.Sprintf("%v", sym))
			}
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].from != order[j].from {
			return order[i].from < order[j].from
		}
		return order[i].to < order[j].to
	})
	for _, k := range order {
		sort.Strings(labels[k])
		fmt.Fprintf(&b, "    q%d -> q%d [label=%q];\n", k.from, k.to, strings.Join(labels[k], ","))
	}

	b.WriteString("}\n")
	return b.String()
}

// Graphviz renders the DFA as a textual DOT graph, the same way
// NFA.Graphviz does.
func (d DFA[V]) Graphviz() string {
	return d.ToNFA().Graphviz()
}
