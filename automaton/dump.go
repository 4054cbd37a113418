package automaton

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

const dumpTableWidth = 100

// DumpTable renders the NFA's transition table as a state x symbol grid,
// one row per state, for debugging: the first column is the state (marked
// with > if initial and * if final), and each remaining column lists the
// successor states for that symbol in Go slice notation, e.g. [1 2].
func (n NFA[V]) DumpTable() string {
	data := [][]string{}

	header := []string{""}
	for _, sym := range n.alphabet {
		header = append(header, fmt.Sprintf("%v", sym))
	}
	data = append(data, header)

	for q := 0; q < n.numStates; q++ {
		label := fmt.Sprintf("%d", q)
		if n.initial.Has(q) {
			label = ">" + label
		}
		if n.final.Has(q) {
			label = label + "*"
		}
		row := []string{label}
		for _, sym := range n.alphabet {
			row = append(row, fmt.Sprintf("%v", n.Successors(q, sym)))
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, dumpTableWidth, rosed.Options{
			TableBorders: true,
		}).
		String()
}

// DumpTable renders the DFA's transition table the same way NFA.DumpTable
// does, but with a single successor state per cell instead of a set.
func (d DFA[V]) DumpTable() string {
	data := [][]string{}

	header := []string{""}
	for _, sym := range d.alphabet {
		header = append(header, fmt.Sprintf("%v", sym))
	}
	data = append(data, header)

	for q := 0; q < d.numStates; q++ {
		label := fmt.Sprintf("%d", q)
		if d.initial == q {
			label = ">" + label
		}
		if d.final.Has(q) {
			label = label + "*"
		}
		row := []string{label}
		for _, sym := range d.alphabet {
			if to, ok := d.Successor(q, sym); ok {
				row = append(row, fmt.Sprintf("%d", to))
			} else {
				row = append(row, "-")
			}
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, dumpTableWidth, rosed.Options{
			TableBorders: true,
		}).
		String()
}
