package nfa

import (
	"fmt"
	"io"
	"strings"
)

// Rendering consumes the sequences produced by the traversal queries; the
// traversals themselves do no I/O.

// String renders the machine as a delta-function table over its reachable
// states, in traversal order with destinations sorted.
func (m *Machine) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "initial: %s\n", m.states[m.start].label)
	fmt.Fprintf(&b, "accepting: { %s }\n", m.labels(m.accepting))
	b.WriteString("delta:")
	for _, id := range m.Reachable() {
		s := &m.states[id]
		fmt.Fprintf(&b, "\n  %s:", s.label)
		for _, symbol := range s.Symbols() {
			for _, dest := range sortedDests(s.transitions[symbol]) {
				fmt.Fprintf(&b, "\n    %c -> %s", symbol, m.states[dest].label)
			}
		}
	}
	return b.String()
}

// ClosureTable renders the state-to-epsilon-closure table retained by
// RemoveEpsilons. Returns the empty string if epsilon elimination has not
// run.
func (m *Machine) ClosureTable() string {
	if m.closures == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("epsilon closures:")
	for id := range m.states {
		fmt.Fprintf(&b, "\n  %s: { %s }", m.states[id].label, m.labels(m.closures[id]))
	}
	return b.String()
}

// WriteDOT writes the machine's reachable states as a Graphviz digraph.
// Accepting states render as double circles and an unlabeled point marks
// the initial state.
func WriteDOT(w io.Writer, m *Machine) error {
	if _, err := fmt.Fprintln(w, "digraph NFA {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "    rankdir=LR;")
	for _, id := range m.Reachable() {
		s := &m.states[id]
		shape := "circle"
		if m.accepting.Contains(id) {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s,label=%q];\n", id, shape, s.label)
		for _, symbol := range s.Symbols() {
			for _, dest := range sortedDests(s.transitions[symbol]) {
				fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", id, dest, string(symbol))
			}
		}
	}
	fmt.Fprintf(w, "    _start [shape=point];\n    _start -> n%d;\n", m.start)
	_, err := fmt.Fprintln(w, "}")
	return err
}
