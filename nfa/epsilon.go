package nfa

import "github.com/coregx/renfa/internal/sparse"

// RemoveEpsilons rewrites the machine in place into a language-equivalent
// automaton with no epsilon transitions.
//
// For every state s and symbol a, the new destinations of (s, a) are found
// by closing on both sides of the real move: every state in the epsilon
// closure of s contributes its direct a-destinations, and each of those is
// expanded to its own epsilon closure. A state becomes accepting iff its
// closure intersects the original accepting set. All epsilon transitions
// are then discarded.
//
// The transform is idempotent: on an epsilon-free machine every closure is
// the singleton of its state and the rewrite reproduces the same table.
// The computed state-to-closure table is retained and exposed via Closures.
func (m *Machine) RemoveEpsilons() {
	closures := make([]StateSet, len(m.states))
	for id := range m.states {
		closures[id] = m.epsilonClosure(StateID(id))
	}

	rewritten := make([]map[rune][]StateID, len(m.states))
	for id := range m.states {
		table := make(map[rune][]StateID)
		for member := range closures[id] {
			for symbol, dests := range m.states[member].transitions {
				if symbol == Epsilon {
					continue
				}
				for _, dest := range dests {
					for expanded := range closures[dest] {
						addUnique(table, symbol, expanded)
					}
				}
			}
		}
		rewritten[id] = table
	}

	accepting := NewStateSet()
	for id := range m.states {
		if closures[id].Intersects(m.accepting) {
			accepting.Add(StateID(id))
		}
	}

	for id := range m.states {
		m.states[id].transitions = rewritten[id]
	}
	m.accepting = accepting
	m.closures = closures
}

// epsilonClosure computes the set of states reachable from id following
// only epsilon transitions, including id itself. States are marked before
// expansion, so the fixed point terminates even on the epsilon cycles the
// kleene-star loop-back introduces.
func (m *Machine) epsilonClosure(id StateID) StateSet {
	visited := sparse.NewSet(uint32(len(m.states)))
	visited.Insert(uint32(id))
	stack := []StateID{id}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dest := range m.states[next].transitions[Epsilon] {
			if !visited.Contains(uint32(dest)) {
				visited.Insert(uint32(dest))
				stack = append(stack, dest)
			}
		}
	}

	closure := make(StateSet, visited.Len())
	for _, v := range visited.Dense() {
		closure.Add(StateID(v))
	}
	return closure
}

func addUnique(table map[rune][]StateID, symbol rune, dest StateID) {
	for _, existing := range table[symbol] {
		if existing == dest {
			return
		}
	}
	table[symbol] = append(table[symbol], dest)
}
