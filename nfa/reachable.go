package nfa

import "github.com/coregx/renfa/internal/sparse"

// reachableFrom walks the arena from start following every outgoing
// transition regardless of symbol. The visited set bounds the walk, so it
// terminates even on cyclic graphs. Returns states in discovery order.
func reachableFrom(states []State, start StateID) *sparse.Set {
	visited := sparse.NewSet(uint32(len(states)))
	visited.Insert(uint32(start))
	stack := []StateID{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dests := range states[id].transitions {
			for _, next := range dests {
				if !visited.Contains(uint32(next)) {
					visited.Insert(uint32(next))
					stack = append(stack, next)
				}
			}
		}
	}
	return visited
}

// Reachable returns every state reachable from the machine's initial state,
// in discovery order. The initial state is always the first element, and
// following any transition from a member stays inside the set.
func (m *Machine) Reachable() []StateID {
	visited := reachableFrom(m.states, m.start)
	ids := make([]StateID, 0, visited.Len())
	for _, v := range visited.Dense() {
		ids = append(ids, StateID(v))
	}
	return ids
}
