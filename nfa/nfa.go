package nfa

import (
	"fmt"
	"slices"
	"strings"
)

// StateID uniquely identifies an NFA state within its machine.
// IDs are indices into the machine's state arena, so equality and lookup
// are cheap and no state references another by pointer.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID
const InvalidState StateID = 0xFFFFFFFF

// Epsilon is the reserved transition symbol consumable without reading
// input. It never appears in a syntax tree; only the compiler introduces it.
const Epsilon rune = 'ε'

// State is a single NFA state: a cosmetic display label and a transition
// table mapping each symbol (including Epsilon) to a set of destinations.
// Multiple destinations per symbol represent nondeterministic choice.
type State struct {
	id          StateID
	label       string
	transitions map[rune][]StateID
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Label returns the state's display label. Labels are cosmetic only;
// identity is carried by the ID.
func (s *State) Label() string {
	return s.label
}

// Next returns the destination set for the given symbol.
// The returned slice is owned by the state and must not be modified.
func (s *State) Next(symbol rune) []StateID {
	return s.transitions[symbol]
}

// Symbols returns the symbols with at least one outgoing transition,
// sorted by rune value, which places Epsilon after the ASCII alphanumerics.
func (s *State) Symbols() []rune {
	symbols := make([]rune, 0, len(s.transitions))
	for symbol := range s.transitions {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// add records a transition, ignoring exact duplicates.
func (s *State) add(symbol rune, to StateID) {
	if s.transitions == nil {
		s.transitions = make(map[rune][]StateID)
	}
	if slices.Contains(s.transitions[symbol], to) {
		return
	}
	s.transitions[symbol] = append(s.transitions[symbol], to)
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	return fmt.Sprintf("State(%d, %s)", s.id, s.label)
}

// StateSet is a set of state IDs.
type StateSet map[StateID]struct{}

// NewStateSet creates a set containing the given IDs
func NewStateSet(ids ...StateID) StateSet {
	set := make(StateSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Add inserts an ID into the set
func (set StateSet) Add(id StateID) {
	set[id] = struct{}{}
}

// Contains returns true if the ID is in the set
func (set StateSet) Contains(id StateID) bool {
	_, ok := set[id]
	return ok
}

// Len returns the number of IDs in the set
func (set StateSet) Len() int {
	return len(set)
}

// Union returns a new set containing the members of both sets
func (set StateSet) Union(other StateSet) StateSet {
	out := make(StateSet, len(set)+len(other))
	for id := range set {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Intersects returns true if the two sets share at least one member
func (set StateSet) Intersects(other StateSet) bool {
	small, large := set, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for id := range small {
		if _, ok := large[id]; ok {
			return true
		}
	}
	return false
}

// Sorted returns the members in ascending ID order
func (set StateSet) Sorted() []StateID {
	ids := make([]StateID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// String returns a human-readable representation of the set
func (set StateSet) String() string {
	ids := set.Sorted()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Machine is a nondeterministic finite automaton: a state arena, one initial
// state and a set of accepting states. The accepting set is always a subset
// of the states reachable from the initial state.
type Machine struct {
	// states contains all machine states indexed by StateID
	states []State

	// start is the single initial state
	start StateID

	// accepting is the set of accepting states
	accepting StateSet

	// closures is the per-state epsilon-closure table, populated by
	// RemoveEpsilons and retained for diagnostics
	closures []StateSet
}

// Start returns the machine's initial state ID
func (m *Machine) Start() StateID {
	return m.start
}

// Accepting returns the machine's accepting-state set.
// The returned set is owned by the machine and must not be modified.
func (m *Machine) Accepting() StateSet {
	return m.accepting
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (m *Machine) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(m.states) {
		return nil
	}
	return &m.states[id]
}

// States returns the total number of states owned by the machine
func (m *Machine) States() int {
	return len(m.states)
}

// Next returns the destination set for (state, symbol).
// Returns nil for an invalid state ID or an absent symbol.
func (m *Machine) Next(id StateID, symbol rune) []StateID {
	if s := m.State(id); s != nil {
		return s.Next(symbol)
	}
	return nil
}

// IsAccepting returns true if the given state is accepting
func (m *Machine) IsAccepting(id StateID) bool {
	return m.accepting.Contains(id)
}

// Closures returns the per-state epsilon-closure table computed by
// RemoveEpsilons, indexed by StateID. Returns nil if epsilon elimination
// has not run.
func (m *Machine) Closures() []StateSet {
	return m.closures
}

// labels renders a state set as sorted display labels.
func (m *Machine) labels(set StateSet) string {
	ids := set.Sorted()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = m.states[id].label
	}
	return strings.Join(parts, ", ")
}

// sortedDests returns a destination set in ascending ID order.
// Transition tables keep insertion order internally; rendering and tests
// want a stable order.
func sortedDests(dests []StateID) []StateID {
	out := slices.Clone(dests)
	slices.Sort(out)
	return out
}
