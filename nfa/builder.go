package nfa

import "fmt"

// Builder is a single construction session. It owns the state arena and the
// monotonic counter that assigns fresh state identities, so independent
// sessions never contend over naming state and may run in parallel.
type Builder struct {
	states []State

	// err is the first invalid operation recorded against this session.
	// A session with a sticky error can never finish into a machine.
	err error
}

// NewBuilder creates a new construction session with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new construction session with the
// specified initial arena capacity
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		states: make([]State, 0, capacity),
	}
}

// AddState allocates a fresh state and returns its ID.
// The display label q<N> is derived from the session counter and is
// cosmetic only.
func (b *Builder) AddState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{
		id:    id,
		label: fmt.Sprintf("q%d", id),
	})
	return id
}

// AddTransition records a transition from one state to another on the given
// symbol. Duplicate transitions are ignored. Out-of-range IDs record a
// sticky BuildError surfaced by Finish.
func (b *Builder) AddTransition(from StateID, symbol rune, to StateID) {
	if int(from) >= len(b.states) {
		b.fail(from, "transition source out of bounds")
		return
	}
	if int(to) >= len(b.states) {
		b.fail(to, "transition destination out of bounds")
		return
	}
	b.states[from].add(symbol, to)
}

// States returns the current number of states in the session
func (b *Builder) States() int {
	return len(b.states)
}

// state returns the arena entry for an ID allocated by this session.
func (b *Builder) state(id StateID) *State {
	return &b.states[id]
}

func (b *Builder) fail(id StateID, message string) {
	if b.err == nil {
		b.err = &BuildError{Message: message, StateID: id}
	}
}

// Finish validates the session and returns the constructed machine.
// Accepting states not reachable from start are pruned, keeping the
// accepting set a subset of the reachable states. A concatenation whose
// left operand has an empty language strands the right operand's accepting
// states this way; the machine is still valid, it just accepts nothing
// on that path.
func (b *Builder) Finish(start StateID, accepting StateSet) (*Machine, error) {
	if b.err != nil {
		return nil, b.err
	}
	if start == InvalidState || int(start) >= len(b.states) {
		return nil, &BuildError{Message: ErrNoStart.Error(), StateID: start}
	}

	reachable := reachableFrom(b.states, start)
	pruned := make(StateSet, len(accepting))
	for id := range accepting {
		if reachable.Contains(uint32(id)) {
			pruned.Add(id)
		}
	}

	return &Machine{
		states:    b.states,
		start:     start,
		accepting: pruned,
	}, nil
}
