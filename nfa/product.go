package nfa

// statePair keys a product state by its two component states.
type statePair struct {
	left, right StateID
}

// product builds the intersection of two fragments as a synchronized cross
// product. One product state is allocated per pair drawn from the operands'
// reachable-state sets, so the result is quadratic in the operand sizes;
// that cost is inherent to product construction.
//
// Real symbols advance both operands simultaneously: a product transition on
// a symbol exists only when both components can move on it, to every
// combination of their destinations. Epsilon moves are asynchronous: if
// either component has an epsilon move, the product steps to every
// combination of (left epsilon-destinations plus left itself) and (right
// epsilon-destinations plus right itself), letting one side idle while the
// other moves.
func (c *Compiler) product(left, right frag) (frag, error) {
	leftReach := reachableFrom(c.builder.states, left.start).Dense()
	rightReach := reachableFrom(c.builder.states, right.start).Dense()

	pairs := make(map[statePair]StateID, len(leftReach)*len(rightReach))
	for _, ls := range leftReach {
		for _, rs := range rightReach {
			pairs[statePair{StateID(ls), StateID(rs)}] = c.builder.AddState()
		}
	}

	start := InvalidState
	accepting := NewStateSet()
	for pair, id := range pairs {
		// Each operand has a single initial state, so exactly one pair
		// qualifies; more than one is a construction bug.
		if pair.left == left.start && pair.right == right.start {
			if start != InvalidState {
				return frag{}, &CompileError{Err: ErrInitialPair}
			}
			start = id
		}
		if left.accepting.Contains(pair.left) && right.accepting.Contains(pair.right) {
			accepting.Add(id)
		}

		ls := c.builder.state(pair.left)
		rs := c.builder.state(pair.right)

		for symbol, leftDests := range ls.transitions {
			if symbol == Epsilon {
				continue
			}
			rightDests, ok := rs.transitions[symbol]
			if !ok {
				continue
			}
			for _, nl := range leftDests {
				for _, nr := range rightDests {
					c.builder.AddTransition(id, symbol, pairs[statePair{nl, nr}])
				}
			}
		}

		leftEps := ls.transitions[Epsilon]
		rightEps := rs.transitions[Epsilon]
		if len(leftEps) == 0 && len(rightEps) == 0 {
			continue
		}
		for _, nl := range append([]StateID{pair.left}, leftEps...) {
			for _, nr := range append([]StateID{pair.right}, rightEps...) {
				c.builder.AddTransition(id, Epsilon, pairs[statePair{nl, nr}])
			}
		}
	}
	if start == InvalidState {
		return frag{}, &CompileError{Err: ErrInitialPair}
	}

	// Only both-accepting pairs reachable from the initial pair enter the
	// accepting set, keeping it a subset of the reachable states.
	productReach := reachableFrom(c.builder.states, start)
	for id := range accepting {
		if !productReach.Contains(uint32(id)) {
			delete(accepting, id)
		}
	}

	return frag{start: start, accepting: accepting}, nil
}
