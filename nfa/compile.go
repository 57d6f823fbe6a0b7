package nfa

import (
	"fmt"

	"github.com/coregx/renfa/syntax"
)

// Compiler translates syntax trees into machines. Each Compile call runs in
// its own construction session, so compilers are cheap and a single one may
// be reused sequentially.
type Compiler struct {
	builder *Builder
}

// NewCompiler creates a new compiler
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile translates a syntax tree into an epsilon-containing NFA.
// The tree is never mutated. An unrecognized node variant yields a
// CompileError wrapping ErrUnknownNode and no partial machine.
func (c *Compiler) Compile(node syntax.Node) (*Machine, error) {
	c.builder = NewBuilder()

	f, err := c.compile(node)
	if err != nil {
		return nil, err
	}

	m, err := c.builder.Finish(f.start, f.accepting)
	if err != nil {
		return nil, &CompileError{Expr: node.String(), Err: err}
	}
	return m, nil
}

// Compile translates a syntax tree into an epsilon-containing NFA using a
// fresh compiler.
func Compile(node syntax.Node) (*Machine, error) {
	return NewCompiler().Compile(node)
}

// frag is an automaton fragment under construction: an initial state and an
// accepting set, with all states living in the session arena.
type frag struct {
	start     StateID
	accepting StateSet
}

func (c *Compiler) compile(node syntax.Node) (frag, error) {
	switch n := node.(type) {
	case *syntax.Literal:
		return c.compileLiteral(n), nil
	case *syntax.Union:
		return c.compileUnion(n)
	case *syntax.Concat:
		return c.compileConcat(n)
	case *syntax.Star:
		return c.compileStar(n)
	case *syntax.Intersect:
		return c.compileIntersect(n)
	default:
		return frag{}, &CompileError{Err: fmt.Errorf("%w: %T", ErrUnknownNode, node)}
	}
}

// compileLiteral allocates an initial and an accepting state joined by a
// single transition on the literal's symbol.
func (c *Compiler) compileLiteral(n *syntax.Literal) frag {
	initial := c.builder.AddState()
	accept := c.builder.AddState()
	c.builder.AddTransition(initial, n.Symbol, accept)
	return frag{start: initial, accepting: NewStateSet(accept)}
}

// compileUnion builds both branches and joins them under a fresh initial
// state with epsilon transitions to each branch's initial. The accepting set
// is the union of the branch accepting sets; branch states are not shared
// or merged.
func (c *Compiler) compileUnion(n *syntax.Union) (frag, error) {
	left, err := c.compile(n.Left)
	if err != nil {
		return frag{}, err
	}
	right, err := c.compile(n.Right)
	if err != nil {
		return frag{}, err
	}

	initial := c.builder.AddState()
	c.builder.AddTransition(initial, Epsilon, left.start)
	c.builder.AddTransition(initial, Epsilon, right.start)
	return frag{start: initial, accepting: left.accepting.Union(right.accepting)}, nil
}

// compileConcat reuses the left initial and the right accepting set,
// bridging every left-accepting state to the right initial with an epsilon
// transition. No state is allocated.
func (c *Compiler) compileConcat(n *syntax.Concat) (frag, error) {
	left, err := c.compile(n.Left)
	if err != nil {
		return frag{}, err
	}
	right, err := c.compile(n.Right)
	if err != nil {
		return frag{}, err
	}

	for accept := range left.accepting {
		c.builder.AddTransition(accept, Epsilon, right.start)
	}
	return frag{start: left.start, accepting: right.accepting}, nil
}

// compileStar allocates one state that is both initial and accepting, with
// an epsilon transition into the target and a loop-back epsilon from every
// target-accepting state to the target's initial. The loop-back introduces
// epsilon cycles; epsilon elimination must tolerate them.
func (c *Compiler) compileStar(n *syntax.Star) (frag, error) {
	target, err := c.compile(n.Target)
	if err != nil {
		return frag{}, err
	}

	initial := c.builder.AddState()
	c.builder.AddTransition(initial, Epsilon, target.start)
	for accept := range target.accepting {
		c.builder.AddTransition(accept, Epsilon, target.start)
	}
	return frag{start: initial, accepting: target.accepting.Union(NewStateSet(initial))}, nil
}

func (c *Compiler) compileIntersect(n *syntax.Intersect) (frag, error) {
	left, err := c.compile(n.Left)
	if err != nil {
		return frag{}, err
	}
	right, err := c.compile(n.Right)
	if err != nil {
		return frag{}, err
	}
	return c.product(left, right)
}
