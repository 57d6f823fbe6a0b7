// Package syntax defines the regular-expression syntax tree consumed by the
// nfa package, and a parser producing it.
//
// The node set is closed: Literal, Union, Intersect, Concat and Star are the
// only variants, sealed by an unexported marker method. Literals are single
// alphanumeric symbols; the four operators carry ordered children.
package syntax

import "fmt"

// Node is a node of the regular-expression syntax tree.
// Implementations are restricted to the types in this package.
type Node interface {
	fmt.Stringer

	// node seals the interface to this package's variants.
	node()
}

// Literal is a single alphanumeric symbol.
type Literal struct {
	Symbol rune
}

// Union is the alternation of two expressions (written ∪).
type Union struct {
	Left, Right Node
}

// Intersect is the intersection of two expressions (written ∩).
type Intersect struct {
	Left, Right Node
}

// Concat is the concatenation of two expressions (written .).
type Concat struct {
	Left, Right Node
}

// Star is the Kleene closure of an expression (written *).
type Star struct {
	Target Node
}

func (*Literal) node()   {}
func (*Union) node()     {}
func (*Intersect) node() {}
func (*Concat) node()    {}
func (*Star) node()      {}

// String renders the tree in fully parenthesized form.
func (n *Literal) String() string   { return string(n.Symbol) }
func (n *Union) String() string     { return fmt.Sprintf("(%s∪%s)", n.Left, n.Right) }
func (n *Intersect) String() string { return fmt.Sprintf("(%s∩%s)", n.Left, n.Right) }
func (n *Concat) String() string    { return fmt.Sprintf("(%s.%s)", n.Left, n.Right) }
func (n *Star) String() string      { return fmt.Sprintf("(%s*)", n.Target) }
