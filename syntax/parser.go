package syntax

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Surface syntax, loosest binding first: ∪ (alias |), ∩ (alias &),
// . (explicit concatenation), * (postfix). Parentheses group, literals are
// single alphanumerics. Binary operators associate left.

type unionExpr struct {
	First *isectExpr   `parser:"@@"`
	Rest  []*isectExpr `parser:"( ( '∪' | '|' ) @@ )*"`
}

type isectExpr struct {
	First *concatExpr   `parser:"@@"`
	Rest  []*concatExpr `parser:"( ( '∩' | '&' ) @@ )*"`
}

type concatExpr struct {
	First *starExpr   `parser:"@@"`
	Rest  []*starExpr `parser:"( '.' @@ )*"`
}

type starExpr struct {
	Atom  *atomExpr `parser:"@@"`
	Stars []string  `parser:"@'*'*"`
}

type atomExpr struct {
	Symbol *string    `parser:"@Literal"`
	Group  *unionExpr `parser:"| '(' @@ ')'"`
}

var (
	regexLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Literal", Pattern: `[0-9A-Za-z]`},
		{Name: "Punct", Pattern: `[∪∩|&.*()]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser = participle.MustBuild[unionExpr](
		participle.Lexer(regexLexer),
		participle.Elide("Whitespace"),
	)
)

// ParseError reports a pattern that does not conform to the surface syntax.
type ParseError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid regular expression %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses a regular expression into its syntax tree.
func Parse(pattern string) (Node, error) {
	expr, err := parser.ParseString("", pattern)
	if err != nil {
		return nil, &ParseError{Pattern: pattern, Err: err}
	}
	return expr.lower(), nil
}

// lower folds the layered parse tree into the sealed Node variants.
// Repeated binary operators fold left.
func (e *unionExpr) lower() Node {
	n := e.First.lower()
	for _, r := range e.Rest {
		n = &Union{Left: n, Right: r.lower()}
	}
	return n
}

func (e *isectExpr) lower() Node {
	n := e.First.lower()
	for _, r := range e.Rest {
		n = &Intersect{Left: n, Right: r.lower()}
	}
	return n
}

func (e *concatExpr) lower() Node {
	n := e.First.lower()
	for _, r := range e.Rest {
		n = &Concat{Left: n, Right: r.lower()}
	}
	return n
}

func (e *starExpr) lower() Node {
	n := e.Atom.lower()
	for range e.Stars {
		n = &Star{Target: n}
	}
	return n
}

func (e *atomExpr) lower() Node {
	if e.Symbol != nil {
		return &Literal{Symbol: []rune(*e.Symbol)[0]}
	}
	return e.Group.lower()
}
