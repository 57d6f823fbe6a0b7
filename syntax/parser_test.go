package syntax

import (
	"errors"
	"testing"
)

// TestParse_Valid tests parsing of well-formed patterns.
// Expected trees are given in fully parenthesized form.
func TestParse_Valid(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a", "a"},
		{"Z", "Z"},
		{"7", "7"},
		{"a*", "(a*)"},
		{"a**", "((a*)*)"},
		{"a.b", "(a.b)"},
		{"a.b.c", "((a.b).c)"},
		{"a∪b", "(a∪b)"},
		{"a|b", "(a∪b)"},
		{"a∩b", "(a∩b)"},
		{"a&b", "(a∩b)"},
		{"a∪b∪c", "((a∪b)∪c)"},
		{"a∪b∩c", "(a∪(b∩c))"},
		{"a∩b.c", "(a∩(b.c))"},
		{"a.b*", "(a.(b*))"},
		{"(a.b)*", "((a.b)*)"},
		{"(a∪b).c", "((a∪b).c)"},
		{"a ∪ b", "(a∪b)"},
		{"( a . b ) *", "((a.b)*)"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			node, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.pattern, err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

// TestParse_Invalid tests rejection of malformed patterns
func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"∪",
		"a∪",
		"∪a",
		"a.",
		"(a",
		"a)",
		"()",
		"*a",
		"ab", // juxtaposition is not concatenation; '.' is required
		"a..b",
		"a∩∩b",
		"é", // literals are alphanumerics only
	}

	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			node, err := Parse(pattern)
			if err == nil {
				t.Fatalf("Parse(%q) = %s, want error", pattern, node)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("Parse(%q) error = %T, want *ParseError", pattern, err)
			}
		})
	}
}

// TestNode_String tests rendering of hand-built trees
func TestNode_String(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"literal", &Literal{Symbol: 'x'}, "x"},
		{
			"star of union",
			&Star{Target: &Union{Left: &Literal{Symbol: 'a'}, Right: &Literal{Symbol: 'b'}}},
			"((a∪b)*)",
		},
		{
			"intersection of concats",
			&Intersect{
				Left:  &Concat{Left: &Literal{Symbol: 'a'}, Right: &Literal{Symbol: 'b'}},
				Right: &Concat{Left: &Literal{Symbol: 'a'}, Right: &Literal{Symbol: 'c'}},
			},
			"((a.b)∩(a.c))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestParse_Roundtrip checks that rendering a parsed tree and reparsing it
// yields the same tree.
func TestParse_Roundtrip(t *testing.T) {
	patterns := []string{"a", "a*", "(a.b)∪(c∩d)", "(a∪b)*.c"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			first, err := Parse(pattern)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", pattern, err)
			}
			second, err := Parse(first.String())
			if err != nil {
				t.Fatalf("reparse of %s failed: %v", first, err)
			}
			if first.String() != second.String() {
				t.Errorf("roundtrip changed tree: %s vs %s", first, second)
			}
		})
	}
}
