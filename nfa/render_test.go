package nfa

import (
	"strings"
	"testing"
)

// TestMachine_String tests the delta-function table rendering
func TestMachine_String(t *testing.T) {
	m := mustCompile(t, "a")
	got := m.String()

	for _, want := range []string{
		"initial: q0",
		"accepting: { q1 }",
		"delta:",
		"a -> q1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("String() missing %q:\n%s", want, got)
		}
	}

	if m.String() != got {
		t.Error("rendering is not deterministic")
	}
}

// TestMachine_String_Epsilon tests that epsilon transitions render with the
// epsilon symbol
func TestMachine_String_Epsilon(t *testing.T) {
	m := mustCompile(t, "a∪b")
	if got := m.String(); !strings.Contains(got, "ε -> ") {
		t.Errorf("String() missing epsilon transitions:\n%s", got)
	}
}

// TestMachine_ClosureTable tests the closure-table rendering before and
// after elimination
func TestMachine_ClosureTable(t *testing.T) {
	m := mustCompile(t, "a*")

	if got := m.ClosureTable(); got != "" {
		t.Errorf("ClosureTable() before elimination = %q, want empty", got)
	}

	m.RemoveEpsilons()
	got := m.ClosureTable()
	if !strings.Contains(got, "epsilon closures:") {
		t.Errorf("ClosureTable() missing header:\n%s", got)
	}
	// Star initial q2 closes over itself and the target initial q0.
	if !strings.Contains(got, "q2: { q0, q2 }") {
		t.Errorf("ClosureTable() missing star initial closure:\n%s", got)
	}
}

// TestWriteDOT tests the Graphviz rendering
func TestWriteDOT(t *testing.T) {
	m := mustCompile(t, "a∪b")

	var b strings.Builder
	if err := WriteDOT(&b, m); err != nil {
		t.Fatalf("WriteDOT failed: %v", err)
	}
	got := b.String()

	for _, want := range []string{
		"digraph NFA {",
		"rankdir=LR;",
		"shape=doublecircle",
		`label="ε"`,
		"_start [shape=point];",
		"}",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("WriteDOT output missing %q:\n%s", want, got)
		}
	}

	// Only reachable states render; the a∩b scaffolding stays out.
	scaffolded := mustCompile(t, "a∩b")
	b.Reset()
	if err := WriteDOT(&b, scaffolded); err != nil {
		t.Fatalf("WriteDOT failed: %v", err)
	}
	if lines := strings.Count(b.String(), "shape=circle"); lines != 1 {
		t.Errorf("rendered %d plain states, want only the initial pair", lines)
	}
}
