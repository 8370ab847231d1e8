package diff

import (
	"fmt"
	"reflect"
	"testing"
)

// replayOld filters a script to the ops that consume old lines.
func replayOld(script []Edit) []string {
	var out []string
	for _, e := range script {
		if e.Op == OpEqual || e.Op == OpRemove {
			out = append(out, e.Text)
		}
	}
	return out
}

// replayNew filters a script to the ops that consume new lines.
func replayNew(script []Edit) []string {
	var out []string
	for _, e := range script {
		if e.Op == OpEqual || e.Op == OpAdd {
			out = append(out, e.Text)
		}
	}
	return out
}

func TestCompute_Substitution(t *testing.T) {
	old := []string{"a", "b", "c"}
	new := []string{"a", "x", "c"}

	got := Compute(old, new)
	want := []Edit{
		{OpEqual, "a"},
		{OpRemove, "b"},
		{OpAdd, "x"},
		{OpEqual, "c"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compute() = %v, want %v", got, want)
	}
}

func TestCompute_PureInsertion(t *testing.T) {
	got := Compute(nil, []string{"a"})
	want := []Edit{{OpAdd, "a"}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compute() = %v, want %v", got, want)
	}
}

func TestCompute_PureDeletion(t *testing.T) {
	got := Compute([]string{"a", "b"}, nil)
	want := []Edit{{OpRemove, "a"}, {OpRemove, "b"}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compute() = %v, want %v", got, want)
	}
}

func TestCompute_Identity(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}

	script := Compute(lines, lines)
	if len(script) != len(lines) {
		t.Fatalf("script length = %d, want %d", len(script), len(lines))
	}
	for i, e := range script {
		if e.Op != OpEqual {
			t.Errorf("script[%d].Op = %v, want OpEqual", i, e.Op)
		}
		if e.Text != lines[i] {
			t.Errorf("script[%d].Text = %q, want %q", i, e.Text, lines[i])
		}
	}
}

func TestCompute_BothEmpty(t *testing.T) {
	if script := Compute(nil, nil); len(script) != 0 {
		t.Errorf("Compute(nil, nil) = %v, want empty", script)
	}
}

func TestCompute_Disjoint(t *testing.T) {
	old := []string{"a", "b"}
	new := []string{"x", "y", "z"}

	script := Compute(old, new)

	adds, removes := Stats(script)
	if removes != 2 || adds != 3 {
		t.Errorf("Stats = +%d -%d, want +3 -2", adds, removes)
	}
	if !reflect.DeepEqual(replayOld(script), old) {
		t.Errorf("old replay = %v, want %v", replayOld(script), old)
	}
	if !reflect.DeepEqual(replayNew(script), new) {
		t.Errorf("new replay = %v, want %v", replayNew(script), new)
	}
}

func TestCompute_Reconstruction(t *testing.T) {
	cases := []struct {
		old []string
		new []string
	}{
		{nil, nil},
		{nil, []string{"a"}},
		{[]string{"a"}, nil},
		{[]string{"a", "b", "c"}, []string{"a", "x", "c"}},
		{[]string{"a", "b", "c"}, []string{"c", "b", "a"}},
		{[]string{"x", "x", "x"}, []string{"x", "x"}},
		{[]string{"fn main() {", "    run()", "}"}, []string{"fn main() {", "    setup()", "    run()", "}"}},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			script := Compute(tc.old, tc.new)

			gotOld := replayOld(script)
			if len(gotOld) != len(tc.old) || (len(tc.old) > 0 && !reflect.DeepEqual(gotOld, tc.old)) {
				t.Errorf("old replay = %v, want %v", gotOld, tc.old)
			}
			gotNew := replayNew(script)
			if len(gotNew) != len(tc.new) || (len(tc.new) > 0 && !reflect.DeepEqual(gotNew, tc.new)) {
				t.Errorf("new replay = %v, want %v", gotNew, tc.new)
			}
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	old := []string{"a", "b", "c", "d", "e"}
	new := []string{"e", "d", "c", "b", "a"}

	first := Compute(old, new)
	second := Compute(old, new)

	if !reflect.DeepEqual(first, second) {
		t.Error("Compute should be deterministic for identical inputs")
	}
}

func TestCompute_TieBreakPrefersAdd(t *testing.T) {
	// Single-line replacement: both backtrack moves score zero. The
	// prefer-Add rule emits Add first during backtracking, so the
	// reversed script reads Remove then Add.
	got := Compute([]string{"a"}, []string{"b"})
	want := []Edit{{OpRemove, "a"}, {OpAdd, "b"}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compute() = %v, want %v", got, want)
	}
}

func TestCompute_NoWhitespaceNormalization(t *testing.T) {
	script := Compute([]string{"a "}, []string{"a"})

	adds, removes := Stats(script)
	if adds != 1 || removes != 1 {
		t.Errorf("trailing whitespace should not compare equal, got +%d -%d", adds, removes)
	}
}

func TestStats(t *testing.T) {
	script := []Edit{
		{OpEqual, "a"},
		{OpRemove, "b"},
		{OpAdd, "x"},
		{OpAdd, "y"},
	}

	adds, removes := Stats(script)
	if adds != 2 {
		t.Errorf("additions = %d, want 2", adds)
	}
	if removes != 1 {
		t.Errorf("removals = %d, want 1", removes)
	}
}
