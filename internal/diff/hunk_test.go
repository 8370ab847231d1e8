package diff

import (
	"fmt"
	"strings"
	"testing"
)

func TestAnnotate_Counters(t *testing.T) {
	script := []Edit{
		{OpEqual, "a"},
		{OpRemove, "b"},
		{OpAdd, "x"},
		{OpEqual, "c"},
	}

	lines := Annotate(script)

	want := []Line{
		{OpEqual, 0, 0, "a"},
		{OpRemove, 1, 1, "b"},
		{OpAdd, 2, 1, "x"},
		{OpEqual, 2, 2, "c"},
	}

	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestHunks_Substitution(t *testing.T) {
	old := []string{"a", "b", "c"}
	new := []string{"a", "x", "c"}

	hunks := Hunks(Annotate(Compute(old, new)), DefaultContext)

	if len(hunks) != 1 {
		t.Fatalf("got %d hunks, want 1", len(hunks))
	}
	h := hunks[0]
	if h.OldStart != 1 || h.OldCount != 3 {
		t.Errorf("old range = %d,%d, want 1,3", h.OldStart, h.OldCount)
	}
	if h.NewStart != 1 || h.NewCount != 3 {
		t.Errorf("new range = %d,%d, want 1,3", h.NewStart, h.NewCount)
	}
}

func TestHunks_PureInsertion(t *testing.T) {
	hunks := Hunks(Annotate(Compute(nil, []string{"a"})), DefaultContext)

	if len(hunks) != 1 {
		t.Fatalf("got %d hunks, want 1", len(hunks))
	}
	h := hunks[0]
	if h.OldStart != 1 || h.OldCount != 0 {
		t.Errorf("old range = %d,%d, want 1,0", h.OldStart, h.OldCount)
	}
	if h.NewStart != 1 || h.NewCount != 1 {
		t.Errorf("new range = %d,%d, want 1,1", h.NewStart, h.NewCount)
	}
}

func TestHunks_NoChanges(t *testing.T) {
	lines := []string{"a", "b", "c"}
	if hunks := Hunks(Annotate(Compute(lines, lines)), DefaultContext); hunks != nil {
		t.Errorf("got %d hunks for identical input, want none", len(hunks))
	}
}

// gapSequences builds an old/new pair with two single-line changes
// separated by n unchanged lines.
func gapSequences(n int) (old, new []string) {
	old = append(old, "first")
	new = append(new, "FIRST")
	for i := 0; i < n; i++ {
		line := fmt.Sprintf("same-%d", i)
		old = append(old, line)
		new = append(new, line)
	}
	old = append(old, "last")
	new = append(new, "LAST")
	return old, new
}

func TestHunks_Merging(t *testing.T) {
	// 10 unchanged lines exceed 2*context, so the changes split.
	old, new := gapSequences(10)
	hunks := Hunks(Annotate(Compute(old, new)), 3)
	if len(hunks) != 2 {
		t.Fatalf("gap 10: got %d hunks, want 2", len(hunks))
	}

	// 2 unchanged lines are within 2*context, so the changes merge.
	old, new = gapSequences(2)
	hunks = Hunks(Annotate(Compute(old, new)), 3)
	if len(hunks) != 1 {
		t.Fatalf("gap 2: got %d hunks, want 1", len(hunks))
	}
}

func TestHunks_CountInvariant(t *testing.T) {
	cases := []struct {
		old []string
		new []string
	}{
		{[]string{"a", "b", "c"}, []string{"a", "x", "c"}},
		{nil, []string{"a", "b"}},
		{[]string{"a", "b"}, nil},
		{[]string{"a", "b", "c", "d", "e", "f", "g", "h"}, []string{"a", "x", "c", "d", "e", "f", "y", "h"}},
	}

	for i, tc := range cases {
		hunks := Hunks(Annotate(Compute(tc.old, tc.new)), DefaultContext)
		for j, h := range hunks {
			var nonAdd, nonRemove int
			for _, l := range h.Lines {
				if l.Op != OpAdd {
					nonAdd++
				}
				if l.Op != OpRemove {
					nonRemove++
				}
			}
			if h.OldCount != nonAdd {
				t.Errorf("case %d hunk %d: OldCount = %d, want %d", i, j, h.OldCount, nonAdd)
			}
			if h.NewCount != nonRemove {
				t.Errorf("case %d hunk %d: NewCount = %d, want %d", i, j, h.NewCount, nonRemove)
			}
		}
	}
}

func TestHunks_AscendingAndDisjoint(t *testing.T) {
	old, new := gapSequences(20)
	hunks := Hunks(Annotate(Compute(old, new)), 3)

	for i := 1; i < len(hunks); i++ {
		prev, cur := hunks[i-1], hunks[i]
		if cur.OldStart <= prev.OldStart {
			t.Errorf("hunks not ascending: %d then %d", prev.OldStart, cur.OldStart)
		}
		if prev.OldStart+prev.OldCount > cur.OldStart {
			t.Errorf("hunks overlap: [%d,%d) and [%d,...)",
				prev.OldStart, prev.OldStart+prev.OldCount, cur.OldStart)
		}
	}
}

func TestFormat_Golden(t *testing.T) {
	old := []string{"a", "b", "c"}
	new := []string{"a", "x", "c"}

	got := Format(old, new, "demo.go (registry)", "demo.go (local)", 3)
	want := "--- a/demo.go (registry)\n" +
		"+++ b/demo.go (local)\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"-b\n" +
		"+x\n" +
		" c\n"

	if got != want {
		t.Errorf("Format() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormat_IdenticalInputs(t *testing.T) {
	lines := []string{"a", "b"}

	got := Format(lines, lines, "x", "x", 3)
	want := "--- a/x\n+++ b/x\n"

	if got != want {
		t.Errorf("Format() = %q, want headers only %q", got, want)
	}
}

func TestFormat_ByteIdentical(t *testing.T) {
	old := []string{"a", "b", "c", "d"}
	new := []string{"d", "c", "b", "a"}

	if Format(old, new, "l", "l", 3) != Format(old, new, "l", "l", 3) {
		t.Error("Format should be byte-identical across calls")
	}
}

func TestFormat_ContextClamping(t *testing.T) {
	// A change on the first line cannot reach back before line 1.
	old := []string{"a", "b", "c", "d", "e"}
	new := []string{"x", "b", "c", "d", "e"}

	out := Format(old, new, "f", "f", 3)
	if !strings.Contains(out, "@@ -1,4 +1,4 @@") {
		t.Errorf("expected clamped hunk header in:\n%s", out)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"no trailing newline", "a\nb", 2},
		{"trailing newline", "a\nb\n", 2},
		{"blank interior line", "a\n\nb\n", 3},
		{"single line", "a", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.content); len(got) != tt.want {
				t.Errorf("SplitLines(%q) = %v, want %d lines", tt.content, got, tt.want)
			}
		})
	}
}
