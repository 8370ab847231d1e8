package diff

import (
	"fmt"
	"strings"
)

// DefaultContext is the number of unchanged lines shown around a change.
const DefaultContext = 3

// Line is an edit annotated with its position in both sequences.
// OldIndex and NewIndex are 0-based. An Add carries the old index of the
// line it is inserted before; a Remove carries the new index the same way.
type Line struct {
	Op       Op
	OldIndex int
	NewIndex int
	Text     string
}

// Hunk is a contiguous, context-bounded block of annotated lines together
// with its unified-diff header fields. Start values are 1-indexed.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Annotate walks an edit script forward and attaches old/new line
// positions to every edit. Equal advances both counters, Remove only the
// old one, Add only the new one.
func Annotate(script []Edit) []Line {
	lines := make([]Line, 0, len(script))
	oldIdx, newIdx := 0, 0

	for _, e := range script {
		lines = append(lines, Line{
			Op:       e.Op,
			OldIndex: oldIdx,
			NewIndex: newIdx,
			Text:     e.Text,
		})
		switch e.Op {
		case OpEqual:
			oldIdx++
			newIdx++
		case OpRemove:
			oldIdx++
		case OpAdd:
			newIdx++
		}
	}

	return lines
}

// Hunks groups the changed lines into context-bounded hunks. Two changes
// fall into the same hunk when the run of equal lines between them is at
// most 2*context; a larger run starts a new hunk. Hunks are returned in
// ascending position order and never overlap. An all-equal input yields
// no hunks.
func Hunks(lines []Line, context int) []Hunk {
	if context < 0 {
		context = DefaultContext
	}

	// Indices of non-equal lines.
	var changes []int
	for i, l := range lines {
		if l.Op != OpEqual {
			changes = append(changes, i)
		}
	}
	if len(changes) == 0 {
		return nil
	}

	// Group change indices into ranges.
	type span struct{ first, last int }
	spans := []span{{changes[0], changes[0]}}
	for _, idx := range changes[1:] {
		cur := &spans[len(spans)-1]
		if idx-cur.last-1 > 2*context {
			spans = append(spans, span{idx, idx})
		} else {
			cur.last = idx
		}
	}

	hunks := make([]Hunk, 0, len(spans))
	for _, s := range spans {
		start := s.first - context
		if start < 0 {
			start = 0
		}
		end := s.last + context + 1
		if end > len(lines) {
			end = len(lines)
		}

		window := lines[start:end]
		h := Hunk{
			OldStart: window[0].OldIndex + 1,
			NewStart: window[0].NewIndex + 1,
			Lines:    window,
		}
		for _, l := range window {
			if l.Op != OpAdd {
				h.OldCount++
			}
			if l.Op != OpRemove {
				h.NewCount++
			}
		}
		hunks = append(hunks, h)
	}

	return hunks
}

// Header returns the hunk header line without a trailing newline.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
}

// Format diffs old against new and renders the result as unified-diff
// text. The two header lines carry the given labels. Identical inputs
// produce only the header lines. Output is byte-identical for identical
// inputs.
func Format(old, new []string, oldLabel, newLabel string, context int) string {
	var b strings.Builder

	b.WriteString("--- a/")
	b.WriteString(oldLabel)
	b.WriteString("\n")
	b.WriteString("+++ b/")
	b.WriteString(newLabel)
	b.WriteString("\n")

	lines := Annotate(Compute(old, new))
	for _, h := range Hunks(lines, context) {
		b.WriteString(h.Header())
		b.WriteString("\n")
		for _, l := range h.Lines {
			b.WriteString(l.Op.Prefix())
			b.WriteString(l.Text)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// SplitLines splits file content into logical lines for diffing. A
// trailing newline does not produce a final empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
