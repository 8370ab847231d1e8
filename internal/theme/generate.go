package theme

import (
	"bytes"
	"fmt"
)

// GenerateSource renders the theme file installed into the user's
// components package. The file declares one lipgloss color variable per
// palette slot plus the radius constant the components share.
func GenerateSource(t *Theme, dark bool, radius Radius) []byte {
	palette := t.Light
	mode := "light"
	if dark {
		palette = t.Dark
		mode = "dark"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Theme %q (%s, radius %s). Generated by loom theme; regenerate\n", t.Name, mode, radius)
	buf.WriteString("// with 'loom theme' rather than editing the colors by hand.\n")
	buf.WriteString("\n//go:build loomui\n\npackage ui\n\n")
	buf.WriteString("import \"github.com/charmbracelet/lipgloss\"\n\n")

	buf.WriteString("var (\n")
	for _, slot := range palette.Slots() {
		fmt.Fprintf(&buf, "\t%s = lipgloss.Color(%q)\n", slot.Name, slot.Color.Hex())
	}
	buf.WriteString(")\n\n")
	fmt.Fprintf(&buf, "// RadiusPx is the shared corner radius in pixels.\nconst RadiusPx = %d\n", radius.Px())

	return buf.Bytes()
}
