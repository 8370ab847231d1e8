//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// CheckboxOption configures a Checkbox component.
type CheckboxOption func(*checkboxConfig)

type checkboxConfig struct {
	checked  bool
	disabled bool
}

// CheckboxChecked renders the box in its checked state.
func CheckboxChecked() CheckboxOption {
	return func(c *checkboxConfig) {
		c.checked = true
	}
}

// CheckboxDisabled renders the box in its disabled state.
func CheckboxDisabled() CheckboxOption {
	return func(c *checkboxConfig) {
		c.disabled = true
	}
}

// Checkbox renders a checkbox with a Label caption.
func Checkbox(caption string, opts ...CheckboxOption) string {
	var cfg checkboxConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	glyph := "[ ]"
	style := lipgloss.NewStyle().Foreground(ColorForeground)
	if cfg.checked {
		glyph = "[x]"
		style = style.Foreground(ColorPrimary).Bold(true)
	}
	if cfg.disabled {
		style = style.Faint(true)
	}

	return style.Render(glyph) + " " + Label(caption)
}
