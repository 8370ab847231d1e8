//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// ToggleOption configures a Toggle component.
type ToggleOption func(*toggleConfig)

type toggleConfig struct {
	pressed  bool
	disabled bool
}

// TogglePressed renders the toggle in its pressed state.
func TogglePressed() ToggleOption {
	return func(c *toggleConfig) {
		c.pressed = true
	}
}

// ToggleDisabled renders the toggle in its disabled state.
func ToggleDisabled() ToggleOption {
	return func(c *toggleConfig) {
		c.disabled = true
	}
}

// Toggle renders a pressable two-state button.
func Toggle(label string, opts ...ToggleOption) string {
	var cfg toggleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	style := lipgloss.NewStyle().Padding(0, 1).Foreground(ColorMutedForeground)
	if cfg.pressed {
		style = style.Background(ColorAccent).Foreground(ColorAccentForeground).Bold(true)
	}
	if cfg.disabled {
		style = style.Faint(true)
	}

	return style.Render(label)
}
