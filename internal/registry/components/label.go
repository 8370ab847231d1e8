//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// LabelOption configures a Label component.
type LabelOption func(*labelConfig)

type labelConfig struct {
	required bool
	muted    bool
}

// LabelRequired appends a required marker to the label.
func LabelRequired() LabelOption {
	return func(c *labelConfig) {
		c.required = true
	}
}

// LabelMuted renders the label in the muted foreground color.
func LabelMuted() LabelOption {
	return func(c *labelConfig) {
		c.muted = true
	}
}

// Label renders a caption for a form control.
func Label(text string, opts ...LabelOption) string {
	var cfg labelConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	fg := ColorForeground
	if cfg.muted {
		fg = ColorMutedForeground
	}

	out := lipgloss.NewStyle().Bold(true).Foreground(fg).Render(text)
	if cfg.required {
		out += lipgloss.NewStyle().Foreground(ColorDestructive).Render(" *")
	}
	return out
}
