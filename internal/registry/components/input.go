//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// InputOption configures an Input component.
type InputOption func(*inputConfig)

type inputConfig struct {
	label       string
	placeholder string
	width       int
	focused     bool
}

func defaultInputConfig() inputConfig {
	return inputConfig{width: 24}
}

// InputLabel renders a Label above the field.
func InputLabel(label string) InputOption {
	return func(c *inputConfig) {
		c.label = label
	}
}

// InputPlaceholder sets the placeholder text shown when value is empty.
func InputPlaceholder(text string) InputOption {
	return func(c *inputConfig) {
		c.placeholder = text
	}
}

// InputWidth sets the field width in cells.
func InputWidth(w int) InputOption {
	return func(c *inputConfig) {
		c.width = w
	}
}

// InputFocused renders the field with the focus ring color.
func InputFocused() InputOption {
	return func(c *inputConfig) {
		c.focused = true
	}
}

// Input renders a single-line text input.
func Input(value string, opts ...InputOption) string {
	cfg := defaultInputConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	text := value
	style := lipgloss.NewStyle().
		Width(cfg.width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorInput)

	if text == "" && cfg.placeholder != "" {
		text = cfg.placeholder
		style = style.Foreground(ColorMutedForeground)
	}
	if cfg.focused {
		style = style.BorderForeground(ColorRing)
	}

	field := style.Render(text)
	if cfg.label == "" {
		return field
	}
	return lipgloss.JoinVertical(lipgloss.Left, Label(cfg.label), field)
}
