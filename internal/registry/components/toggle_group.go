//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// ToggleGroupOption configures a ToggleGroup component.
type ToggleGroupOption func(*toggleGroupConfig)

type toggleGroupConfig struct {
	selected map[int]bool
}

// ToggleGroupSelected marks the items at the given indexes as pressed.
func ToggleGroupSelected(indexes ...int) ToggleGroupOption {
	return func(c *toggleGroupConfig) {
		for _, i := range indexes {
			c.selected[i] = true
		}
	}
}

// ToggleGroup renders a row of Toggle items sharing a single selection state.
func ToggleGroup(items []string, opts ...ToggleGroupOption) string {
	cfg := toggleGroupConfig{selected: make(map[int]bool)}
	for _, opt := range opts {
		opt(&cfg)
	}

	parts := make([]string, len(items))
	for i, item := range items {
		if cfg.selected[i] {
			parts[i] = Toggle(item, TogglePressed())
		} else {
			parts[i] = Toggle(item)
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}
