//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// SelectOption configures a Select component.
type SelectOption func(*selectConfig)

type selectConfig struct {
	label    string
	selected int
	open     bool
	width    int
}

func defaultSelectConfig() selectConfig {
	return selectConfig{selected: -1, width: 24}
}

// SelectLabel renders a Label above the trigger.
func SelectLabel(label string) SelectOption {
	return func(c *selectConfig) {
		c.label = label
	}
}

// SelectSelected marks the item at index as the current value.
func SelectSelected(index int) SelectOption {
	return func(c *selectConfig) {
		c.selected = index
	}
}

// SelectOpen renders the item list in a Popover below the trigger.
func SelectOpen() SelectOption {
	return func(c *selectConfig) {
		c.open = true
	}
}

// SelectWidth sets the trigger width in cells.
func SelectWidth(w int) SelectOption {
	return func(c *selectConfig) {
		c.width = w
	}
}

// Select renders a dropdown value picker.
func Select(items []string, placeholder string, opts ...SelectOption) string {
	cfg := defaultSelectConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	value := placeholder
	valueStyle := lipgloss.NewStyle().Foreground(ColorMutedForeground)
	if cfg.selected >= 0 && cfg.selected < len(items) {
		value = items[cfg.selected]
		valueStyle = valueStyle.Foreground(ColorForeground)
	}

	trigger := lipgloss.NewStyle().
		Width(cfg.width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorInput).
		Render(valueStyle.Render(value) + " ▾")

	rows := []string{}
	if cfg.label != "" {
		rows = append(rows, Label(cfg.label))
	}
	rows = append(rows, trigger)

	if cfg.open {
		list := ""
		for i, item := range items {
			line := "  " + item
			if i == cfg.selected {
				line = lipgloss.NewStyle().Foreground(ColorPrimary).Render("✓ " + item)
			}
			if i > 0 {
				list += "\n"
			}
			list += line
		}
		rows = append(rows, Popover(list, PopoverWidth(cfg.width)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
