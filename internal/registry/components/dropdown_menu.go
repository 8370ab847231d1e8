//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// DropdownMenuOption configures a DropdownMenu component.
type DropdownMenuOption func(*dropdownMenuConfig)

type dropdownMenuConfig struct {
	trigger     string
	highlighted int
	width       int
}

func defaultDropdownMenuConfig() dropdownMenuConfig {
	return dropdownMenuConfig{highlighted: -1, width: 24}
}

// DropdownMenuTrigger renders the menu below the given trigger.
func DropdownMenuTrigger(trigger string) DropdownMenuOption {
	return func(c *dropdownMenuConfig) {
		c.trigger = trigger
	}
}

// DropdownMenuHighlighted marks the item at index as the active row.
func DropdownMenuHighlighted(index int) DropdownMenuOption {
	return func(c *dropdownMenuConfig) {
		c.highlighted = index
	}
}

// DropdownMenuWidth sets the menu width in cells.
func DropdownMenuWidth(w int) DropdownMenuOption {
	return func(c *dropdownMenuConfig) {
		c.width = w
	}
}

// DropdownMenu renders an action menu inside a Popover. An empty item
// is drawn as a separator row.
func DropdownMenu(items []string, opts ...DropdownMenuOption) string {
	cfg := defaultDropdownMenuConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rows := make([]string, 0, len(items))
	for i, item := range items {
		switch {
		case item == "":
			rows = append(rows, lipgloss.NewStyle().Foreground(ColorBorder).Render("────"))
		case i == cfg.highlighted:
			rows = append(rows, lipgloss.NewStyle().
				Background(ColorAccent).Foreground(ColorAccentForeground).Render(" "+item+" "))
		default:
			rows = append(rows, " "+item)
		}
	}

	menu := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return Popover(menu, PopoverAnchor(cfg.trigger), PopoverWidth(cfg.width))
}
