//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// PopoverOption configures a Popover component.
type PopoverOption func(*popoverConfig)

type popoverConfig struct {
	anchor string
	width  int
}

// PopoverAnchor renders the trigger the overlay is attached to.
func PopoverAnchor(anchor string) PopoverOption {
	return func(c *popoverConfig) {
		c.anchor = anchor
	}
}

// PopoverWidth sets a fixed overlay width in cells.
func PopoverWidth(w int) PopoverOption {
	return func(c *popoverConfig) {
		c.width = w
	}
}

// Popover renders a floating surface anchored to a trigger.
func Popover(content string, opts ...PopoverOption) string {
	var cfg popoverConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Background(ColorPopover).
		Foreground(ColorPopoverForeground)
	if cfg.width > 0 {
		style = style.Width(cfg.width)
	}

	overlay := style.Render(content)
	if cfg.anchor == "" {
		return overlay
	}
	return lipgloss.JoinVertical(lipgloss.Left, cfg.anchor, overlay)
}
