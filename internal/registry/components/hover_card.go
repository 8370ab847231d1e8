//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// HoverCardOption configures a HoverCard component.
type HoverCardOption func(*hoverCardConfig)

type hoverCardConfig struct {
	width int
}

func defaultHoverCardConfig() hoverCardConfig {
	return hoverCardConfig{width: 32}
}

// HoverCardWidth sets the preview width in cells.
func HoverCardWidth(w int) HoverCardOption {
	return func(c *hoverCardConfig) {
		c.width = w
	}
}

// HoverCard renders a rich preview Popover under a trigger.
func HoverCard(trigger, title, body string, opts ...HoverCardOption) string {
	cfg := defaultHoverCardConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(ColorPopoverForeground).Render(title)
	content := lipgloss.JoinVertical(lipgloss.Left, heading, body)

	return Popover(content, PopoverAnchor(trigger), PopoverWidth(cfg.width))
}
