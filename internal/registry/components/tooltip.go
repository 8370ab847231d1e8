//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// TooltipOption configures a Tooltip component.
type TooltipOption func(*tooltipConfig)

type tooltipConfig struct {
	above bool
}

// TooltipAbove places the hint above the anchor instead of below.
func TooltipAbove() TooltipOption {
	return func(c *tooltipConfig) {
		c.above = true
	}
}

// Tooltip renders an anchor with a short hint attached to it.
func Tooltip(anchor, hint string, opts ...TooltipOption) string {
	var cfg tooltipConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	bubble := lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPopover).
		Foreground(ColorPopoverForeground).
		Render(hint)

	if cfg.above {
		return lipgloss.JoinVertical(lipgloss.Left, bubble, anchor)
	}
	return lipgloss.JoinVertical(lipgloss.Left, anchor, bubble)
}
