//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// AlertOption configures an Alert component.
type AlertOption func(*alertConfig)

type alertConfig struct {
	variant Variant
	width   int
}

func defaultAlertConfig() alertConfig {
	return alertConfig{variant: VariantDefault, width: 48}
}

// AlertVariant sets the alert variant.
func AlertVariant(v Variant) AlertOption {
	return func(c *alertConfig) {
		c.variant = v
	}
}

// AlertWidth sets the alert width in cells.
func AlertWidth(w int) AlertOption {
	return func(c *alertConfig) {
		c.width = w
	}
}

// Alert renders a callout with a title and descriptive body.
func Alert(title, body string, opts ...AlertOption) string {
	cfg := defaultAlertConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	accent := ColorForeground
	if cfg.variant == VariantDestructive {
		accent = ColorDestructive
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(title)
	text := lipgloss.NewStyle().Foreground(ColorMutedForeground).Render(body)

	return lipgloss.NewStyle().
		Width(cfg.width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, text))
}
