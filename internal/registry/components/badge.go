//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// BadgeOption configures a Badge component.
type BadgeOption func(*badgeConfig)

type badgeConfig struct {
	variant Variant
}

// BadgeVariant sets the badge variant.
func BadgeVariant(v Variant) BadgeOption {
	return func(c *badgeConfig) {
		c.variant = v
	}
}

// Badge renders a small status pill.
func Badge(text string, opts ...BadgeOption) string {
	cfg := badgeConfig{variant: VariantDefault}
	for _, opt := range opts {
		opt(&cfg)
	}

	style := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	switch cfg.variant {
	case VariantSecondary:
		style = style.Background(ColorSecondary).Foreground(ColorSecondaryForeground)
	case VariantDestructive:
		style = style.Background(ColorDestructive).Foreground(ColorDestructiveForeground)
	case VariantOutline:
		style = style.Foreground(ColorForeground).
			Border(lipgloss.NormalBorder()).BorderForeground(ColorBorder)
	default:
		style = style.Background(ColorPrimary).Foreground(ColorPrimaryForeground)
	}

	return style.Render(text)
}
