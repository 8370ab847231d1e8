//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// ButtonOption configures a Button component.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	variant  Variant
	size     Size
	disabled bool
}

func defaultButtonConfig() buttonConfig {
	return buttonConfig{
		variant: VariantDefault,
		size:    SizeMd,
	}
}

// ButtonVariant sets the button variant.
func ButtonVariant(v Variant) ButtonOption {
	return func(c *buttonConfig) {
		c.variant = v
	}
}

// ButtonSize sets the button size.
func ButtonSize(s Size) ButtonOption {
	return func(c *buttonConfig) {
		c.size = s
	}
}

// ButtonDisabled renders the button in its disabled state.
func ButtonDisabled() ButtonOption {
	return func(c *buttonConfig) {
		c.disabled = true
	}
}

// Button renders a button with the configured variant and size.
func Button(label string, opts ...ButtonOption) string {
	cfg := defaultButtonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Padding(0, cfg.size.Pad())

	switch cfg.variant {
	case VariantSecondary:
		style = style.Background(ColorSecondary).Foreground(ColorSecondaryForeground)
	case VariantDestructive:
		style = style.Background(ColorDestructive).Foreground(ColorDestructiveForeground)
	case VariantOutline:
		style = style.Foreground(ColorForeground).
			Border(lipgloss.NormalBorder()).BorderForeground(ColorBorder)
	case VariantGhost:
		style = style.Foreground(ColorMutedForeground)
	default:
		style = style.Background(ColorPrimary).Foreground(ColorPrimaryForeground)
	}

	if cfg.disabled {
		style = style.Faint(true)
	}

	return style.Render(label)
}
