//go:build loomui

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SeparatorOption configures a Separator component.
type SeparatorOption func(*separatorConfig)

type separatorConfig struct {
	vertical bool
	span     int
}

func defaultSeparatorConfig() separatorConfig {
	return separatorConfig{span: 32}
}

// SeparatorVertical renders the rule top to bottom instead of left to right.
func SeparatorVertical() SeparatorOption {
	return func(c *separatorConfig) {
		c.vertical = true
	}
}

// SeparatorSpan sets the rule length in cells.
func SeparatorSpan(n int) SeparatorOption {
	return func(c *separatorConfig) {
		if n > 0 {
			c.span = n
		}
	}
}

// Separator renders a thin rule dividing content.
func Separator(opts ...SeparatorOption) string {
	cfg := defaultSeparatorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	style := lipgloss.NewStyle().Foreground(ColorBorder)
	if cfg.vertical {
		return style.Render(strings.TrimSuffix(strings.Repeat("│\n", cfg.span), "\n"))
	}
	return style.Render(strings.Repeat("─", cfg.span))
}
