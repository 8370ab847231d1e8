//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// ToastLevel classifies a Toast notification.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// ToastOption configures a Toast component.
type ToastOption func(*toastConfig)

type toastConfig struct {
	level ToastLevel
	width int
}

func defaultToastConfig() toastConfig {
	return toastConfig{width: 36}
}

// ToastWithLevel sets the notification level.
func ToastWithLevel(level ToastLevel) ToastOption {
	return func(c *toastConfig) {
		c.level = level
	}
}

// ToastWidth sets the notification width in cells.
func ToastWidth(w int) ToastOption {
	return func(c *toastConfig) {
		c.width = w
	}
}

// Toast renders a transient notification.
func Toast(message string, opts ...ToastOption) string {
	cfg := defaultToastConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	glyph, accent := "ℹ", ColorForeground
	switch cfg.level {
	case ToastSuccess:
		glyph, accent = "✓", ColorPrimary
	case ToastWarning:
		glyph, accent = "!", ColorAccentForeground
	case ToastError:
		glyph, accent = "✗", ColorDestructive
	}

	return lipgloss.NewStyle().
		Width(cfg.width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Background(ColorPopover).
		Foreground(ColorPopoverForeground).
		Render(lipgloss.NewStyle().Foreground(accent).Bold(true).Render(glyph) + " " + message)
}
