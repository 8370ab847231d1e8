//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// SonnerItem is one queued notification in a Sonner stack.
type SonnerItem struct {
	Message string
	Level   ToastLevel
}

// SonnerOption configures a Sonner component.
type SonnerOption func(*sonnerConfig)

type sonnerConfig struct {
	max   int
	width int
}

func defaultSonnerConfig() sonnerConfig {
	return sonnerConfig{max: 3, width: 36}
}

// SonnerMax caps how many notifications are shown at once. The newest
// items win.
func SonnerMax(n int) SonnerOption {
	return func(c *sonnerConfig) {
		if n > 0 {
			c.max = n
		}
	}
}

// SonnerWidth sets the width of each Toast in the stack.
func SonnerWidth(w int) SonnerOption {
	return func(c *sonnerConfig) {
		c.width = w
	}
}

// Sonner renders a stack of Toast notifications, newest at the bottom.
func Sonner(items []SonnerItem, opts ...SonnerOption) string {
	cfg := defaultSonnerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(items) > cfg.max {
		items = items[len(items)-cfg.max:]
	}

	rows := make([]string, len(items))
	for i, item := range items {
		rows[i] = Toast(item.Message, ToastWithLevel(item.Level), ToastWidth(cfg.width))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rows...)
}
