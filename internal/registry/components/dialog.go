//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// DialogOption configures a Dialog component.
type DialogOption func(*dialogConfig)

type dialogConfig struct {
	confirm string
	cancel  string
	width   int
}

func defaultDialogConfig() dialogConfig {
	return dialogConfig{confirm: "OK", cancel: "Cancel", width: 44}
}

// DialogConfirm sets the confirm Button label.
func DialogConfirm(label string) DialogOption {
	return func(c *dialogConfig) {
		c.confirm = label
	}
}

// DialogCancel sets the cancel Button label. An empty label hides the
// cancel button.
func DialogCancel(label string) DialogOption {
	return func(c *dialogConfig) {
		c.cancel = label
	}
}

// DialogWidth sets the dialog width in cells.
func DialogWidth(w int) DialogOption {
	return func(c *dialogConfig) {
		c.width = w
	}
}

// Dialog renders a modal surface with a title, body, and action row.
func Dialog(title, body string, opts ...DialogOption) string {
	cfg := defaultDialogConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(ColorForeground).Render(title)
	text := lipgloss.NewStyle().
		Width(cfg.width - 4).
		Foreground(ColorMutedForeground).
		Render(body)

	actions := Button(cfg.confirm)
	if cfg.cancel != "" {
		actions = lipgloss.JoinHorizontal(lipgloss.Top,
			Button(cfg.cancel, ButtonVariant(VariantOutline)), " ", actions)
	}

	return lipgloss.NewStyle().
		Width(cfg.width).
		Padding(1, 2).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorBorder).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, "", text, "", actions))
}
