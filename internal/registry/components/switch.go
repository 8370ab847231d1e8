//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// SwitchOption configures a Switch component.
type SwitchOption func(*switchConfig)

type switchConfig struct {
	on      bool
	caption string
}

// SwitchOn renders the switch in its on position.
func SwitchOn() SwitchOption {
	return func(c *switchConfig) {
		c.on = true
	}
}

// SwitchLabel renders a Label caption next to the track.
func SwitchLabel(caption string) SwitchOption {
	return func(c *switchConfig) {
		c.caption = caption
	}
}

// Switch renders a two-position toggle track.
func Switch(opts ...SwitchOption) string {
	var cfg switchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	track := "(o  )"
	style := lipgloss.NewStyle().Foreground(ColorMutedForeground)
	if cfg.on {
		track = "(  o)"
		style = style.Foreground(ColorPrimary).Bold(true)
	}

	out := style.Render(track)
	if cfg.caption != "" {
		out += " " + Label(cfg.caption, LabelMuted())
	}
	return out
}
