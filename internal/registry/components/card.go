//go:build loomui

package ui

import "github.com/charmbracelet/lipgloss"

// CardOption configures a Card component.
type CardOption func(*cardConfig)

type cardConfig struct {
	title  string
	footer string
	width  int
}

func defaultCardConfig() cardConfig {
	return cardConfig{width: 40}
}

// CardTitle sets the card header text.
func CardTitle(title string) CardOption {
	return func(c *cardConfig) {
		c.title = title
	}
}

// CardFooter sets the card footer text.
func CardFooter(footer string) CardOption {
	return func(c *cardConfig) {
		c.footer = footer
	}
}

// CardWidth sets the card width in cells.
func CardWidth(w int) CardOption {
	return func(c *cardConfig) {
		c.width = w
	}
}

// Card renders a bordered surface with optional header and footer.
func Card(body string, opts ...CardOption) string {
	cfg := defaultCardConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	inner := cfg.width - 4

	sections := []string{}
	if cfg.title != "" {
		sections = append(sections,
			lipgloss.NewStyle().Bold(true).Foreground(ColorCardForeground).Render(cfg.title))
	}
	sections = append(sections,
		lipgloss.NewStyle().Width(inner).Foreground(ColorCardForeground).Render(body))
	if cfg.footer != "" {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(ColorMutedForeground).Render(cfg.footer))
	}

	return lipgloss.NewStyle().
		Width(cfg.width).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
