//go:build loomui

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SliderOption configures a Slider component.
type SliderOption func(*sliderConfig)

type sliderConfig struct {
	min   float64
	max   float64
	width int
}

func defaultSliderConfig() sliderConfig {
	return sliderConfig{min: 0, max: 100, width: 20}
}

// SliderRange sets the value range. Ignored when max <= min.
func SliderRange(min, max float64) SliderOption {
	return func(c *sliderConfig) {
		if max > min {
			c.min, c.max = min, max
		}
	}
}

// SliderWidth sets the track width in cells.
func SliderWidth(w int) SliderOption {
	return func(c *sliderConfig) {
		if w > 2 {
			c.width = w
		}
	}
}

// Slider renders a horizontal track with the thumb at value.
func Slider(value float64, opts ...SliderOption) string {
	cfg := defaultSliderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if value < cfg.min {
		value = cfg.min
	}
	if value > cfg.max {
		value = cfg.max
	}

	pos := int(float64(cfg.width-1) * (value - cfg.min) / (cfg.max - cfg.min))
	filled := lipgloss.NewStyle().Foreground(ColorPrimary)
	rest := lipgloss.NewStyle().Foreground(ColorMuted)

	return filled.Render(strings.Repeat("━", pos)+"●") +
		rest.Render(strings.Repeat("─", cfg.width-1-pos))
}
