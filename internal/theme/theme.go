package theme

import (
	"fmt"
	"math"
)

// HSL is a color in hue/saturation/lightness space. H is in degrees,
// S and L are percentages in [0, 100].
type HSL struct {
	H float64
	S float64
	L float64
}

// Hex renders the color as a lowercase #rrggbb string.
func (c HSL) Hex() string {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := c.S / 100
	l := c.L / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)))
}

// Palette is one full set of theme colors. Every slot maps to a
// generated lipgloss color variable.
type Palette struct {
	Background            HSL
	Foreground            HSL
	Card                  HSL
	CardForeground        HSL
	Popover               HSL
	PopoverForeground     HSL
	Primary               HSL
	PrimaryForeground     HSL
	Secondary             HSL
	SecondaryForeground   HSL
	Muted                 HSL
	MutedForeground       HSL
	Accent                HSL
	AccentForeground      HSL
	Destructive           HSL
	DestructiveForeground HSL
	Border                HSL
	Input                 HSL
	Ring                  HSL
}

// Slot pairs a generated variable name with its color.
type Slot struct {
	Name  string
	Color HSL
}

// Slots returns the palette in generation order.
func (p Palette) Slots() []Slot {
	return []Slot{
		{"ColorBackground", p.Background},
		{"ColorForeground", p.Foreground},
		{"ColorCard", p.Card},
		{"ColorCardForeground", p.CardForeground},
		{"ColorPopover", p.Popover},
		{"ColorPopoverForeground", p.PopoverForeground},
		{"ColorPrimary", p.Primary},
		{"ColorPrimaryForeground", p.PrimaryForeground},
		{"ColorSecondary", p.Secondary},
		{"ColorSecondaryForeground", p.SecondaryForeground},
		{"ColorMuted", p.Muted},
		{"ColorMutedForeground", p.MutedForeground},
		{"ColorAccent", p.Accent},
		{"ColorAccentForeground", p.AccentForeground},
		{"ColorDestructive", p.Destructive},
		{"ColorDestructiveForeground", p.DestructiveForeground},
		{"ColorBorder", p.Border},
		{"ColorInput", p.Input},
		{"ColorRing", p.Ring},
	}
}

// Theme bundles the light and dark palettes of one preset.
type Theme struct {
	Name  string
	Light Palette
	Dark  Palette
}

// Radius is the corner radius scale recorded in loom.toml.
type Radius string

const (
	RadiusNone Radius = "none"
	RadiusSm   Radius = "sm"
	RadiusMd   Radius = "md"
	RadiusLg   Radius = "lg"
	RadiusFull Radius = "full"
)

// Px returns the radius in pixels. Unknown values fall back to the
// medium radius.
func (r Radius) Px() int {
	switch r {
	case RadiusNone:
		return 0
	case RadiusSm:
		return 4
	case RadiusLg:
		return 8
	case RadiusFull:
		return 9999
	default:
		return 6
	}
}
