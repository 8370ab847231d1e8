package theme

import (
	"sort"

	"github.com/loomui/loom/internal/errors"
)

// zinc is the reference preset. Every other preset is derived from it
// by re-tinting the neutral slots with a different hue and saturation
// scale; the destructive slots are shared across presets.
var zinc = Theme{
	Name: "zinc",
	Light: Palette{
		Background:            HSL{0, 0, 100},
		Foreground:            HSL{240, 10, 3.9},
		Card:                  HSL{0, 0, 100},
		CardForeground:        HSL{240, 10, 3.9},
		Popover:               HSL{0, 0, 100},
		PopoverForeground:     HSL{240, 10, 3.9},
		Primary:               HSL{240, 5.9, 10},
		PrimaryForeground:     HSL{0, 0, 98},
		Secondary:             HSL{240, 4.8, 95.9},
		SecondaryForeground:   HSL{240, 5.9, 10},
		Muted:                 HSL{240, 4.8, 95.9},
		MutedForeground:       HSL{240, 3.8, 46.1},
		Accent:                HSL{240, 4.8, 95.9},
		AccentForeground:      HSL{240, 5.9, 10},
		Destructive:           HSL{0, 84.2, 60.2},
		DestructiveForeground: HSL{0, 0, 98},
		Border:                HSL{240, 5.9, 90},
		Input:                 HSL{240, 5.9, 90},
		Ring:                  HSL{240, 5.9, 10},
	},
	Dark: Palette{
		Background:            HSL{240, 10, 3.9},
		Foreground:            HSL{0, 0, 98},
		Card:                  HSL{240, 10, 3.9},
		CardForeground:        HSL{0, 0, 98},
		Popover:               HSL{240, 10, 3.9},
		PopoverForeground:     HSL{0, 0, 98},
		Primary:               HSL{0, 0, 98},
		PrimaryForeground:     HSL{240, 5.9, 10},
		Secondary:             HSL{240, 3.7, 15.9},
		SecondaryForeground:   HSL{0, 0, 98},
		Muted:                 HSL{240, 3.7, 15.9},
		MutedForeground:       HSL{240, 5, 64.9},
		Accent:                HSL{240, 3.7, 15.9},
		AccentForeground:      HSL{0, 0, 98},
		Destructive:           HSL{0, 62.8, 30.6},
		DestructiveForeground: HSL{0, 0, 98},
		Border:                HSL{240, 3.7, 15.9},
		Input:                 HSL{240, 3.7, 15.9},
		Ring:                  HSL{240, 4.9, 83.9},
	},
}

// tint describes how a derived preset re-colors the zinc neutrals.
type tint struct {
	hue      float64
	satScale float64
}

var tints = map[string]tint{
	"slate":   {hue: 215, satScale: 3.2},
	"gray":    {hue: 220, satScale: 1.8},
	"stone":   {hue: 25, satScale: 1.1},
	"neutral": {hue: 0, satScale: 0},
}

// Names lists the available presets in sorted order.
func Names() []string {
	names := []string{zinc.Name}
	for name := range tints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named theme. Unknown names yield an E204 error
// listing the available presets.
func Preset(name string) (*Theme, error) {
	if name == zinc.Name {
		t := zinc
		return &t, nil
	}
	tn, ok := tints[name]
	if !ok {
		return nil, errors.Newf("E204", "Unknown theme %q", name).
			WithSuggestion("Available themes: " + join(Names()))
	}

	t := Theme{
		Name:  name,
		Light: retint(zinc.Light, tn),
		Dark:  retint(zinc.Dark, tn),
	}
	return &t, nil
}

func retint(p Palette, tn tint) Palette {
	slots := []*HSL{
		&p.Background, &p.Foreground,
		&p.Card, &p.CardForeground,
		&p.Popover, &p.PopoverForeground,
		&p.Primary, &p.PrimaryForeground,
		&p.Secondary, &p.SecondaryForeground,
		&p.Muted, &p.MutedForeground,
		&p.Accent, &p.AccentForeground,
		&p.Border, &p.Input, &p.Ring,
	}
	for _, c := range slots {
		c.H = tn.hue
		c.S = clampPct(c.S * tn.satScale)
	}
	return p
}

func clampPct(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

func join(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
