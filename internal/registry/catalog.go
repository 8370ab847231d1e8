package registry

// CatalogVersion is the version of the built-in component catalog.
const CatalogVersion = "0.1.0"

// Default returns the built-in registry shipped with this binary. The
// component sources referenced by Files are embedded; see embed.go.
func Default() *Registry {
	return New(CatalogVersion, []Component{
		{
			Name:        "button",
			Version:     "0.1.0",
			Description: "A button with multiple variants and sizes",
			Category:    CategoryInput,
			Files:       []string{"button.go"},
		},
		{
			Name:        "label",
			Version:     "0.1.0",
			Description: "A caption tied to a form control",
			Category:    CategoryInput,
			Files:       []string{"label.go"},
		},
		{
			Name:        "input",
			Version:     "0.1.0",
			Description: "A single-line text input",
			Category:    CategoryInput,
			Files:       []string{"input.go"},
			DependsOn:   []string{"label"},
		},
		{
			Name:        "checkbox",
			Version:     "0.1.0",
			Description: "A toggleable checkbox control",
			Category:    CategoryInput,
			Files:       []string{"checkbox.go"},
			DependsOn:   []string{"label"},
		},
		{
			Name:        "switch",
			Version:     "0.1.0",
			Description: "An on/off switch control",
			Category:    CategoryInput,
			Files:       []string{"switch.go"},
			DependsOn:   []string{"label"},
		},
		{
			Name:        "slider",
			Version:     "0.1.0",
			Description: "A draggable range slider",
			Category:    CategoryInput,
			Files:       []string{"slider.go"},
		},
		{
			Name:        "toggle",
			Version:     "0.1.0",
			Description: "A two-state toggle button",
			Category:    CategoryInput,
			Files:       []string{"toggle.go"},
		},
		{
			Name:        "toggle_group",
			Version:     "0.1.0",
			Description: "A set of toggles with single or multiple selection",
			Category:    CategoryInput,
			Files:       []string{"toggle_group.go"},
			DependsOn:   []string{"toggle"},
		},
		{
			Name:        "select",
			Version:     "0.1.0",
			Description: "A dropdown select control",
			Category:    CategoryInput,
			Files:       []string{"select.go"},
			DependsOn:   []string{"popover", "label"},
		},
		{
			Name:        "card",
			Version:     "0.1.0",
			Description: "A content container with header, body, and footer",
			Category:    CategoryLayout,
			Files:       []string{"card.go"},
		},
		{
			Name:        "separator",
			Version:     "0.1.0",
			Description: "A horizontal or vertical divider",
			Category:    CategoryLayout,
			Files:       []string{"separator.go"},
		},
		{
			Name:        "badge",
			Version:     "0.1.0",
			Description: "A small status descriptor",
			Category:    CategoryDisplay,
			Files:       []string{"badge.go"},
		},
		{
			Name:        "tooltip",
			Version:     "0.1.0",
			Description: "A short hint shown on hover",
			Category:    CategoryDisplay,
			Files:       []string{"tooltip.go"},
		},
		{
			Name:        "popover",
			Version:     "0.1.0",
			Description: "An anchored floating panel",
			Category:    CategoryDisplay,
			Files:       []string{"popover.go"},
		},
		{
			Name:        "hover_card",
			Version:     "0.1.0",
			Description: "A rich preview shown on hover",
			Category:    CategoryDisplay,
			Files:       []string{"hover_card.go"},
			DependsOn:   []string{"popover"},
		},
		{
			Name:        "dropdown_menu",
			Version:     "0.1.0",
			Description: "A menu opened from a trigger",
			Category:    CategoryNavigation,
			Files:       []string{"dropdown_menu.go"},
			DependsOn:   []string{"popover"},
		},
		{
			Name:        "alert",
			Version:     "0.1.0",
			Description: "A prominent callout message",
			Category:    CategoryFeedback,
			Files:       []string{"alert.go"},
		},
		{
			Name:        "toast",
			Version:     "0.1.0",
			Description: "A transient notification",
			Category:    CategoryFeedback,
			Files:       []string{"toast.go"},
		},
		{
			Name:        "sonner",
			Version:     "0.1.0",
			Description: "A stacked toast notifier",
			Category:    CategoryFeedback,
			Files:       []string{"sonner.go"},
			DependsOn:   []string{"toast"},
		},
		{
			Name:        "dialog",
			Version:     "0.1.0",
			Description: "A modal dialog window",
			Category:    CategorySpecial,
			Files:       []string{"dialog.go"},
			DependsOn:   []string{"button"},
		},
		{
			Name:        "alert_dialog",
			Version:     "0.1.0",
			Description: "A confirmation dialog that interrupts the user",
			Category:    CategorySpecial,
			Files:       []string{"alert_dialog.go"},
			DependsOn:   []string{"dialog"},
		},
	})
}
