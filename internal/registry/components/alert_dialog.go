//go:build loomui

package ui

// AlertDialogOption configures an AlertDialog component.
type AlertDialogOption func(*alertDialogConfig)

type alertDialogConfig struct {
	action string
	width  int
}

func defaultAlertDialogConfig() alertDialogConfig {
	return alertDialogConfig{action: "Continue", width: 44}
}

// AlertDialogAction sets the destructive action label.
func AlertDialogAction(label string) AlertDialogOption {
	return func(c *alertDialogConfig) {
		c.action = label
	}
}

// AlertDialogWidth sets the dialog width in cells.
func AlertDialogWidth(w int) AlertDialogOption {
	return func(c *alertDialogConfig) {
		c.width = w
	}
}

// AlertDialog renders a confirmation Dialog for a destructive action.
func AlertDialog(title, body string, opts ...AlertDialogOption) string {
	cfg := defaultAlertDialogConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return Dialog(title, body,
		DialogConfirm(cfg.action),
		DialogCancel("Cancel"),
		DialogWidth(cfg.width))
}
