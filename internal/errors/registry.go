package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E101-E119)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Project not initialized",
		Detail:   "No loom.toml was found in this directory or any parent directory.",
		DocURL:   "https://loomui.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "loom.toml could not be parsed.",
		DocURL:   "https://loomui.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field holds a value outside its allowed range.",
		DocURL:   "https://loomui.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Could not write configuration file",
		Detail:   "loom.toml could not be written to disk.",
		DocURL:   "https://loomui.dev/docs/errors/E104",
	},

	// ============================================
	// Registry Errors (E201-E219)
	// ============================================

	"E201": {
		Category: CategoryRegistry,
		Message:  "Unknown component",
		Detail:   "The requested component does not exist in the registry.",
		DocURL:   "https://loomui.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryRegistry,
		Message:  "Dependency cycle detected",
		Detail:   "The component dependency graph contains a cycle. Installation order is best-effort.",
		DocURL:   "https://loomui.dev/docs/errors/E202",
	},
	"E203": {
		Category: CategoryRegistry,
		Message:  "Component source missing",
		Detail:   "The registry lists a file that has no embedded source. This is a packaging bug.",
		DocURL:   "https://loomui.dev/docs/errors/E203",
	},
	"E204": {
		Category: CategoryRegistry,
		Message:  "Unknown theme",
		Detail:   "The requested theme preset does not exist.",
		DocURL:   "https://loomui.dev/docs/errors/E204",
	},

	// ============================================
	// Sync Errors (E301-E319)
	// ============================================

	"E301": {
		Category: CategorySync,
		Message:  "Local component file missing",
		Detail:   "A component is recorded as installed but its file was not found on disk.",
		DocURL:   "https://loomui.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategorySync,
		Message:  "Could not write backup file",
		Detail:   "The pre-update backup could not be created. The component was left untouched.",
		DocURL:   "https://loomui.dev/docs/errors/E302",
	},
	"E303": {
		Category: CategorySync,
		Message:  "Could not write component file",
		Detail:   "The component file could not be written to the components directory.",
		DocURL:   "https://loomui.dev/docs/errors/E303",
	},

	// ============================================
	// CLI Errors (E401-E419)
	// ============================================

	"E401": {
		Category: CategoryCLI,
		Message:  "Registry server error",
		Detail:   "The registry HTTP server could not be started.",
		DocURL:   "https://loomui.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryCLI,
		Message:  "Registry publish failed",
		Detail:   "The registry could not be uploaded to the object store.",
		DocURL:   "https://loomui.dev/docs/errors/E402",
	},
}
