// Package errors provides structured, actionable error messages for Loom.
//
// Each error has a unique code (e.g., "E201") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: loom.toml problems (missing file, parse failures)
//   - registry: component catalog problems (unknown names, cycles)
//   - sync: diff/update workflow problems (missing local files)
//   - cli: command-level problems (server, publish)
//
// # Usage
//
//	err := errors.New("E201").
//	    WithDetail("Component 'buttn' not found in registry").
//	    WithSuggestion("Run 'loom list' to see available components")
//
//	fmt.Println(err.Format())
package errors
