// Package registry provides the Loom component catalog.
//
// This package implements the "copy-paste ownership" model for UI
// components. Components are distributed as source code that developers
// add to their projects and own completely.
//
// The catalog is an immutable Registry value constructed by Default()
// (or New for custom catalogs) and passed explicitly to consumers; there
// is no implicit global. Each Component lists its source files and the
// names of the components it depends on.
//
// Resolve flattens a requested set into a dependency-first installation
// order: dependencies always precede the components that declare them,
// shared dependencies appear once, and cycles are surfaced as a
// *CycleError without ever looping.
//
// Component sources are embedded into the binary at build time and
// retrieved with Source:
//
//	reg := registry.Default()
//	order, err := registry.Resolve(reg, []string{"toggle_group"})
//	// order: ["toggle", "toggle_group"]
//	src, err := registry.Source("toggle.go")
package registry
