// Package config loads and saves the loom.toml project configuration.
//
// The file lives at the project root and records where generated
// sources go, the active theme defaults, and which components have been
// installed from the registry.
package config
