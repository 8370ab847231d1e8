package registry

import (
	"embed"
	"io/fs"
)

// Component payload files. They carry the "loomui" build tag so the
// toolchain never compiles them into this binary; they are shipped as
// text and installed into user projects as package ui sources.
//
//go:embed components
var embeddedComponents embed.FS

// Source returns the embedded content of one component file, e.g.
// "button.go".
func Source(file string) ([]byte, error) {
	return embeddedComponents.ReadFile("components/" + file)
}

// HasSource reports whether a component file is embedded.
func HasSource(file string) bool {
	_, err := embeddedComponents.ReadFile("components/" + file)
	return err == nil
}

// SourceFS returns the embedded filesystem rooted at the components
// directory, for consumers that serve or publish the whole payload.
func SourceFS() (fs.FS, error) {
	return fs.Sub(embeddedComponents, "components")
}
