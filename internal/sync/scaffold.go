package sync

import (
	"os"
	"path/filepath"

	"github.com/loomui/loom/internal/errors"
)

// baseSource is the shared-types file every component build needs. It
// is written once by `loom init` and never touched again.
const baseSource = `// Shared types for loom components. Written by 'loom init'; edit
// freely, loom never overwrites this file.

//go:build loomui

package ui

// Variant selects a component's visual emphasis.
type Variant int

const (
	VariantDefault Variant = iota
	VariantSecondary
	VariantDestructive
	VariantOutline
	VariantGhost
)

// Size selects a component's footprint.
type Size int

const (
	SizeSm Size = iota
	SizeMd
	SizeLg
)

// Pad returns the horizontal padding for the size.
func (s Size) Pad() int {
	switch s {
	case SizeSm:
		return 1
	case SizeLg:
		return 3
	default:
		return 2
	}
}
`

// BaseFileName is the scaffold file Scaffold writes into the components
// directory.
const BaseFileName = "base.go"

// Scaffold writes the base.go shared-types file into the components
// directory. An existing file is preserved.
func (s *Syncer) Scaffold() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.New("E303").Wrap(err)
	}
	path := filepath.Join(s.dir, BaseFileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(baseSource), 0o644); err != nil {
		return errors.New("E303").Wrap(err)
	}
	return nil
}
