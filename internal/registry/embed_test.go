package registry

import (
	"strings"
	"testing"
)

func TestSource_AllCatalogFilesEmbedded(t *testing.T) {
	for _, c := range Default().Components() {
		for _, file := range c.Files {
			content, err := Source(file)
			if err != nil {
				t.Errorf("%s: missing embedded source %s: %v", c.Name, file, err)
				continue
			}
			if !strings.Contains(string(content), "package ui") {
				t.Errorf("%s: %s should declare package ui", c.Name, file)
			}
			if !strings.Contains(string(content), "//go:build loomui") {
				t.Errorf("%s: %s should carry the loomui build tag", c.Name, file)
			}
		}
	}
}

func TestSource_Unknown(t *testing.T) {
	if _, err := Source("nonexistent.go"); err == nil {
		t.Error("expected error for unknown source file")
	}
	if HasSource("nonexistent.go") {
		t.Error("HasSource should be false for unknown file")
	}
}

func TestHasSource(t *testing.T) {
	if !HasSource("button.go") {
		t.Error("button.go should be embedded")
	}
}

func TestSourceFS_ListsCatalogFiles(t *testing.T) {
	fsys, err := SourceFS()
	if err != nil {
		t.Fatalf("SourceFS error: %v", err)
	}

	for _, c := range Default().Components() {
		for _, file := range c.Files {
			if _, err := fsys.Open(file); err != nil {
				t.Errorf("SourceFS missing %s: %v", file, err)
			}
		}
	}
}
