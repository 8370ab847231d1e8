package registry

import (
	"reflect"
	"testing"
)

func testRegistry() *Registry {
	return New("1.0.0", []Component{
		{Name: "utils", Files: []string{"utils.go"}},
		{Name: "button", Files: []string{"button.go"}, DependsOn: []string{"utils"}},
		{Name: "focustrap", Files: []string{"focustrap.go"}, DependsOn: []string{"utils"}},
		{Name: "dialog", Files: []string{"dialog.go"}, DependsOn: []string{"utils", "focustrap"}},
	})
}

func TestNew_Immutable(t *testing.T) {
	input := []Component{{Name: "button"}}
	reg := New("1.0.0", input)

	// Mutating the input slice must not affect the registry.
	input[0].Name = "mutated"

	if _, ok := reg.Find("button"); !ok {
		t.Error("registry should keep its own copy of the component list")
	}
}

func TestRegistry_Find(t *testing.T) {
	reg := testRegistry()

	c, ok := reg.Find("dialog")
	if !ok {
		t.Fatal("dialog should be found")
	}
	if !reflect.DeepEqual(c.DependsOn, []string{"utils", "focustrap"}) {
		t.Errorf("DependsOn = %v", c.DependsOn)
	}

	if _, ok := reg.Find("nonexistent"); ok {
		t.Error("nonexistent component should not be found")
	}
}

func TestRegistry_NamesOrder(t *testing.T) {
	reg := testRegistry()

	want := []string{"utils", "button", "focustrap", "dialog"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistry_ByCategory(t *testing.T) {
	reg := Default()

	inputs := reg.ByCategory(CategoryInput)
	if len(inputs) == 0 {
		t.Fatal("default registry should have input components")
	}
	for _, c := range inputs {
		if c.Category != CategoryInput {
			t.Errorf("%s: category = %q", c.Name, c.Category)
		}
	}
}

func TestRegistry_Manifest(t *testing.T) {
	reg := testRegistry()

	m := reg.Manifest()
	if m.ManifestVersion != 1 {
		t.Errorf("ManifestVersion = %d, want 1", m.ManifestVersion)
	}
	if m.Version != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0", m.Version)
	}
	if len(m.Components) != 4 {
		t.Errorf("Components = %d, want 4", len(m.Components))
	}
}

func TestCategory_DisplayName(t *testing.T) {
	if got := CategoryInput.DisplayName(); got != "Input" {
		t.Errorf("DisplayName() = %q, want Input", got)
	}
	if got := Category("custom").DisplayName(); got != "custom" {
		t.Errorf("DisplayName() = %q, want custom", got)
	}
}

func TestDefault_DeclaredDependenciesExist(t *testing.T) {
	reg := Default()

	for _, c := range reg.Components() {
		if c.Version == "" {
			t.Errorf("%s: missing version", c.Name)
		}
		if c.Description == "" {
			t.Errorf("%s: missing description", c.Name)
		}
		if len(c.Files) == 0 {
			t.Errorf("%s: no files", c.Name)
		}
		for _, dep := range c.DependsOn {
			if _, ok := reg.Find(dep); !ok {
				t.Errorf("%s: dependency %q not in registry", c.Name, dep)
			}
		}
	}
}
