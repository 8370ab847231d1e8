package registry

// Category classifies a component for listing.
type Category string

const (
	CategoryInput      Category = "input"
	CategoryDisplay    Category = "display"
	CategoryFeedback   Category = "feedback"
	CategoryNavigation Category = "navigation"
	CategoryLayout     Category = "layout"
	CategorySpecial    Category = "special"
)

// DisplayName returns the human-readable category name.
func (c Category) DisplayName() string {
	switch c {
	case CategoryInput:
		return "Input"
	case CategoryDisplay:
		return "Display"
	case CategoryFeedback:
		return "Feedback"
	case CategoryNavigation:
		return "Navigation"
	case CategoryLayout:
		return "Layout"
	case CategorySpecial:
		return "Special"
	default:
		return string(c)
	}
}

// Categories returns every category in listing order.
func Categories() []Category {
	return []Category{
		CategoryInput,
		CategoryDisplay,
		CategoryFeedback,
		CategoryNavigation,
		CategoryLayout,
		CategorySpecial,
	}
}

// Component is the registry metadata for one component.
type Component struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Files       []string `json:"files"`
	DependsOn   []string `json:"dependsOn,omitempty"`
}

// Registry is an immutable, ordered collection of components plus a
// registry version. Construct it once and pass it by reference; there is
// no hidden global instance.
type Registry struct {
	version    string
	components []Component
	byName     map[string]int
}

// New builds a Registry from a component list. The list order is
// preserved for Names and Components.
func New(version string, components []Component) *Registry {
	r := &Registry{
		version:    version,
		components: make([]Component, len(components)),
		byName:     make(map[string]int, len(components)),
	}
	copy(r.components, components)
	for i, c := range r.components {
		r.byName[c.Name] = i
	}
	return r
}

// Version returns the registry version string.
func (r *Registry) Version() string {
	return r.version
}

// Find looks up a component by name.
func (r *Registry) Find(name string) (Component, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Component{}, false
	}
	return r.components[i], true
}

// Names returns all component names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.components))
	for i, c := range r.components {
		names[i] = c.Name
	}
	return names
}

// Components returns a copy of the component list in registry order.
func (r *Registry) Components() []Component {
	out := make([]Component, len(r.components))
	copy(out, r.components)
	return out
}

// ByCategory returns the components with the given category, in
// registry order.
func (r *Registry) ByCategory(cat Category) []Component {
	var out []Component
	for _, c := range r.components {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

// Manifest is the JSON shape served and published for remote consumers.
type Manifest struct {
	ManifestVersion int         `json:"manifestVersion"`
	Version         string      `json:"version"`
	Components      []Component `json:"components"`
}

// Manifest returns the registry as a serializable manifest.
func (r *Registry) Manifest() Manifest {
	return Manifest{
		ManifestVersion: 1,
		Version:         r.version,
		Components:      r.Components(),
	}
}
