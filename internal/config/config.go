package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/loomui/loom/internal/errors"
)

// FileName is the project configuration file loom looks for.
const FileName = "loom.toml"

// Config is the persistent project configuration stored in loom.toml.
type Config struct {
	Project  ProjectConfig  `toml:"project"`
	Theme    ThemeConfig    `toml:"theme"`
	Registry RegistryConfig `toml:"registry"`
}

// ProjectConfig locates the generated sources inside the user's module.
type ProjectConfig struct {
	ComponentsDir string `toml:"components_dir"`
	ThemeFile     string `toml:"theme_file"`
}

// ThemeConfig holds the visual defaults applied when generating the
// theme file.
type ThemeConfig struct {
	BaseColor string `toml:"base_color"`
	Radius    string `toml:"radius"`
	DarkMode  bool   `toml:"dark_mode"`
}

// RegistryConfig records which registry the project tracks and what has
// been installed from it.
type RegistryConfig struct {
	URL       string   `toml:"url,omitempty"`
	Version   string   `toml:"version"`
	Installed []string `toml:"installed"`
}

// Default returns the configuration written by `loom init`.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			ComponentsDir: "ui",
			ThemeFile:     filepath.Join("ui", "theme.go"),
		},
		Theme: ThemeConfig{
			BaseColor: "zinc",
			Radius:    "md",
			DarkMode:  false,
		},
		Registry: RegistryConfig{
			Version:   "0.1.0",
			Installed: []string{},
		},
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithSuggestion("Run 'loom init' to set up this project.")
		}
		return nil, errors.New("E102").Wrap(err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.New("E102").
			WithDetail(err.Error()).
			WithSuggestion("Fix the TOML syntax in loom.toml or re-run 'loom init'.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromDir finds the project root at or above dir and loads its
// configuration. The returned root is the directory containing loom.toml.
func LoadFromDir(dir string) (*Config, string, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(filepath.Join(root, FileName))
	if err != nil {
		return nil, "", err
	}
	return cfg, root, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New("E104").Wrap(err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.New("E104").Wrap(err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return errors.New("E104").Wrap(err)
	}
	return nil
}

// Validate checks field values against their allowed ranges.
func (c *Config) Validate() error {
	if c.Project.ComponentsDir == "" {
		return errors.New("E103").
			WithDetail("project.components_dir must not be empty.")
	}
	if c.Project.ThemeFile == "" {
		return errors.New("E103").
			WithDetail("project.theme_file must not be empty.")
	}
	switch c.Theme.Radius {
	case "none", "sm", "md", "lg", "full":
	default:
		return errors.New("E103").
			WithDetail("theme.radius must be one of: none, sm, md, lg, full.").
			WithSuggestion("Edit the [theme] section of loom.toml.")
	}
	return nil
}

// Exists reports whether dir contains a loom.toml.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// FindProjectRoot walks from start upward until it finds a directory
// containing loom.toml.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.New("E101").Wrap(err)
	}

	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E101").
				WithSuggestion("Run 'loom init' to set up this project.")
		}
		dir = parent
	}
}

// IsInstalled reports whether name is recorded in the installed list.
func (c *Config) IsInstalled(name string) bool {
	for _, n := range c.Registry.Installed {
		if n == name {
			return true
		}
	}
	return false
}

// MarkInstalled records name in the installed list. The list stays
// sorted and free of duplicates.
func (c *Config) MarkInstalled(name string) {
	if c.IsInstalled(name) {
		return
	}
	c.Registry.Installed = append(c.Registry.Installed, name)
	sort.Strings(c.Registry.Installed)
}

// UnmarkInstalled removes name from the installed list. It reports
// whether the name was present.
func (c *Config) UnmarkInstalled(name string) bool {
	for i, n := range c.Registry.Installed {
		if n == name {
			c.Registry.Installed = append(c.Registry.Installed[:i], c.Registry.Installed[i+1:]...)
			return true
		}
	}
	return false
}
