package sync

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/loomui/loom/internal/diff"
	"github.com/loomui/loom/internal/errors"
	"github.com/loomui/loom/internal/registry"
)

// SourceFunc returns the canonical source for a registry file.
type SourceFunc func(file string) ([]byte, error)

// Syncer copies registry components into a project directory and keeps
// them reconciled with their canonical sources.
type Syncer struct {
	reg    *registry.Registry
	dir    string
	source SourceFunc
}

// New returns a Syncer installing into dir, reading canonical sources
// from the embedded registry payload.
func New(reg *registry.Registry, dir string) *Syncer {
	return &Syncer{reg: reg, dir: dir, source: registry.Source}
}

// NewWithSource is New with a custom source, used by the tests and by
// callers syncing against a remote registry snapshot.
func NewWithSource(reg *registry.Registry, dir string, source SourceFunc) *Syncer {
	return &Syncer{reg: reg, dir: dir, source: source}
}

// ValidateNames checks that every requested name exists in the
// registry. The error lists all unknown names at once.
func (s *Syncer) ValidateNames(names []string) error {
	var unknown []string
	for _, name := range names {
		if _, ok := s.reg.Find(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	return errors.Newf("E201", "Unknown component(s): %s", joinNames(unknown)).
		WithSuggestion("Run 'loom list' to see every available component.")
}

// InstallResult reports what one Install call did.
type InstallResult struct {
	// Installed holds the components written to disk, dependency first.
	Installed []string
	// Skipped holds components whose files already existed.
	Skipped []string
}

// Install resolves the requested components with their dependencies and
// writes each one's files into the components directory. Existing files
// are left alone unless overwrite is set.
func (s *Syncer) Install(names []string, overwrite bool) (*InstallResult, error) {
	if err := s.ValidateNames(names); err != nil {
		return nil, err
	}
	order, err := registry.Resolve(s.reg, names)
	if err != nil {
		return nil, errors.New("E202").Wrap(err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errors.New("E303").Wrap(err)
	}

	result := &InstallResult{}
	for _, name := range order {
		c, ok := s.reg.Find(name)
		if !ok {
			// Requested names are validated upfront, so this is a
			// dependency the registry does not carry.
			return nil, errors.Newf("E201", "Dependency %q is not in the registry", name)
		}

		wrote := false
		for _, file := range c.Files {
			path := filepath.Join(s.dir, file)
			if _, statErr := os.Stat(path); statErr == nil && !overwrite {
				continue
			}
			content, srcErr := s.source(file)
			if srcErr != nil {
				return result, errors.New("E203").
					WithDetail("No source for " + file + ".").Wrap(srcErr)
			}
			if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
				return result, errors.New("E303").Wrap(writeErr)
			}
			wrote = true
		}

		if wrote {
			result.Installed = append(result.Installed, name)
		} else {
			result.Skipped = append(result.Skipped, name)
		}
	}
	return result, nil
}

// FileDiff is the comparison of one installed file against its
// canonical registry source.
type FileDiff struct {
	Component string
	File      string
	// Patch is the unified diff, empty when the file is clean.
	Patch string
	// Clean is true when the local file matches the registry byte for
	// byte.
	Clean bool
	// Err records a per-file failure; the remaining files still get
	// compared.
	Err error
}

// Diff compares each named component's installed files against the
// registry. An empty names slice compares every registry component that
// has a file on disk.
func (s *Syncer) Diff(names []string, context int) ([]FileDiff, error) {
	if len(names) == 0 {
		names = s.installedNames()
	} else if err := s.ValidateNames(names); err != nil {
		return nil, err
	}

	var out []FileDiff
	for _, name := range names {
		c, ok := s.reg.Find(name)
		if !ok {
			continue
		}
		for _, file := range c.Files {
			out = append(out, s.diffFile(name, file, context))
		}
	}
	return out, nil
}

func (s *Syncer) diffFile(name, file string, context int) FileDiff {
	fd := FileDiff{Component: name, File: file}

	canonical, err := s.source(file)
	if err != nil {
		fd.Err = errors.New("E203").WithDetail("No source for " + file + ".").Wrap(err)
		return fd
	}
	local, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		fd.Err = errors.New("E301").
			WithDetail(file + " was not found in the components directory.").
			WithSuggestion("Run 'loom add " + name + "' to reinstall it.")
		return fd
	}

	if bytes.Equal(local, canonical) {
		fd.Clean = true
		return fd
	}

	fd.Patch = diff.Format(
		diff.SplitLines(string(canonical)),
		diff.SplitLines(string(local)),
		file+" (registry)",
		file+" (local)",
		context,
	)
	return fd
}

// UpdateResult reports what one Update call did for a single file.
type UpdateResult struct {
	Component string
	File      string
	// Updated is true when the file was rewritten from the registry.
	Updated bool
	// Backup is the path of the pre-update copy, empty when no write
	// happened.
	Backup string
	Err    error
}

// Update rewrites each named component's files from the registry. Files
// that already match are left alone. Before overwriting a modified
// file, the local version is copied to <file>.bak; a failed backup
// leaves the file untouched. A missing local file is an error unless
// force is set, in which case it is installed fresh. Per-file failures
// are recorded and the remaining files still get processed.
func (s *Syncer) Update(names []string, force bool) ([]UpdateResult, error) {
	if len(names) == 0 {
		names = s.installedNames()
	} else if err := s.ValidateNames(names); err != nil {
		return nil, err
	}

	var out []UpdateResult
	for _, name := range names {
		c, ok := s.reg.Find(name)
		if !ok {
			continue
		}
		for _, file := range c.Files {
			out = append(out, s.updateFile(name, file, force))
		}
	}
	return out, nil
}

func (s *Syncer) updateFile(name, file string, force bool) UpdateResult {
	ur := UpdateResult{Component: name, File: file}
	path := filepath.Join(s.dir, file)

	canonical, err := s.source(file)
	if err != nil {
		ur.Err = errors.New("E203").WithDetail("No source for " + file + ".").Wrap(err)
		return ur
	}

	local, err := os.ReadFile(path)
	if err != nil {
		if !force {
			ur.Err = errors.New("E301").
				WithDetail(file + " was not found in the components directory.").
				WithSuggestion("Re-run with --force to install it fresh.")
			return ur
		}
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			ur.Err = errors.New("E303").Wrap(err)
			return ur
		}
		if err := os.WriteFile(path, canonical, 0o644); err != nil {
			ur.Err = errors.New("E303").Wrap(err)
			return ur
		}
		ur.Updated = true
		return ur
	}

	if bytes.Equal(local, canonical) {
		return ur
	}

	backup := path + ".bak"
	if err := os.WriteFile(backup, local, 0o644); err != nil {
		ur.Err = errors.New("E302").Wrap(err)
		return ur
	}
	ur.Backup = backup

	if err := os.WriteFile(path, canonical, 0o644); err != nil {
		ur.Err = errors.New("E303").Wrap(err)
		return ur
	}
	ur.Updated = true
	return ur
}

// Remove deletes the named component's files from the components
// directory. Missing files are not an error.
func (s *Syncer) Remove(name string) error {
	c, ok := s.reg.Find(name)
	if !ok {
		return errors.Newf("E201", "Unknown component %q", name)
	}
	for _, file := range c.Files {
		if err := os.Remove(filepath.Join(s.dir, file)); err != nil && !os.IsNotExist(err) {
			return errors.New("E303").Wrap(err)
		}
	}
	return nil
}

// installedNames lists every registry component with at least one file
// present on disk, in registry order.
func (s *Syncer) installedNames() []string {
	var names []string
	for _, c := range s.reg.Components() {
		for _, file := range c.Files {
			if _, err := os.Stat(filepath.Join(s.dir, file)); err == nil {
				names = append(names, c.Name)
				break
			}
		}
	}
	return names
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
