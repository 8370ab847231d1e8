package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/config"
	"github.com/loomui/loom/internal/registry"
	"github.com/loomui/loom/internal/sync"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <components...>",
		Short: "Remove installed components",
		Long: `Remove components from your project.

The component files are deleted from the components directory and the
installed list in loom.toml is updated. Dependencies stay: removing
dialog does not remove button.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
}

func runRemove(names []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, root, err := config.LoadFromDir(wd)
	if err != nil {
		return err
	}

	syncer := sync.New(registry.Default(), filepath.Join(root, cfg.Project.ComponentsDir))
	for _, name := range names {
		if err := syncer.Remove(name); err != nil {
			return err
		}
		if cfg.UnmarkInstalled(name) {
			success("removed %s", name)
		} else {
			warn("%s was not recorded as installed, files deleted anyway", name)
		}
	}

	return cfg.Save(filepath.Join(root, config.FileName))
}
