package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/config"
	"github.com/loomui/loom/internal/errors"
	"github.com/loomui/loom/internal/registry"
	"github.com/loomui/loom/internal/sync"
)

var updateForce bool

func updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [components...]",
		Short: "Refresh components from the registry",
		Long: `Rewrite installed components from their canonical registry sources.

Files that already match the registry are left alone. A modified file
is backed up to <file>.bak before it is overwritten, so local edits are
never lost silently. With no arguments, every installed component is
refreshed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(args)
		},
	}

	cmd.Flags().BoolVar(&updateForce, "force", false, "Reinstall components whose files are missing")

	return cmd
}

func runUpdate(names []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, root, err := config.LoadFromDir(wd)
	if err != nil {
		return err
	}

	syncer := sync.New(registry.Default(), filepath.Join(root, cfg.Project.ComponentsDir))
	results, err := syncer.Update(names, updateForce)
	if err != nil {
		return err
	}

	updated, unchanged, failed := 0, 0, 0
	for _, ur := range results {
		switch {
		case ur.Err != nil:
			failed++
			if le, ok := ur.Err.(*errors.LoomError); ok {
				warn("%s: %s", ur.Component, le.FormatCompact())
			} else {
				warn("%s: %v", ur.Component, ur.Err)
			}
		case ur.Updated && ur.Backup != "":
			updated++
			success("updated %s (local copy saved to %s)", ur.File, filepath.Base(ur.Backup))
		case ur.Updated:
			updated++
			success("updated %s", ur.File)
		default:
			unchanged++
		}
	}

	info("%d updated, %d unchanged, %d failed", updated, unchanged, failed)
	return nil
}
