package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/config"
	"github.com/loomui/loom/internal/registry"
	"github.com/loomui/loom/internal/sync"
)

var (
	addAll       bool
	addPath      string
	addOverwrite bool
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [components...]",
		Short: "Copy components into your project",
		Long: `Copy components from the registry into your project.

Dependencies come along automatically: 'loom add dialog' also installs
button if you don't have it yet. The copies are yours to edit.

Examples:
  loom add button
  loom add dialog toggle_group
  loom add --all
  loom add button --path=internal/widgets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !addAll {
				return cmd.Help()
			}
			return runAdd(args)
		},
	}

	cmd.Flags().BoolVar(&addAll, "all", false, "Install every component in the registry")
	cmd.Flags().StringVar(&addPath, "path", "", "Override the components directory")
	cmd.Flags().BoolVar(&addOverwrite, "overwrite", false, "Overwrite files that already exist")

	return cmd
}

func runAdd(names []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, root, err := config.LoadFromDir(wd)
	if err != nil {
		return err
	}

	reg := registry.Default()
	if addAll {
		names = reg.Names()
	}

	dir := filepath.Join(root, cfg.Project.ComponentsDir)
	if addPath != "" {
		dir = filepath.Join(root, addPath)
	}

	syncer := sync.New(reg, dir)
	result, err := syncer.Install(names, addOverwrite)
	if err != nil {
		return err
	}

	requested := make(map[string]bool, len(names))
	for _, n := range names {
		requested[n] = true
	}

	for _, name := range result.Installed {
		if requested[name] {
			success("added %s", name)
		} else {
			success("added %s (dependency)", name)
		}
		cfg.MarkInstalled(name)
	}
	for _, name := range result.Skipped {
		info("%s already present, skipped (use --overwrite to replace)", name)
		cfg.MarkInstalled(name)
	}

	return cfg.Save(filepath.Join(root, config.FileName))
}
