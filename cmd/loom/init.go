package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/config"
	"github.com/loomui/loom/internal/registry"
	"github.com/loomui/loom/internal/sync"
	"github.com/loomui/loom/internal/theme"
)

var (
	initBaseColor string
	initDark      bool
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize loom in your project",
		Long: `Initialize loom in the current directory.

This creates:
  • loom.toml       project configuration
  • ui/base.go      shared component types
  • ui/theme.go     generated color theme

Run it once per project, then 'loom add' components as you need them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}

	cmd.Flags().StringVar(&initBaseColor, "base-color", "zinc", "Theme preset (zinc, slate, stone, gray, neutral)")
	cmd.Flags().BoolVar(&initDark, "dark", false, "Generate the dark palette")

	return cmd
}

func runInit() error {
	printBanner()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	if config.Exists(wd) {
		warn("loom.toml already exists, leaving it alone")
		return nil
	}

	// Resolve the preset before writing anything.
	th, err := theme.Preset(initBaseColor)
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Theme.BaseColor = initBaseColor
	cfg.Theme.DarkMode = initDark
	if err := cfg.Save(filepath.Join(wd, config.FileName)); err != nil {
		return err
	}
	success("wrote %s", config.FileName)

	syncer := sync.New(registry.Default(), filepath.Join(wd, cfg.Project.ComponentsDir))
	if err := syncer.Scaffold(); err != nil {
		return err
	}
	success("wrote %s", filepath.Join(cfg.Project.ComponentsDir, sync.BaseFileName))

	src := theme.GenerateSource(th, cfg.Theme.DarkMode, theme.Radius(cfg.Theme.Radius))
	if err := os.WriteFile(filepath.Join(wd, cfg.Project.ThemeFile), src, 0o644); err != nil {
		return err
	}
	success("wrote %s (%s)", cfg.Project.ThemeFile, initBaseColor)

	info("")
	info("Next: loom add button")
	return nil
}
