package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/config"
	"github.com/loomui/loom/internal/theme"
)

var (
	themeDark   bool
	themeRadius string
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the project color theme",
		Long: `Manage the generated color theme.

Commands:
  list       List available presets
  preview    Print a preset's palette as color swatches
  apply      Regenerate the theme file with a preset

Examples:
  loom theme list
  loom theme preview slate
  loom theme apply slate --dark`,
	}

	cmd.AddCommand(
		themeListCmd(),
		themePreviewCmd(),
		themeApplyCmd(),
	)

	return cmd
}

func themeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available theme presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range theme.Names() {
				info(name)
			}
			return nil
		},
	}
}

func themePreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <preset>",
		Short: "Preview a preset's palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemePreview(args[0])
		},
	}

	cmd.Flags().BoolVar(&themeDark, "dark", false, "Preview the dark palette")

	return cmd
}

func themeApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <preset>",
		Short: "Regenerate the theme file with a preset",
		Long: `Regenerate the project's theme file with the given preset and record
the choice in loom.toml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeApply(args[0])
		},
	}

	cmd.Flags().BoolVar(&themeDark, "dark", false, "Generate the dark palette")
	cmd.Flags().StringVar(&themeRadius, "radius", "", "Corner radius (none, sm, md, lg, full)")

	return cmd
}

func runThemePreview(name string) error {
	th, err := theme.Preset(name)
	if err != nil {
		return err
	}

	palette := th.Light
	mode := "light"
	if themeDark {
		palette = th.Dark
		mode = "dark"
	}

	fmt.Printf("\n%s (%s)\n\n", th.Name, mode)
	for _, slot := range palette.Slots() {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(slot.Color.Hex())).
			Render("      ")
		fmt.Printf("  %s %-28s %s\n", swatch, slot.Name, slot.Color.Hex())
	}
	fmt.Println()
	return nil
}

func runThemeApply(name string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, root, err := config.LoadFromDir(wd)
	if err != nil {
		return err
	}

	th, err := theme.Preset(name)
	if err != nil {
		return err
	}

	cfg.Theme.BaseColor = name
	cfg.Theme.DarkMode = themeDark
	if themeRadius != "" {
		cfg.Theme.Radius = themeRadius
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	src := theme.GenerateSource(th, cfg.Theme.DarkMode, theme.Radius(cfg.Theme.Radius))
	themePath := filepath.Join(root, cfg.Project.ThemeFile)
	if err := os.WriteFile(themePath, src, 0o644); err != nil {
		return err
	}
	if err := cfg.Save(filepath.Join(root, config.FileName)); err != nil {
		return err
	}

	mode := "light"
	if cfg.Theme.DarkMode {
		mode = "dark"
	}
	success("applied %s (%s) to %s", name, mode, cfg.Project.ThemeFile)
	return nil
}
