package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/config"
	"github.com/loomui/loom/internal/registry"
)

var listInstalled bool

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available components",
		Long: `List every component in the registry, grouped by category.

Installed components are marked. Inside a loom project the installed
list comes from loom.toml; outside one, nothing is marked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}

	cmd.Flags().BoolVar(&listInstalled, "installed", false, "Only show installed components")

	return cmd
}

func runList() error {
	// Outside a project the list still works, just without markers.
	installed := func(string) bool { return false }
	if wd, err := os.Getwd(); err == nil {
		if cfg, _, err := config.LoadFromDir(wd); err == nil {
			installed = cfg.IsInstalled
		}
	}

	reg := registry.Default()
	for _, cat := range registry.Categories() {
		components := reg.ByCategory(cat)
		if len(components) == 0 {
			continue
		}

		shown := 0
		for _, c := range components {
			if listInstalled && !installed(c.Name) {
				continue
			}
			if shown == 0 {
				fmt.Printf("\n%s\n", cat.DisplayName())
			}
			marker := " "
			if installed(c.Name) {
				marker = "\033[32m●\033[0m"
			}
			deps := ""
			if len(c.DependsOn) > 0 {
				deps = fmt.Sprintf(" \033[90m(needs %s)\033[0m", joinComma(c.DependsOn))
			}
			fmt.Printf("  %s %-16s %s%s\n", marker, c.Name, c.Description, deps)
			shown++
		}
	}
	fmt.Println()
	return nil
}

func joinComma(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
