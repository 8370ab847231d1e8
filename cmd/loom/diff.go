package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/config"
	"github.com/loomui/loom/internal/diff"
	"github.com/loomui/loom/internal/errors"
	"github.com/loomui/loom/internal/registry"
	"github.com/loomui/loom/internal/sync"
)

var diffContext int

var (
	diffAddStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	diffRemoveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	diffHunkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	diffHeaderStyle = lipgloss.NewStyle().Bold(true)
)

func diffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [components...]",
		Short: "Show how local components differ from the registry",
		Long: `Show a unified diff between your installed components and their
canonical registry sources.

With no arguments, every installed component is compared. Clean
components print nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}

	cmd.Flags().IntVar(&diffContext, "context", diff.DefaultContext, "Context lines around each change")

	return cmd
}

func runDiff(names []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, root, err := config.LoadFromDir(wd)
	if err != nil {
		return err
	}

	syncer := sync.New(registry.Default(), filepath.Join(root, cfg.Project.ComponentsDir))
	diffs, err := syncer.Diff(names, diffContext)
	if err != nil {
		return err
	}

	clean, modified, failed := 0, 0, 0
	for _, fd := range diffs {
		switch {
		case fd.Err != nil:
			failed++
			if le, ok := fd.Err.(*errors.LoomError); ok {
				warn("%s: %s", fd.Component, le.FormatCompact())
			} else {
				warn("%s: %v", fd.Component, fd.Err)
			}
		case fd.Clean:
			clean++
		default:
			modified++
			printPatch(fd.Patch)
		}
	}

	fmt.Println()
	info("%d clean, %d modified, %d failed", clean, modified, failed)
	return nil
}

// printPatch colorizes a unified diff line by line.
func printPatch(patch string) {
	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			fmt.Println(diffHeaderStyle.Render(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Println(diffHunkStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Println(diffAddStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Println(diffRemoveStyle.Render(line))
		default:
			fmt.Println(line)
		}
	}
}
