package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╔═╗╔═╗╔╦╗
  ║  ║ ║║ ║║║║
  ╩═╝╚═╝╚═╝╩ ╩
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "Terminal UI components you copy into your project",
		Long: `Loom distributes terminal UI components as source code you own.

Components are copied into your project, not vendored behind an
import. Edit them freely; loom can show you how far your copies
have drifted from the registry and bring them back in sync.

  • loom add button dialog   copy components (and their dependencies)
  • loom diff                unified diff of local edits vs the registry
  • loom update              refresh components, backing up local edits
  • loom theme apply slate   regenerate the color theme`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		addCmd(),
		listCmd(),
		removeCmd(),
		diffCmd(),
		updateCmd(),
		themeCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the loom ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
