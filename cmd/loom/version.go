package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/registry"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			printBanner()
			fmt.Printf("loom %s\n", version)
			fmt.Printf("  commit:   %s\n", commit)
			fmt.Printf("  built:    %s\n", date)
			fmt.Printf("  registry: %s\n", registry.CatalogVersion)
			fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
