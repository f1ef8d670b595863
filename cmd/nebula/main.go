package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nebula-platform/nebula/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "nebula",
		Short:   "Nebula collaborative coding platform",
		Long:    "Nebula — accounts, sessions, and token auth for the Nebula collaborative code editor.",
		Version: fmt.Sprintf("%s (%s@%s)", build.Version, build.Branch, build.Commit),
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
