// Package main provides the entry point for the declog CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "declog",
		Short:   "A personal decision journal synced to a remote file store",
		Version: version,
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newFilesCmd(),
		newCreateCmd(),
		newOpenCmd(),
		newCloseCmd(),
		newStatusCmd(),
		newListCmd(),
		newShowCmd(),
		newAddCmd(),
		newEditCmd(),
		newRemoveCmd(),
		newReviewCmd(),
		newImportCmd(),
		newExportCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
