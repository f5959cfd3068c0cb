package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seanwalsh/declog/internal/application/handlers"
	"github.com/seanwalsh/declog/internal/infrastructure/filestore/local"
)

func newImportCmd() *cobra.Command {
	var (
		create bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import a journal document from a local file",
		Long: "Reads a local JSON document through the same normalization as a remote load. " +
			"By default the imported content replaces the open journal file; with --create a " +
			"new remote file is created instead. A malformed document blocks the import entirely.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := local.ReadBytes(args[0])
			if err != nil {
				return err
			}

			return withDeps(func(d *Deps) error {
				var result *handlers.ImportResult
				if create {
					result, err = d.ImportHandler.Create(cmd.Context(), d.accountSlug(), data)
				} else {
					result, err = d.ImportHandler.Replace(cmd.Context(), data, force)
				}
				if err != nil {
					return err
				}

				fmt.Printf("Imported %d decision(s)", result.Decisions)
				if len(result.Repairs) > 0 {
					fmt.Printf(" (%d field(s) repaired)", len(result.Repairs))
				}
				fmt.Println()
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "Create a new remote file instead of replacing the open one")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the remote file even if it changed since last sync")

	return cmd
}
