package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export the open journal to a local file",
		Long:  "Writes the open document to local disk in the same format used for remote storage.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				if err := d.ExportHandler.Export(args[0]); err != nil {
					return err
				}
				fmt.Printf("Exported to %s\n", args[0])
				return nil
			})
		},
	}
}
