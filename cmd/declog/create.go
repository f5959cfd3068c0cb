package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new journal file and open it",
		Long:  "Creates an empty journal file in the remote store, named after the configured account, and opens it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				desc, err := d.DocumentHandler.Create(cmd.Context(), d.accountSlug())
				if err != nil {
					return err
				}
				fmt.Printf("Created and opened %s (id %s)\n", desc.Name, desc.ID)
				return nil
			})
		},
	}
}
