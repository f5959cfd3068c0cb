package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <decision-id>",
		Short: "Remove a decision and its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				if err := d.DecisionHandler.Remove(cmd.Context(), args[0], force); err != nil {
					return err
				}
				fmt.Printf("Removed decision %s\n", args[0])
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the remote file even if it changed since last sync")

	return cmd
}
