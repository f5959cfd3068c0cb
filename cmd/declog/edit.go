package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seanwalsh/declog/internal/domain/services"
)

func newEditCmd() *cobra.Command {
	var flags decisionFlags

	cmd := &cobra.Command{
		Use:   "edit <decision-id>",
		Short: "Edit an existing decision",
		Long:  "Edits a decision. Only the flags you pass are changed; the creation timestamp is preserved.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in services.DecisionInput
			if cmd.Flags().Changed("title") {
				in.Title = &flags.title
			}
			if cmd.Flags().Changed("description") {
				in.Description = &flags.description
			}
			if cmd.Flags().Changed("final") {
				in.FinalDecision = &flags.finalDecision
			}
			if cmd.Flags().Changed("date") {
				in.Date = &flags.date
			}
			if cmd.Flags().Changed("importance") {
				in.Importance = &flags.importance
			}
			if cmd.Flags().Changed("tags") {
				in.Tags = flags.tags
			}

			return withDeps(func(d *Deps) error {
				dec, err := d.DecisionHandler.Update(cmd.Context(), args[0], in, flags.force)
				if err != nil {
					return err
				}
				fmt.Printf("Updated decision %s (%s)\n", dec.ID, dec.Title)
				return nil
			})
		},
	}

	flags.register(cmd)

	return cmd
}
