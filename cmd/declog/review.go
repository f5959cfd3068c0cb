package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seanwalsh/declog/internal/domain/services"
)

type reviewFlags struct {
	outcome int
	thesis  int
	luck    int
	notes   string
	force   bool
}

func (f *reviewFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.outcome, "outcome", 0, "Outcome rating 0-5")
	cmd.Flags().IntVar(&f.thesis, "thesis", 0, "Thesis accuracy rating 0-5")
	cmd.Flags().IntVar(&f.luck, "luck", 0, "Luck rating 0-5")
	cmd.Flags().StringVarP(&f.notes, "notes", "n", "", "Review notes")
	cmd.Flags().BoolVar(&f.force, "force", false, "Overwrite the remote file even if it changed since last sync")
}

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manage retrospective reviews of a decision",
	}

	cmd.AddCommand(
		newReviewAddCmd(),
		newReviewEditCmd(),
		newReviewRemoveCmd(),
	)

	return cmd
}

func newReviewAddCmd() *cobra.Command {
	var flags reviewFlags

	cmd := &cobra.Command{
		Use:   "add <decision-id>",
		Short: "Add a review to a decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				in := services.ReviewInput{
					OutcomeRating:  &flags.outcome,
					ThesisAccuracy: &flags.thesis,
					LuckRating:     &flags.luck,
					Notes:          &flags.notes,
				}
				rev, err := d.ReviewHandler.Add(cmd.Context(), args[0], in, flags.force)
				if err != nil {
					return err
				}
				fmt.Printf("Added review %s\n", rev.ID)
				return nil
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newReviewEditCmd() *cobra.Command {
	var flags reviewFlags

	cmd := &cobra.Command{
		Use:   "edit <decision-id> <review-id>",
		Short: "Edit a review",
		Long:  "Edits a review's ratings and notes. Only the flags you pass are changed; the creation timestamp is never altered.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in services.ReviewInput
			if cmd.Flags().Changed("outcome") {
				in.OutcomeRating = &flags.outcome
			}
			if cmd.Flags().Changed("thesis") {
				in.ThesisAccuracy = &flags.thesis
			}
			if cmd.Flags().Changed("luck") {
				in.LuckRating = &flags.luck
			}
			if cmd.Flags().Changed("notes") {
				in.Notes = &flags.notes
			}

			return withDeps(func(d *Deps) error {
				rev, err := d.ReviewHandler.Update(cmd.Context(), args[0], args[1], in, flags.force)
				if err != nil {
					return err
				}
				fmt.Printf("Updated review %s\n", rev.ID)
				return nil
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newReviewRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <decision-id> <review-id>",
		Short: "Remove a review",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				if err := d.ReviewHandler.Remove(cmd.Context(), args[0], args[1], force); err != nil {
					return err
				}
				fmt.Printf("Removed review %s\n", args[1])
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the remote file even if it changed since last sync")

	return cmd
}
