package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seanwalsh/declog/internal/domain/services"
)

type decisionFlags struct {
	title         string
	description   string
	finalDecision string
	date          string
	importance    int
	tags          []string
	force         bool
}

func (f *decisionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Decision title (required on add)")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Reasoning behind the decision")
	cmd.Flags().StringVar(&f.finalDecision, "final", "", "What was ultimately decided")
	cmd.Flags().StringVar(&f.date, "date", "", "Decision date (YYYY-MM-DD, defaults to today on add)")
	cmd.Flags().IntVarP(&f.importance, "importance", "i", 0, "Importance 0-5")
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().BoolVar(&f.force, "force", false, "Overwrite the remote file even if it changed since last sync")
}

func newAddCmd() *cobra.Command {
	var flags decisionFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new decision",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.title == "" {
				return fmt.Errorf("--title is required")
			}
			if flags.date == "" {
				flags.date = time.Now().Format("2006-01-02")
			}

			return withDeps(func(d *Deps) error {
				in := services.DecisionInput{
					Title:         &flags.title,
					Description:   &flags.description,
					FinalDecision: &flags.finalDecision,
					Date:          &flags.date,
					Importance:    &flags.importance,
					Tags:          flags.tags,
				}
				dec, err := d.DecisionHandler.Add(cmd.Context(), in, flags.force)
				if err != nil {
					return err
				}
				fmt.Printf("Recorded decision %s (%s)\n", dec.ID, dec.Title)
				return nil
			})
		},
	}

	flags.register(cmd)

	return cmd
}
