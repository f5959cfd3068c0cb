package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <decision-id>",
		Short: "Show a decision with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				doc, open := d.Session.Current()
				if !open {
					return fmt.Errorf("no document is open (run 'declog open' first)")
				}

				dec := doc.Decision(args[0])
				if dec == nil {
					return fmt.Errorf("decision not found: %s", args[0])
				}

				fmt.Printf("%s\n", dec.Title)
				fmt.Printf("  id:         %s\n", dec.ID)
				fmt.Printf("  date:       %s\n", dec.Date)
				fmt.Printf("  importance: %d\n", dec.Importance)
				if dec.Description != "" {
					fmt.Printf("  reasoning:  %s\n", dec.Description)
				}
				if dec.FinalDecision != "" {
					fmt.Printf("  decided:    %s\n", dec.FinalDecision)
				}
				if len(dec.Tags) > 0 {
					fmt.Printf("  tags:       %s\n", strings.Join(dec.Tags, ", "))
				}
				fmt.Printf("  created:    %s\n", dec.CreatedAt.Format(time.RFC3339))
				fmt.Printf("  updated:    %s\n", dec.UpdatedAt.Format(time.RFC3339))

				if len(dec.Reviews) == 0 {
					fmt.Println("\nNo reviews yet.")
					return nil
				}

				fmt.Printf("\n%d review(s):\n", len(dec.Reviews))
				for _, rev := range dec.Reviews {
					fmt.Printf("  %s (%s)\n", rev.ID, rev.CreatedAt.Format("2006-01-02"))
					fmt.Printf("    outcome %d, thesis %d, luck %d\n", rev.OutcomeRating, rev.ThesisAccuracy, rev.LuckRating)
					if rev.Notes != "" {
						fmt.Printf("    %s\n", rev.Notes)
					}
				}
				return nil
			})
		},
	}
}
