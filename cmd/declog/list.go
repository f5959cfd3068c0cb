package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List decisions in the open journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				doc, open := d.Session.Current()
				if !open {
					return fmt.Errorf("no document is open (run 'declog open' first)")
				}

				shown := 0
				for _, dec := range doc.Decisions {
					if tag != "" && !hasTag(dec.Tags, tag) {
						continue
					}
					shown++
					fmt.Printf("%s  %s  [importance %d, %d review(s)]\n", dec.ID, dec.Title, dec.Importance, len(dec.Reviews))
					if len(dec.Tags) > 0 {
						fmt.Printf("    tags: %s\n", strings.Join(dec.Tags, ", "))
					}
				}

				if shown == 0 {
					fmt.Println("No decisions found.")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only show decisions carrying this tag")

	return cmd
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
