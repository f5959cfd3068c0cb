package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <file-id>",
		Short: "Open a journal file from the remote store",
		Long:  "Fetches and opens a journal file. Any previously open document is discarded.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				doc, err := d.DocumentHandler.Open(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Opened %s with %d decision(s)\n", d.Session.FileName(), len(doc.Decisions))
				return nil
			})
		},
	}
}
