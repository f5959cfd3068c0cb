package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				st := d.DocumentHandler.Status()
				if !st.Open {
					fmt.Println("No document is open.")
					return nil
				}
				fmt.Printf("File:        %s (id %s)\n", st.FileName, st.FileID)
				fmt.Printf("Decisions:   %d\n", st.Decisions)
				fmt.Printf("Last synced: %s\n", st.LastSyncedAt.Format(time.RFC3339))
				return nil
			})
		},
	}
}
