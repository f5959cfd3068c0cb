package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List journal files in the remote store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				files, err := d.DocumentHandler.ListFiles(cmd.Context())
				if err != nil {
					return err
				}

				if len(files) == 0 {
					fmt.Println("No journal files found. Run 'declog create' to start one.")
					return nil
				}

				fmt.Printf("Found %d journal file(s):\n\n", len(files))
				for _, f := range files {
					marker := "  "
					if f.ID == d.Session.FileID() {
						marker = "* "
					}
					fmt.Printf("%s%s  %s  (modified %s)\n", marker, f.ID, f.Name, f.Modified.Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}
