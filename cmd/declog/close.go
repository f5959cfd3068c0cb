package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Close the open journal file",
		Long:  "Closes the open document. Unsaved local edits in the cache are discarded.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				if _, open := d.Session.Current(); !open {
					fmt.Println("No document is open.")
					return nil
				}
				name := d.Session.FileName()
				d.DocumentHandler.Close()
				fmt.Printf("Closed %s\n", name)
				return nil
			})
		},
	}
}
