package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seanwalsh/declog/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration",
		Long:  "Creates the .declog directory with a default config file in the current directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			if err := config.WriteDefault(cwd); err != nil {
				return err
			}

			fmt.Printf("Created %s\n", config.ConfigFilePath(cwd))
			fmt.Println("Edit remote.base_url and remote.account, then set your token in the")
			fmt.Printf("environment variable named by token_env (default %s).\n", config.DefaultTokenEnv)
			return nil
		},
	}
}
