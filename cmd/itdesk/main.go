package main

import (
	"os"

	"github.com/spf13/cobra"

	"itdesk/internal/interfaces/cli/migrate"
	"itdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "itdesk",
		Short: "IT service desk",
		Long:  `Repair ticket tracking for an in-house IT service desk, with a built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
