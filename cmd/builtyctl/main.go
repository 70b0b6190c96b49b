package main

import (
	"fmt"
	"os"

	"builty-service/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "builtyctl",
		Short: "builtyctl - operator tool for builty-service",
		Long: `builtyctl applies database migrations, seeds platform configuration
and issues development tokens against the builty-service database.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.TokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
