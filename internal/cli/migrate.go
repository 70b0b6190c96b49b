package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"builty-service/internal/pkg/postgres"
	"builty-service/pkg/logger"
	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
				if err := m.Up(ctx); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s schema is up to date\n", color.New(color.FgGreen).Sprint("✓"))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
				if err := m.Down(ctx); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s rolled back one migration\n", color.New(color.FgYellow).Sprint("✓"))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}
				printMigrationStatus(cmd, statuses)
				return nil
			})
		},
	})

	return cmd
}

func withMigrator(ctx context.Context, fn func(ctx context.Context, m *postgres.Migrator) error) error {
	return withPool(ctx, func(ctx context.Context, pool *pgxpool.Pool, log logger.Logger) error {
		migrator, err := postgres.NewMigrator(pool, log)
		if err != nil {
			return err
		}
		defer func() {
			_ = migrator.Close()
		}()
		return fn(ctx, migrator)
	})
}

func printMigrationStatus(cmd *cobra.Command, statuses []postgres.MigrationStatus) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tSTATE\tFILE")
	for _, s := range statuses {
		state := color.New(color.FgYellow).Sprint("pending")
		if s.Applied {
			state = color.New(color.FgGreen).Sprint("applied")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.Version, state, s.Path)
	}
	_ = w.Flush()
}
