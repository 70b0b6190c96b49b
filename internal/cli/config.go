package cli

import (
	"context"
	"fmt"

	"builty-service/internal/entities"
	configurationRepo "builty-service/internal/repository/configuration"
	configurationService "builty-service/internal/service/configuration"
	"builty-service/pkg/logger"
	"builty-service/pkg/querier"
	"builty-service/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// systemActorID marks changes made from the operator tool in updated_by/published_by.
const systemActorID int64 = 1

func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Seed and publish platform configuration",
	}
	cmd.AddCommand(configSetCmd(), configPublishCmd())
	return cmd
}

func configSetCmd() *cobra.Command {
	var (
		dataType    string
		category    string
		description string
		public      bool
		publish     bool
		actorID     int64
	)

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a draft value, optionally publishing it right away",
		Example: `  builtyctl config set platform_fee_percent 2.5 --type number --category fees --publish
  builtyctl config set support_phone "+91 98000 00000" --public --publish`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata := entities.ConfigMetadata{
				DataType:    entities.ConfigDataType(dataType),
				Category:    category,
				Description: description,
				IsPublic:    public,
			}
			if !metadata.DataType.IsValid() {
				return fmt.Errorf("invalid --type %q: use number, boolean, string or json", dataType)
			}
			if actorID <= 0 {
				return fmt.Errorf("invalid --actor %d: must be positive", actorID)
			}

			key, value := args[0], args[1]

			return withConfigService(cmd.Context(), func(ctx context.Context, service *configurationService.Service) error {
				entry, err := service.SetDraft(ctx, key, value, metadata, actorID)
				if err != nil {
					return fmt.Errorf("failed to save %s: %w", key, err)
				}
				if publish {
					entry, err = service.Publish(ctx, key, actorID)
					if err != nil {
						return fmt.Errorf("failed to publish %s: %w", key, err)
					}
				}
				printEntry(cmd, entry)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dataType, "type", string(entities.ConfigString), "value type: number, boolean, string, json")
	cmd.Flags().StringVar(&category, "category", "general", "grouping category")
	cmd.Flags().StringVar(&description, "description", "", "human readable description")
	cmd.Flags().BoolVar(&public, "public", false, "expose the key through GET /config/public")
	cmd.Flags().BoolVar(&publish, "publish", false, "publish immediately after saving the draft")
	cmd.Flags().Int64Var(&actorID, "actor", systemActorID, "actor id recorded as the author")

	return cmd
}

func configPublishCmd() *cobra.Command {
	var actorID int64

	cmd := &cobra.Command{
		Use:   "publish <key>",
		Short: "Publish the current draft of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if actorID <= 0 {
				return fmt.Errorf("invalid --actor %d: must be positive", actorID)
			}
			return withConfigService(cmd.Context(), func(ctx context.Context, service *configurationService.Service) error {
				entry, err := service.Publish(ctx, args[0], actorID)
				if err != nil {
					return fmt.Errorf("failed to publish %s: %w", args[0], err)
				}
				printEntry(cmd, entry)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&actorID, "actor", systemActorID, "actor id recorded as the publisher")

	return cmd
}

func withConfigService(ctx context.Context, fn func(ctx context.Context, service *configurationService.Service) error) error {
	return withPool(ctx, func(ctx context.Context, pool *pgxpool.Pool, log logger.Logger) error {
		repository := configurationRepo.New(querier.New(pool, pgxv5.DefaultCtxGetter))
		service := configurationService.New(repository, tx.New(pool), log)
		return fn(ctx, service)
	})
}

func printEntry(cmd *cobra.Command, entry *entities.ConfigEntry) {
	out := cmd.OutOrStdout()
	status := color.New(color.FgYellow).Sprint(entry.Status.String())
	if entry.Status == entities.StatusPublished {
		status = color.New(color.FgGreen).Sprint(entry.Status.String())
	}
	fmt.Fprintf(out, "%s %s = %s\n", color.New(color.FgGreen).Sprint("✓"), entry.Key, entry.Value)
	fmt.Fprintf(out, "  Type: %s  Category: %s  Public: %t\n", entry.DataType, entry.Category, entry.IsPublic)
	fmt.Fprintf(out, "  Status: %s\n", status)
}
