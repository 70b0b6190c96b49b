package cli

import (
	"fmt"
	"time"

	"builty-service/internal/entities"
	"builty-service/internal/pkg/auth"
	"builty-service/internal/pkg/config"
	"github.com/spf13/cobra"
)

const defaultTokenTTL = 24 * time.Hour

func TokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue bearer tokens for local development",
	}
	cmd.AddCommand(tokenIssueCmd())
	return cmd
}

func tokenIssueCmd() *cobra.Command {
	var (
		role string
		id   int64
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:     "issue",
		Short:   "Print a signed token for the given actor",
		Example: "  builtyctl token issue --role shipper --id 42 --ttl 2h",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadEnv(); err != nil {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			authCfg, err := config.LoadAuth()
			if err != nil {
				return err
			}

			actor := entities.Actor{ID: id, Role: entities.Role(role)}
			token, err := auth.New(authCfg.JWTSecret, authCfg.Issuer).Issue(actor, ttl)
			if err != nil {
				return fmt.Errorf("issue token for %s #%d: %w", role, id, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(entities.RoleShipper), "actor role: shipper, carrier, admin")
	cmd.Flags().Int64Var(&id, "id", 0, "actor id")
	cmd.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "token lifetime")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
