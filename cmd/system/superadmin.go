package system

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/auxillium/auxillium_backend/config"
	"github.com/auxillium/auxillium_backend/pkg/authorize"
	"github.com/auxillium/auxillium_backend/pkg/database"
)

func NewSuperAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "superadmin <user-id>",
		Short: "Grant platform super admin to an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}

			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			casbinDBDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, casbinDBDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			if err := authorize.AssignSuperAdminRole(context.Background(), auth, userID.String()); err != nil {
				return fmt.Errorf("failed to assign super admin: %w", err)
			}

			fmt.Printf("User %s is now a platform super admin.\n", userID)
			return nil
		},
	}

	return cmd
}
