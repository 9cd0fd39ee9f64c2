package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/internlink/internlink_backend/config"
	"github.com/internlink/internlink_backend/internal/events"
	"github.com/internlink/internlink_backend/internal/service/admin"
	"github.com/internlink/internlink_backend/pkg/authorize"
	"github.com/internlink/internlink_backend/pkg/database"
)

// NewSeedCommand imports (or deletes) the demo data set. It runs the same
// code path the admin API exposes, so the CLI and the endpoint cannot drift.
func NewSeedCommand() *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import demo accounts, postings and applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

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

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			// No mail client and no NATS connection here: demo import sends
			// nothing, and the nil publisher drops events.
			svc := admin.New(client, nil, events.NewPublisher(nil), auth, cfg)

			if remove {
				if err := svc.DeleteDemoData(ctx); err != nil {
					return fmt.Errorf("failed to delete demo data: %w", err)
				}
				fmt.Println("Demo data deleted.")
				return nil
			}

			if err := svc.ImportDemoData(ctx); err != nil {
				return fmt.Errorf("failed to import demo data: %w", err)
			}
			fmt.Println("Demo data imported.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&remove, "delete", false, "Delete the demo data set instead of importing it")

	return cmd
}
