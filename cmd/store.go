package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/config"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/store"
)

// openStore resolves the database settings (flags over env over
// defaults) and connects.
func openStore(ctx context.Context, cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, cfg, fmt.Errorf("load config: %w", err)
	}
	if d, _ := cmd.Flags().GetString("db-driver"); d != "" {
		cfg.DBDriver = store.Driver(d)
	}
	if dsn, _ := cmd.Flags().GetString("db-dsn"); dsn != "" {
		cfg.DBDSN = dsn
	}

	st, err := store.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, cfg, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}
