package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmeshcher/smartfold-lms/internal/config"
)

var (
	databaseURI string
	cfg         *config.Config
	logger      *zap.Logger
)

// Execute собирает дерево команд и запускает выбранную.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:          "laundryctl",
		Short:        "Maintenance commands for the SmartFold laundry back office",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.FromEnv()
			if err != nil {
				return err
			}
			if databaseURI != "" {
				cfg.DatabaseURI = databaseURI
			}
			if cfg.DatabaseURI == "" {
				return fmt.Errorf("database URI required (--database or DATABASE_URI)")
			}

			logger, err = zap.NewDevelopment()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&databaseURI, "database", "d", "", "database URI (overrides DATABASE_URI)")

	root.AddCommand(migrateCmd(), seedCmd())
	return root.ExecuteContext(ctx)
}
