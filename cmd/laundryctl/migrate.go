package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/smartfold-lms/internal/repository"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.NewPostgresRepository(cmd.Context(), cfg.DatabaseURI)
			if err != nil {
				return err
			}
			defer repo.Close()

			version, err := repo.SchemaVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Schema is at version %d\n", version)
			return nil
		},
	}
}
