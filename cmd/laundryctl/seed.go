package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/smartfold-lms/internal/repository"
	"github.com/mmeshcher/smartfold-lms/internal/seed"
	"github.com/mmeshcher/smartfold-lms/internal/service"
)

func seedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty database with demo users, orders, tasks, payments and messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := repository.NewPostgresRepository(cmd.Context(), cfg.DatabaseURI)
			if err != nil {
				return err
			}

			svc := service.NewService(repo, cfg.BcryptCost)
			defer svc.Close()

			res, err := seed.NewGenerator(svc, nil, logger).Run(cmd.Context(), force)
			if err != nil {
				return err
			}
			if res.Skipped {
				fmt.Println("Database already has users; nothing to do (use --force to seed anyway)")
				return nil
			}
			fmt.Printf("Created %d users, %d orders, %d tasks, %d payments, %d messages\n",
				res.Users, res.Orders, res.Tasks, res.Payments, res.Messages)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "seed even if users already exist")
	return cmd
}
