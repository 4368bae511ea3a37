package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/user/newswire-go/config"
	"github.com/user/newswire-go/db"
	"github.com/user/newswire-go/logger"
	"github.com/user/newswire-go/seed"
	"github.com/user/newswire-go/store/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with an admin user and sample content",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.Server.Debug)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := context.Background()
		pool, err := db.NewPool(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		users := postgres.NewUserStore(pool)
		newsStore := postgres.NewNewsStore(pool)
		commentStore := postgres.NewCommentStore(pool)
		return seed.Run(ctx, users, newsStore, commentStore, log)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
