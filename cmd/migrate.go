package cmd

import (
	"github.com/spf13/cobra"

	"github.com/user/newswire-go/config"
	"github.com/user/newswire-go/db"
	"github.com/user/newswire-go/logger"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
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

		return db.RunMigrations(cfg.DB, migrationsDir, log)
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "migrations", "migrations directory")
	rootCmd.AddCommand(migrateCmd)
}
