package commands

import (
	"context"

	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/taller-admin/internal/db"
	"github.com/BruksfildServices01/taller-admin/internal/fallback"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample dataset into an empty database",
	Long: `Load the sample dataset into an empty database.

The schema is migrated first. Nothing is written when customers already exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		if err := dbpkg.Migrate(db); err != nil {
			return err
		}

		seeded, err := dbpkg.Seed(ctx, db, fallback.Sample())
		if err != nil {
			return err
		}
		if !seeded {
			log.Info().Msg("database already has data, nothing seeded")
			return nil
		}
		log.Info().Msg("sample data loaded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
