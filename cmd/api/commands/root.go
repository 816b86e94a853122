package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/taller-admin/internal/config"
	"github.com/BruksfildServices01/taller-admin/internal/logging"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "taller-admin",
	Short: "Auto-repair shop administration API",
	Long: `taller-admin serves customers, appointments, inventory, repair orders,
invoices and reports for an auto-repair shop.

When the database is unreachable every list falls back to sample data and
a notice is posted for the operator.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		cfg = config.Load()
		log = logging.Setup(cfg.AppEnv, cfg.LogLevel)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
