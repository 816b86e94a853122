package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/taller-admin/internal/db"
	"github.com/BruksfildServices01/taller-admin/internal/fallback"
	"github.com/BruksfildServices01/taller-admin/internal/infra/notices"
	"github.com/BruksfildServices01/taller-admin/internal/routes"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Run AutoMigrate before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if migrateOnStart {
		if err := dbpkg.Migrate(db); err != nil {
			log.Warn().Err(err).Msg("migration failed, continuing")
		}
	}

	var board fallback.NoticeBoard = fallback.NewMemoryBoard()
	if cfg.RedisURL != "" {
		client, err := notices.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, notices kept in memory")
		} else {
			defer client.Close()
			board = notices.NewRedisBoard(client, cfg.NoticeTTL)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	dispatcher := routes.RegisterRoutes(r, db, cfg, board, log)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		dispatcher.Close()
		return err
	case <-quit:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	dispatcher.Close()
	log.Info().Msg("server stopped")
	return nil
}
