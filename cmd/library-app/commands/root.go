package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"library-app-go/internal/app"
	"library-app-go/internal/config"
	"library-app-go/pkg/logger"
)

var skipSeed bool

// rootCmd migrates, seeds and serves the library API.
var rootCmd = &cobra.Command{
	Use:   "library-app",
	Short: "Library management API",
	Long: `Library management API backed by postgres or sqlite.

On startup the schema is migrated and, when SEED_ON_STARTUP is true, an empty
database is filled with the sample members, books, authors and accounts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(logger.NewFromEnv())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Do not seed the database on startup")
	rootCmd.AddCommand(seedCmd)
}

// shouldSeed reports whether serve seeds before listening.
func shouldSeed(cfg config.Config, skip bool) bool {
	return cfg.Seed.OnStartup && !skip
}

func runServe(log logger.Logger) error {
	log.Info("app: starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(log)
	if err != nil {
		log.Critical("app: init failed", "err", err)
		return err
	}

	if shouldSeed(application.Config(), skipSeed) {
		if _, err := application.Seed(ctx); err != nil {
			log.Critical("app: seeding failed", "err", err)
			_ = application.Close()
			return err
		}
	}

	srv := application.HTTPServer()
	log.Info("http: listening", "addr", srv.Addr)

	serverErrCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("app: shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			log.Critical("http: server failed", "addr", srv.Addr, "err", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http: graceful shutdown failed", "err", err)
		runErr = errors.Join(runErr, err)
	}

	if err := application.Close(); err != nil {
		log.Error("app: close failed", "err", err)
		runErr = errors.Join(runErr, err)
	}

	if runErr == nil {
		log.Info("app: stopped")
	}
	return runErr
}
