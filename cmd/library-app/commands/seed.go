package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"library-app-go/internal/app"
	"library-app-go/pkg/logger"
)

// seedCmd migrates and seeds without starting the HTTP server
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate and seed the database, then exit",
	Long: `Apply migrations and seed an empty database with the sample dataset.

A database that already has members, books or authors is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runSeed(logger.NewFromEnv())
		return err
	},
}

func runSeed(log logger.Logger) (bool, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(log)
	if err != nil {
		log.Critical("app: init failed", "err", err)
		return false, err
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error("app: close failed", "err", err)
		}
	}()

	seeded, err := application.Seed(ctx)
	if err != nil {
		log.Critical("app: seeding failed", "err", err)
		return false, err
	}

	log.Info("seed: finished", "seeded", seeded)
	return seeded, nil
}
