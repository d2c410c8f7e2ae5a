package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tonandton/report-tracking/internal/app"
	"github.com/tonandton/report-tracking/internal/config"
)

var Version = "dev"

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	rootCmd := &cobra.Command{
		Use:           "dailyctl",
		Short:         "Maintenance commands for the daily report tracker",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(resetDayCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withApp opens the configured database for the duration of fn.
func withApp(ctx context.Context, fn func(a *app.App) error) error {
	application, err := app.New(ctx, config.LoadConfig())
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			zap.L().Warn("failed to close database connection", zap.Error(err))
		}
	}()
	return fn(application)
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
