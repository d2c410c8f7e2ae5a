package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tonandton/report-tracking/internal/adapter/http/mapper"
	"github.com/tonandton/report-tracking/internal/app"
	"github.com/tonandton/report-tracking/internal/core/domain"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			// app.New applies the embedded schema.
			return withApp(cmd.Context(), func(a *app.App) error {
				zap.L().Info("schema is up to date", zap.String("driver", a.DB.DriverName()))
				return nil
			})
		},
	}
}

func resetDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-day",
		Short: "Archive today's tasks and report into history and start a new day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				result, err := a.Archive.ResetDay(cmd.Context())
				if errors.Is(err, domain.ErrHistoryConflict) {
					return fmt.Errorf("today is already archived: %w", err)
				}
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), mapper.ToResetDayResponse(result))
			})
		},
	}
}

func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print archived days, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				entries, err := a.Archive.ListHistory(cmd.Context(), limit)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), mapper.ToHistoryItems(entries))
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum entries (0 uses the configured default)")
	return cmd
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump tasks, reports and history as one JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				export, err := a.Archive.Export(cmd.Context())
				if err != nil {
					return err
				}
				document := mapper.ToExportDocument(export)
				if out == "" || out == "-" {
					return writeJSON(cmd.OutOrStdout(), document)
				}

				file, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := writeJSON(file, document); err != nil {
					_ = file.Close()
					return err
				}
				zap.L().Info("export written",
					zap.String("file", out),
					zap.Int("tasks", len(document.Tasks)),
					zap.Int("reports", len(document.Reports)),
					zap.Int("history", len(document.History)),
				)
				return file.Close()
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "daily-flow-export.json", "Output file, or - for stdout")
	return cmd
}
