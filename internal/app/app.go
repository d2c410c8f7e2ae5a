// Package app wires storage and services; the api server and the CLI share it.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	dbadapter "github.com/tonandton/report-tracking/internal/adapter/db"
	"github.com/tonandton/report-tracking/internal/app/service"
	"github.com/tonandton/report-tracking/internal/config"
)

type App struct {
	DB       *sqlx.DB
	Location *time.Location
	Tasks    *service.TaskService
	Reports  *service.ReportService
	Archive  *service.ArchiveService
}

// New connects to the configured database, applies the schema and builds the services
// around one shared day gate.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", cfg.TimeZone, err)
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DbDriver, err)
	}

	if err := dbadapter.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return NewWithDB(db, location, service.ArchiveOptions{
		HistoryDefaultLimit: cfg.HistoryDefaultLimit,
		HistoryMaxLimit:     cfg.HistoryMaxLimit,
		KPIDays:             cfg.KPIDays,
	}), nil
}

func NewWithDB(db *sqlx.DB, location *time.Location, opts service.ArchiveOptions) *App {
	store := dbadapter.NewStore(db)
	gate := service.NewDayGate()
	clock := service.SystemClock{Location: location}

	return &App{
		DB:       db,
		Location: location,
		Tasks:    service.NewTaskService(store, gate, clock, location),
		Reports:  service.NewReportService(store, gate, clock, location),
		Archive:  service.NewArchiveService(store, gate, clock, location, opts),
	}
}

func (a *App) Close() error {
	return a.DB.Close()
}
