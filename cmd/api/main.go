package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"lifedesk/config"
	_ "lifedesk/docs" // Swagger docs
	"lifedesk/internal/httpserver"
	itemUC "lifedesk/internal/item/usecase"
	"lifedesk/pkg/datemath"
	"lifedesk/pkg/gcalendar"
	"lifedesk/pkg/log"
)

// @title       Lifedesk API
// @description Personal life management with natural-language quick-add for tasks, events, notes and ideas.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Lifedesk...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres connection: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warnf(ctx, "Postgres not reachable yet: %v", err)
	}
	cancel()

	// 4. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.QuickAdd.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.QuickAdd.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar mirror (optional)
	var calendarClient itemUC.Calendar
	if cfg.GoogleCalendar.Enabled {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = client
		}
	}

	// 6. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:                 logger,
		Port:                   cfg.HTTPServer.Port,
		Mode:                   cfg.HTTPServer.Mode,
		Environment:            cfg.Environment.Name,
		PostgresDB:             db,
		DateMath:               dateMathParser,
		Calendar:               calendarClient,
		CalendarID:             cfg.GoogleCalendar.CalendarID,
		Timezone:               cfg.QuickAdd.Timezone,
		APIKey:                 cfg.HTTPServer.APIKey,
		PreviewRateLimitPerMin: cfg.QuickAdd.PreviewRateLimitPerMin,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped with error: %v", err)
	}
}
