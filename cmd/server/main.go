package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/lucianorey/libreria/internal/config"
	"github.com/lucianorey/libreria/internal/repository/sheets"
	"github.com/lucianorey/libreria/internal/scheduler"
	"github.com/lucianorey/libreria/internal/server/handlers"
	"github.com/lucianorey/libreria/internal/server/router"
	reportingsvc "github.com/lucianorey/libreria/internal/service/reporting"
	salessvc "github.com/lucianorey/libreria/internal/service/sales"
	stocksvc "github.com/lucianorey/libreria/internal/service/stock"
	"github.com/lucianorey/libreria/pkg/logger"
	"github.com/lucianorey/libreria/pkg/mailer"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
	if err != nil {
		baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
	}

	stockSvc := stocksvc.NewService(sheetsRepo, baseLogger.Named("svc.stock"))

	// Column positions are the wire format; refuse to serve against a
	// spreadsheet whose headers no longer line up.
	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := stockSvc.ValidateSchema(schemaCtx); err != nil {
		cancelSchema()
		baseLogger.Fatal("spreadsheet schema validation failed", zap.Error(err))
	}
	cancelSchema()

	salesSvc := salessvc.NewService(sheetsRepo, stockSvc, baseLogger.Named("svc.sales"))

	mailClient := mailer.NewClient(cfg.SMTP)
	reportingSvc := reportingsvc.NewService(sheetsRepo, mailClient, cfg.Report.PartnerEmail, baseLogger.Named("svc.reporting"))

	engine := router.New(router.Handlers{
		Stock:  handlers.NewStockHandler(stockSvc, baseLogger.Named("handlers.stock")),
		Sales:  handlers.NewSalesHandler(salesSvc, baseLogger.Named("handlers.sales")),
		Report: handlers.NewReportHandler(reportingSvc, baseLogger.Named("handlers.report")),
		Sheets: handlers.NewSheetsHandler(sheetsRepo, baseLogger.Named("handlers.sheets")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Report, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
