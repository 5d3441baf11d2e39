package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/studyvault/backend/internal/api"
	"github.com/studyvault/backend/internal/auth"
	"github.com/studyvault/backend/internal/config"
	"github.com/studyvault/backend/internal/db"
	"github.com/studyvault/backend/internal/jobs"
	"github.com/studyvault/backend/internal/logger"
	"github.com/studyvault/backend/internal/repository/sqlite"
	"github.com/studyvault/backend/internal/services"
	"github.com/studyvault/backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("StudyVault Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("token_ttl_hours=%d", cfg.TokenTTLHours)
	log.Debug("heatmap_refresh_hours=%d", cfg.HeatmapRefreshHours)
	log.Debug("heatmap_worker_count=%d", cfg.HeatmapWorkerCount)
	log.Debug("heatmap_queue_size=%d", cfg.HeatmapQueueSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories
	userRepo := sqlite.NewUserRepository(database.DB)
	taxonomyRepo := sqlite.NewTaxonomyRepository(database.DB)
	mistakeRepo := sqlite.NewMistakeRepository(database.DB)
	redoRepo := sqlite.NewRedoRepository(database.DB)
	revisionRepo := sqlite.NewRevisionRepository(database.DB)
	heatmapRepo := sqlite.NewHeatmapRepository(database.DB)
	streakRepo := sqlite.NewStreakRepository(database.DB)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Initialize worker pool for heat-map recomputation
	heatmapPool := worker.NewPool(cfg.HeatmapWorkerCount, cfg.HeatmapQueueSize)

	// Initialize services
	heatmapService := services.NewHeatmapService(heatmapRepo, taxonomyRepo, userRepo)
	queue := jobs.NewWorkerQueue(heatmapPool, heatmapService)

	authService := services.NewAuthService(userRepo, tokens)
	streakService := services.NewStreakService(streakRepo, userRepo)
	mistakeService := services.NewMistakeService(mistakeRepo, taxonomyRepo)
	redoService := services.NewRedoService(redoRepo, streakService, queue)
	revisionService := services.NewRevisionService(revisionRepo, taxonomyRepo, streakService)
	shuffleService := services.NewShuffleService(mistakeRepo, streakService, nil)
	homeService := services.NewHomeService(redoRepo, revisionRepo, streakService)

	srv := &api.Server{
		AuthService:     authService,
		MistakeService:  mistakeService,
		RedoService:     redoService,
		RevisionService: revisionService,
		HeatmapService:  heatmapService,
		ShuffleService:  shuffleService,
		StreakService:   streakService,
		HomeService:     homeService,
		Tokens:          tokens,
	}

	ctx, cancel := context.WithCancel(context.Background())
	heatmapPool.Start(ctx)

	// Periodic full heat-map refresh keeps cached strengths from drifting
	// when no attempts come in for a while.
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.HeatmapRefreshHours) * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				job := &worker.RefreshAllHeatmapsJob{Heatmap: heatmapService}
				if err := heatmapPool.Submit(job); err != nil {
					log.Warn("failed to submit periodic heatmap refresh: %v", err)
				}
			}
		}
	}()

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Cancel worker context
	log.Debug("stopping worker pool")
	cancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Wait for workers to finish
	heatmapPool.Stop()

	log.Info("===========================================")
	log.Info("StudyVault Server Stopped")
	log.Info("===========================================")
}
