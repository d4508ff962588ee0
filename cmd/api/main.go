package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-bidtrack-backend/config"
	v1 "go-bidtrack-backend/internal/delivery/http/v1"
	"go-bidtrack-backend/internal/repository/file"
	"go-bidtrack-backend/internal/repository/postgres"
	"go-bidtrack-backend/internal/scheduler"
	"go-bidtrack-backend/internal/usecase"
	"go-bidtrack-backend/pkg/database"
	"go-bidtrack-backend/pkg/logger"
	"go-bidtrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Debug)
	logger.Log.Info("Starting bidtrack backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	bidRepo := postgres.NewBidRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	history := postgres.NewCompanyHistoryRepository(dbPool)
	resumeRepo := file.NewResumeRepository(cfg.ResumeDir, time.Duration(cfg.ResumeCacheTTLSeconds)*time.Second)

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	bidUC := usecase.NewBidUsecase(bidRepo, cfg.AutoRejectAfterDays)
	createBidUC := usecase.NewCreateBidUsecase(bidRepo, resumeRepo, history, validate)
	rebidUC := usecase.NewRebidUsecase(bidRepo, history)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, bidRepo, history)
	scheduleUC := usecase.NewScheduleInterviewUsecase(interviewRepo, bidRepo, history)

	// 6. Setup Auto-Reject Scheduler
	sweep, err := scheduler.NewAutoRejectScheduler(cfg.AutoRejectCron, bidUC)
	if err != nil {
		logger.Log.Error("Invalid auto-reject cron spec", "spec", cfg.AutoRejectCron, "error", err)
		os.Exit(1)
	}
	sweep.Start()
	defer sweep.Stop()

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		BidUC:       bidUC,
		CreateBidUC: createBidUC,
		RebidUC:     rebidUC,
		InterviewUC: interviewUC,
		ScheduleUC:  scheduleUC,
		History:     history,
		ResumeRepo:  resumeRepo,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
}
