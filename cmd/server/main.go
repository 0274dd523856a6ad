package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/config"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/database"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/extlink"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/report"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/scheduler"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the store
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.Seed.DemoData {
		if err := database.SeedDemoData(db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	atrqRepo := repository.NewAtrqRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	fieldRepo := repository.NewFieldRepository(db)
	breachRepo := repository.NewBreachRepository(db)

	// Pick the analysis provider: Gemini when a credential is present,
	// deterministic otherwise. Gemini setup failure is not fatal.
	var provider report.Provider = report.NewStaticProvider()
	if cfg.AI.APIKey != "" {
		gemini, err := report.NewGeminiProvider(
			context.Background(),
			cfg.AI.APIKey,
			cfg.AI.Model,
			time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
		)
		if err != nil {
			log.Printf("Gemini provider unavailable, using static reports: %v", err)
		} else {
			provider = gemini
			log.Printf("Analysis reports backed by %s", cfg.AI.Model)
		}
	}

	extLinkService, err := extlink.NewService(cfg.ExternalPortfolio)
	if err != nil {
		log.Fatalf("Failed to configure external portfolio link: %v", err)
	}

	// Create services
	userService := service.NewUserService(userRepo)
	portfolioService := service.NewPortfolioService(portfolioRepo)
	goalService := service.NewGoalService(goalRepo)
	atrqService := service.NewAtrqService(atrqRepo)
	ruleService := service.NewRuleService(ruleRepo)
	fieldService := service.NewFieldService(fieldRepo)
	breachService := service.NewBreachService(breachRepo, portfolioRepo)
	reportService := service.NewReportService(portfolioRepo, breachRepo, atrqRepo, provider)
	systemService := service.NewSystemService(db)

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		User:      userService,
		Portfolio: portfolioService,
		Goal:      goalService,
		Atrq:      atrqService,
		Rule:      ruleService,
		Field:     fieldService,
		Breach:    breachService,
		Report:    reportService,
		ExtLink:   extLinkService,
	}, cfg)

	// Start the pending-breach digest job
	digest := scheduler.New(breachService)
	if err := digest.Start(cfg.Digest.Schedule); err != nil {
		log.Fatalf("Failed to start breach digest: %v", err)
	}
	defer digest.Stop()

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
