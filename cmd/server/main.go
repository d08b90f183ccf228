package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/iho/leaveflow/internal/adapter/extractor"
	httpAdapter "github.com/iho/leaveflow/internal/adapter/http"
	"github.com/iho/leaveflow/internal/adapter/http/handler"
	"github.com/iho/leaveflow/internal/adapter/prompt"
	"github.com/iho/leaveflow/internal/adapter/repository/memory"
	"github.com/iho/leaveflow/internal/infrastructure/config"
	"github.com/iho/leaveflow/internal/infrastructure/logger"
	"github.com/iho/leaveflow/internal/infrastructure/roster"
	"github.com/iho/leaveflow/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	// Load the employee roster
	employees := roster.Default()
	if cfg.RosterFile != "" {
		employees, err = roster.Load(cfg.RosterFile)
		if err != nil {
			appLogger.Fatal().Err(err).Str("path", cfg.RosterFile).Msg("failed to load roster")
		}
	}
	appLogger.Info().Int("employees", len(employees)).Msg("roster loaded")

	// Initialize repositories
	balanceRepo := memory.NewBalanceRepository(employees)
	historyRepo := memory.NewHistoryRepository()
	idGen := memory.NewULIDGenerator()

	// Initialize the intent extractor
	intentExtractor := extractor.New(extractor.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.ExtractionTimeout,
		Logger:  appLogger,
	})

	// Initialize use cases
	ledgerUC := usecase.NewLedgerUseCase(balanceRepo)
	lifecycleUC := usecase.NewLifecycleUseCase(ledgerUC, historyRepo, idGen)
	historyUC := usecase.NewHistoryUseCase(historyRepo)
	dialogueUC := usecase.NewDialogueUseCase(
		ledgerUC, lifecycleUC, historyUC,
		intentExtractor, prompt.NewStatic(), appLogger,
	)

	// Initialize handlers
	messageHandler := handler.NewMessageHandler(dialogueUC)
	leaveHandler := handler.NewLeaveHandler(ledgerUC, lifecycleUC, historyUC)
	healthHandler := handler.NewHealthHandler(len(employees))

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		MessageHandler: messageHandler,
		LeaveHandler:   leaveHandler,
		HealthHandler:  healthHandler,
		Logger:         appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
