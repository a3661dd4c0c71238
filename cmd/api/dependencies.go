package main

import (
	"log/slog"
	"net/http"

	"github.com/spendscope/spendscope/internal/domain/analysis"
	analysishandler "github.com/spendscope/spendscope/internal/domain/analysis/handler"
	"github.com/spendscope/spendscope/internal/server"
	"github.com/spendscope/spendscope/pkg/config"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	// Services
	Analyzer *analysis.Analyzer

	// Handlers
	AnalyzeHandler *analysishandler.AnalyzeHandler

	// Router
	Handler http.Handler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.Analyzer = analysis.New(logger)
	deps.AnalyzeHandler = analysishandler.NewAnalyzeHandler(deps.Analyzer, cfg.Server.MaxUploadBytes, logger)
	deps.Handler = server.New(cfg, deps.AnalyzeHandler, logger)

	logger.Info("all dependencies initialized successfully")
	return deps
}
