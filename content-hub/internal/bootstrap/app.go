// Package bootstrap handles application initialization and lifecycle management
// for the content-hub service.
package bootstrap

import (
	"context"
	"fmt"

	infralogger "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/logger"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/profiling"
	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/tracing"
)

const version = "dev"

// Start initializes and runs the content-hub until SIGINT or SIGTERM.
func Start() error {
	// Phase 1: Load config and create logger
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg, version)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	// Phase 2: Start profiling server (if enabled)
	stopProfiling := profiling.Start(cfg.Profiling, log)
	defer func() { _ = stopProfiling(ctx) }()

	// Phase 3: Tracer provider (if an OTLP endpoint is configured)
	stopTracing, err := tracing.Start(ctx, cfg.Tracing, serviceName, log)
	if err != nil {
		return fmt.Errorf("failed to start tracing: %w", err)
	}
	defer func() { _ = stopTracing(ctx) }()

	// Phase 4: Transport, events and facades
	services := NewServices(ctx, cfg, log)
	defer services.Close()

	// Phase 5: Setup and run HTTP server
	server := SetupHTTPServer(cfg, services, log)

	log.Info("Starting HTTP server",
		infralogger.String("address", cfg.Server.Address()),
		infralogger.Bool("offline", cfg.Offline()),
	)

	if runErr := server.Run(ctx); runErr != nil {
		log.Error("Server error", infralogger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Server exited")
	return nil
}
