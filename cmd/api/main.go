package main

import (
	"os"

	"github.com/yigit/rollbook/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/rollbook/internal/server"
)

// @title RollBook API
// @version 1.0
// @description Course enrollment and grade book for a university registry
// @BasePath /api/v1

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
