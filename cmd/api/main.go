package main

import (
	"os"

	"github.com/cohorttools/cohort-api/internal/pkg/logger"
	"github.com/cohorttools/cohort-api/internal/server"
)

// @title Cohort Tools API
// @version 1.0
// @description API for managing students, cohorts and user sessions

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5005
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
