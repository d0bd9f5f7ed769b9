package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/arda/campusconnect/internal/pkg/logger"
	"github.com/arda/campusconnect/internal/server"
)

// @title CampusConnect API
// @version 1.0
// @description API for the CampusConnect campus community platform

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Environment variables from .env override config file values
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment as-is")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
