package main

import (
	"os"

	"github.com/faceit/backend/internal/pkg/logger"
	"github.com/faceit/backend/internal/server"
)

// @title FaceIT API
// @version 0.1.0
// @description Backend-for-frontend for the FaceIT course management app

// @host localhost:8000
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access token issued by the hosted auth provider

func main() {
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
