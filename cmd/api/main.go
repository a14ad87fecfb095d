package main

import (
	"os"

	"github.com/acadbase/acadbase/internal/pkg/logger"
	"github.com/acadbase/acadbase/internal/server"
)

// @title AcadBase API
// @version 1.0
// @description Institutional management backend: departments, faculty records, publications, awards and PDF reports

// @contact.name API Support
// @contact.email support@acadbase.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

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

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
