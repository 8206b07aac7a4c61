package main

import (
	"os"

	"github.com/wmad/library-backend/internal/pkg/logger"
)

// @title Library Management API
// @version 1.0
// @description REST backend for members, staff accounts, books, authors and book issues

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token: "Bearer <token>"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
