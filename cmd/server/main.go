package main

import (
	"os"

	"newsline/internal/db"
	"newsline/internal/logger"
	"newsline/internal/middleware"
	"newsline/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.L.Info("no .env file found, reading env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.L.Info("newsline server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.L.Fatal("server exited", zap.Error(err))
	}
}
