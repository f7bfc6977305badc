package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/Rambadrinathan/vatika-studio/config"
	"github.com/Rambadrinathan/vatika-studio/database"
	"github.com/Rambadrinathan/vatika-studio/jobs"
	"github.com/Rambadrinathan/vatika-studio/logger"
	"github.com/Rambadrinathan/vatika-studio/routes"
)

func main() {
	// Initialize Structured Logger
	logger.Init()
	defer logger.Close()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	// Optional YAML config layered under env vars
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := config.ReadConfig(path); err != nil {
			logger.Fatal("Failed to read config file", "path", path, "error", err)
		}
	}

	// Initialize DB
	database.InitDB()

	// Start background design save worker
	jobs.GetWorker()

	// Setup Router
	r := routes.SetupRouter()

	port := config.GetEnv("PORT", "8080")
	logger.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Error("Server failed to start", "error", err)
	}
}
