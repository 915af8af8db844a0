package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/srezaie/resto-board/config"
	"github.com/srezaie/resto-board/controllers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ConfigureLogging()
	logrus.Info("Starting restaurant dashboard server...")

	db, err := config.Connect(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Migrations run once, before any request is served. A failure
	// here is fatal; the process never serves a half-initialized
	// schema.
	if err := config.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := controllers.NewRouter(db, cfg)

	addr := ":" + cfg.Port
	logrus.Infof("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
