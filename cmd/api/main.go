package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/avtoservice/workshop-scheduler/internal/config"
	dbpkg "github.com/avtoservice/workshop-scheduler/internal/db"
	"github.com/avtoservice/workshop-scheduler/internal/logger"
	"github.com/avtoservice/workshop-scheduler/internal/routes"
)

func main() {

	// Missing .env is fine in containers, env vars come from the runtime.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
