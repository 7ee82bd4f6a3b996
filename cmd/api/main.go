package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/barbeariamb/admin-api/internal/config"
	dbpkg "github.com/barbeariamb/admin-api/internal/db"
	"github.com/barbeariamb/admin-api/internal/mail"
	"github.com/barbeariamb/admin-api/internal/middleware"
	"github.com/barbeariamb/admin-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := config.NewRedisClient(cfg)
	mailer := mail.NewSMTPMailer(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, mailer, logger, cfg)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
