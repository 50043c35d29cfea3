package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NovaLinkServices/salon-scheduler/internal/config"
	dbpkg "github.com/NovaLinkServices/salon-scheduler/internal/db"
	"github.com/NovaLinkServices/salon-scheduler/internal/logger"
	"github.com/NovaLinkServices/salon-scheduler/internal/middleware"
	"github.com/NovaLinkServices/salon-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	logger.Init(cfg.IsProduction())
	log := logger.Get()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
