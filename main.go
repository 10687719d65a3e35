package main

import (
	"log"
	"time"

	"clipgenie/config"
	"clipgenie/database"
	routes "clipgenie/internal/app/http"
	"clipgenie/internal/app/http/middleware"
	"clipgenie/internal/domain/accounts"
	billing "clipgenie/internal/infra/stripe"
	"clipgenie/internal/logger"
	"clipgenie/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(config.APP_ENV, config.LOG_LEVEL)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logg.Sync() }()

	var store accounts.Store
	if config.DB_URL != "" {
		if err := database.InitDB(config.DB_URL, logg); err != nil {
			logg.Fatal("database init failed", zap.Error(err))
		}
		store = accounts.NewGormStore(database.DB)
	} else {
		logg.Warn("DB_URL not set, accounts are kept in memory")
		store = accounts.NewMemoryStore()
	}

	if config.APP_ENV == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logg))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Store:         store,
		Registry:      session.NewRegistry(logg),
		Log:           logg,
		JWTSecret:     config.JWT_SECRET,
		WebhookSecret: config.STRIPE_WEBHOOK_SECRET,
		Prices:        billing.NewPriceMap(config.STRIPE_PRICE_PRO, config.STRIPE_PRICE_BUSINESS),
	})

	if config.STRIPE_WEBHOOK_SECRET == "" {
		logg.Warn("STRIPE_WEBHOOK_SECRET not set, /webhook disabled")
	}

	logg.Info("listening", zap.String("port", config.PORT))
	if err := r.Run(":" + config.PORT); err != nil {
		logg.Fatal("server stopped", zap.Error(err))
	}
}
