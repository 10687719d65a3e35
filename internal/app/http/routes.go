package routes

import (
	accountsapi "clipgenie/internal/api/accounts"
	brandkitapi "clipgenie/internal/api/brandkit"
	clipsapi "clipgenie/internal/api/clips"
	plansapi "clipgenie/internal/api/plans"
	stripewebhooks "clipgenie/internal/api/stripewebhook"
	teamapi "clipgenie/internal/api/team"
	"clipgenie/internal/app/http/middleware"
	"clipgenie/internal/domain/accounts"
	billing "clipgenie/internal/infra/stripe"
	"clipgenie/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Store         accounts.Store
	Registry      *session.Registry
	Log           *zap.Logger
	JWTSecret     string
	WebhookSecret string
	Prices        billing.PriceMap
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if d.WebhookSecret != "" {
		webhooks := &stripewebhooks.Handler{
			Store:    d.Store,
			Registry: d.Registry,
			Prices:   d.Prices,
			Secret:   d.WebhookSecret,
			Log:      d.Log,
		}
		r.POST("/webhook", webhooks.StripeWebhook)
	}

	r.GET("/plans", plansapi.ListPlans)
	r.GET("/plans/:plan", plansapi.GetPlan)

	// Authenticated, account loaded
	auth := r.Group("/")
	auth.Use(
		middleware.AuthMiddleware(d.JWTSecret),
		middleware.LoadAccount(d.Store, d.Registry, d.Log),
		middleware.SanitizeAndCleanInputMiddleware(),
	)
	auth.GET("/me", accountsapi.GetCurrentAccount)

	auth.GET("/brand-kit", brandkitapi.GetBrandKit)
	auth.PUT("/brand-kit", brandkitapi.UpdateBrandKit)

	auth.GET("/team/members", teamapi.ListMembers)
	auth.POST("/team/members", teamapi.AddMember)
	auth.GET("/team/members/:user_id", teamapi.GetMember)
	auth.DELETE("/team/members/:user_id", teamapi.RemoveMember)

	auth.POST("/clips/render", clipsapi.RenderClip)

	// Admin routes
	adminHandler := &accountsapi.AdminHandler{Store: d.Store, Registry: d.Registry, Log: d.Log}
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(d.JWTSecret),
		middleware.RequireRole("admin"),
		middleware.SanitizeAndCleanInputMiddleware(),
	)
	admin.PUT("/accounts/:id/plan", adminHandler.SetPlan)
}
