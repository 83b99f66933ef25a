package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wedding/guesthub/internal/config"
	"wedding/guesthub/internal/handler/middleware"
	jwtpkg "wedding/guesthub/pkg/jwt"
	"wedding/guesthub/pkg/response"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db Pinger,
	jwtManager *jwtpkg.Manager,
	revocations middleware.RevocationChecker,
	limiter middleware.Counter,
	authHandler *AuthHandler,
	checkInHandler *CheckInHandler,
	rsvpHandler *RSVPHandler,
	guestHandler *GuestHandler,
	wishHandler *WishHandler,
	eventHandler *EventHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			response.Error(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAdmin := middleware.JWTAuth(jwtManager, revocations)
	optionalAdmin := middleware.OptionalJWTAuth(jwtManager, revocations)
	limit := func(scope string) gin.HandlerFunc {
		if !cfg.RateLimit.Enabled || limiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimit(limiter, scope, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
	}

	api := r.Group("/api")

	// Public routes
	api.POST("/auth/login", limit("login"), authHandler.Login)
	api.POST("/rsvp", limit("rsvp"), rsvpHandler.Submit)
	api.GET("/invite/:slug", rsvpHandler.Invitation)
	api.GET("/wishes", optionalAdmin, wishHandler.List)
	api.POST("/wishes", limit("wishes"), wishHandler.Submit)
	api.GET("/event-settings", eventHandler.Get)

	// Admin routes
	admin := api.Group("")
	admin.Use(requireAdmin)
	{
		admin.POST("/auth/logout", authHandler.Logout)

		admin.POST("/check-in", checkInHandler.Handle)

		admin.GET("/guests", guestHandler.List)
		admin.POST("/guests", guestHandler.Create)
		admin.GET("/guests/stats", guestHandler.Stats)
		admin.GET("/guests/export.csv", guestHandler.ExportCSV)
		admin.GET("/guests/:id", guestHandler.Get)
		admin.PUT("/guests/:id", guestHandler.Update)
		admin.DELETE("/guests/:id", guestHandler.Delete)
		admin.GET("/guests/:id/qr.png", guestHandler.QRCode)
		admin.GET("/guests/:id/share", guestHandler.Share)

		admin.PUT("/wishes/approve-all", wishHandler.ApproveAll)
		admin.PUT("/wishes/:id", wishHandler.SetApproval)
		admin.DELETE("/wishes/:id", wishHandler.Delete)

		admin.PUT("/event-settings", eventHandler.Update)
	}

	return r
}
