// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"wordtrainer/config"
	"wordtrainer/internal/delivery/api/middleware"
	"wordtrainer/internal/delivery/api/response"
	"wordtrainer/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	DictionaryHandler *handler.DictionaryHandler
	WordHandler       *handler.WordHandler
	PracticeHandler   *handler.PracticeHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	dictionaryHandler *handler.DictionaryHandler
	wordHandler       *handler.WordHandler
	practiceHandler   *handler.PracticeHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		dictionaryHandler: params.DictionaryHandler,
		wordHandler:       params.WordHandler,
		practiceHandler:   params.PracticeHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/ping", handler.Ping)

	authenticate := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := e.Group("/auth")
	if limiter := r.authRateLimiter(); limiter != nil {
		authGroup.Use(limiter)
	}
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/signin", r.authHandler.Signin)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
	}

	// Profile routes, all protected
	profileGroup := e.Group("/profile")
	profileGroup.Use(authenticate)
	{
		profileGroup.POST("", r.profileHandler.CreateProfile)
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
	}

	// Dictionary routes: reads are public, writes need an account
	dictionaryGroup := e.Group("/dictionary")
	{
		dictionaryGroup.GET("", r.dictionaryHandler.ListEntries)
		dictionaryGroup.GET("/:id", r.dictionaryHandler.GetEntry)
		dictionaryGroup.GET("/:id/qr", r.dictionaryHandler.EntryQRCode)
		dictionaryGroup.POST("/qr/resolve", r.dictionaryHandler.ResolveQRCode)

		dictionaryGroup.POST("", r.dictionaryHandler.CreateEntry, authenticate)
		dictionaryGroup.PUT("/:id", r.dictionaryHandler.UpdateEntry, authenticate)
		dictionaryGroup.DELETE("/:id", r.dictionaryHandler.DeleteEntry, authenticate)
	}

	// Word list and practice routes, all protected
	wordsGroup := e.Group("/words")
	wordsGroup.Use(authenticate)
	{
		wordsGroup.POST("", r.wordHandler.CreateWord)
		wordsGroup.GET("", r.wordHandler.ListWords)
		wordsGroup.GET("/:id", r.wordHandler.GetWord)
		wordsGroup.PUT("/:id", r.wordHandler.UpdateWord)
		wordsGroup.DELETE("/:id", r.wordHandler.DeleteWord)

		wordsGroup.POST("/:id/practice", r.practiceHandler.RecordPractice)
		wordsGroup.GET("/:id/stats", r.practiceHandler.GetStats)
	}
}

// authRateLimiter throttles signup and signin per client IP. It returns nil when
// http.rateLimit.requestsPerSecond is not set.
func (r *router) authRateLimiter() echo.MiddlewareFunc {
	limit := r.config.HTTP.RateLimit
	if limit.RequestsPerSecond <= 0 {
		return nil
	}

	burst := limit.Burst
	if burst <= 0 {
		burst = max(1, int(limit.RequestsPerSecond))
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(limit.RequestsPerSecond),
		Burst: burst,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please slow down", nil)
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMITED", "Could not identify client", nil)
		},
	})
}
