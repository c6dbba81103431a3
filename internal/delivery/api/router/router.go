// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authcore/config"
	"authcore/internal/delivery/api/middleware"
	"authcore/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authLimiter := r.limiter(func(cfg *config.RateLimitConfig) *config.RateLimitRule { return cfg.Auth },
		"Too many authentication attempts. Please try again later")
	otpLimiter := r.limiter(func(cfg *config.RateLimitConfig) *config.RateLimitRule { return cfg.OTP },
		"Too many OTP requests. Please try again later")

	authGroup := e.Group("/api/v1/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup, authLimiter)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOtp, otpLimiter)
		authGroup.POST("/resend-otp", r.authHandler.ResendOtp, otpLimiter)
		authGroup.POST("/login", r.authHandler.Login, authLimiter)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)

		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
		authGroup.POST("/google", r.authHandler.GoogleTokenLogin, authLimiter)
	}

	// Routes below require a valid access token
	sessionGroup := authGroup.Group("", r.authMiddleware.Authenticate)
	{
		sessionGroup.POST("/logout", r.authHandler.Logout)
		sessionGroup.POST("/logout-all", r.authHandler.LogoutAll)
		sessionGroup.GET("/sessions", r.authHandler.ListSessions)
		sessionGroup.GET("/me", r.authHandler.Me)
	}
}

// limiter builds an IP rate limiter for the selected rule, or a pass-through when it is not configured.
func (r *router) limiter(rule func(*config.RateLimitConfig) *config.RateLimitRule, message string) echo.MiddlewareFunc {
	if r.config.RateLimit == nil || rule(r.config.RateLimit) == nil || rule(r.config.RateLimit).Requests <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return middleware.NewIPRateLimiter(rule(r.config.RateLimit), message)
}
