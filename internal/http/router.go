package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/export-go/internal/metrics"
	"github.com/guttosm/export-go/internal/middleware"
	"github.com/guttosm/export-go/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	EnableAuth        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LanguageCookie    CookieOptions

	Calculator     service.Calculator
	SiteService    service.SiteService
	Languages      service.LanguageService
	AuthService    service.AuthService
	LoggingService service.LoggingService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    10 * time.Second,
		EnableIdempotency: true,
		LanguageCookie:    CookieOptions{MaxAge: 365 * 24 * time.Hour},
	}
}

// Router is the configured gin engine plus the background loops its
// middleware started. Close stops them.
type Router struct {
	*gin.Engine
	closers []func()
}

// Close stops the rate limiter and idempotency cache cleanup loops.
func (r *Router) Close() {
	for _, closeFn := range r.closers {
		closeFn()
	}
	r.closers = nil
}

// infrastructurePaths are probed or scraped often and kept out of request logs.
var infrastructurePaths = []string{"/healthz", "/readyz", "/metrics"}

// NewRouter creates and configures the Gin router for export-go. Services
// left nil in cfg fall back to their defaults; a nil AuthService disables
// the admin routes and a nil LoggingService disables request storage and
// auditing.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *Router {
	applyServiceDefaults(&cfg)

	r := &Router{Engine: gin.New()}

	configureGlobalMiddleware(r, &cfg)
	registerInfrastructureRoutes(r.Engine, healthHandler, &cfg)

	calculatorRoutes := NewCalculatorRoutes(
		NewCalculatorHandler(cfg.Calculator, cfg.LoggingService),
		NewCalculatorPage(cfg.Calculator),
	)
	calculatorRoutes.RegisterPageRoutes(r.Engine)

	api := r.Group("/api")
	configureAPIMiddleware(r, api, &cfg)

	public := api.Group("")
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		public.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
	calculatorRoutes.RegisterPublicRoutes(public)
	NewSiteRoutes(NewSiteHandler(cfg.SiteService)).RegisterPublicRoutes(public)
	NewLanguageRoutes(NewLanguageHandler(cfg.Languages, cfg.LoggingService, cfg.LanguageCookie)).RegisterPublicRoutes(public)

	if cfg.AuthService != nil {
		registerAdminRoutes(r, api, &cfg)
	}

	return r
}

func applyServiceDefaults(cfg *RouterConfig) {
	if cfg.Calculator == nil {
		cfg.Calculator = service.NewCalculatorService()
	}
	if cfg.SiteService == nil {
		cfg.SiteService = service.NewSiteService(nil)
	}
	if cfg.Languages == nil {
		cfg.Languages = service.NewLanguageService()
	}
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(r *Router, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{middleware.RequestIDHeader, middleware.IdempotencyReplayedHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(
		middleware.RequestID(),
		middleware.Locale(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics"),
		middleware.RequestLogger(cfg.LoggingService, infrastructurePaths...),
		middleware.ErrorHandler(),
		middleware.Timeout(middleware.TimeoutConfig{
			Timeout:   cfg.RequestTimeout,
			SkipPaths: []string{"/swagger/*any", "/metrics"},
		}),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.closers = append(r.closers, limiter.Stop)
		r.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler == nil {
		healthHandler = NewHealthHandler()
	}
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(r *Router, api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.DefaultIdempotencyConfig()
		r.closers = append(r.closers, idempotencyCfg.Cache.Close)
		api.Use(middleware.Idempotency(idempotencyCfg))
	}
}

// registerAdminRoutes registers login and the JWT protected admin group.
func registerAdminRoutes(r *Router, api *gin.RouterGroup, cfg *RouterConfig) {
	authRoutes := NewAuthRoutes(
		NewAuthHandler(cfg.AuthService, cfg.LoggingService),
		NewLogsHandler(cfg.LoggingService),
	)
	authRoutes.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(cfg.AuthService))
	if cfg.RateLimit > 0 {
		userLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.closers = append(r.closers, userLimiter.Stop)
		protected.Use(userLimiter.UserRateLimit())
	}
	authRoutes.RegisterProtectedRoutes(protected)
}
