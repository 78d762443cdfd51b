package app

import (
	"github.com/guttosm/export-go/config"
	"github.com/guttosm/export-go/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter maps the configuration and services onto the router
// configuration and registers the MongoDB readiness checks.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	routerCfg := http.DefaultRouterConfig()
	routerCfg.RateLimit = cfg.Server.RateLimit
	routerCfg.RateWindow = cfg.Server.RateWindow
	routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	routerCfg.EnableAuth = cfg.Auth.Enabled
	routerCfg.APIKeys = cfg.Auth.APIKeys
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	routerCfg.LanguageCookie = http.CookieOptions{
		MaxAge: cfg.Site.CookieMaxAge,
		Secure: cfg.Site.CookieSecure,
	}

	if services != nil {
		routerCfg.Calculator = services.Calculator
		routerCfg.SiteService = services.Site
		routerCfg.Languages = services.Languages
		routerCfg.AuthService = services.Auth
	}

	if db != nil {
		routerCfg.LoggingService = db.LoggingService
		if db.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(db.DB.HealthCheck))
		}
		if db.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker(logsCircuitName, db.LogsCircuitBreaker)
		}
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
