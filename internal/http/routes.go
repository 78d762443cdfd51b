package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require authentication.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup)
}

var (
	_ PublicRouteGroup    = (*CalculatorRoutes)(nil)
	_ PublicRouteGroup    = (*SiteRoutes)(nil)
	_ PublicRouteGroup    = (*LanguageRoutes)(nil)
	_ PublicRouteGroup    = (*AuthRoutes)(nil)
	_ ProtectedRouteGroup = (*AuthRoutes)(nil)
)

// CalculatorRoutes registers the calculator API and page.
type CalculatorRoutes struct {
	api  *CalculatorHandler
	page *CalculatorPage
}

// NewCalculatorRoutes creates calculator routes.
func NewCalculatorRoutes(api *CalculatorHandler, page *CalculatorPage) *CalculatorRoutes {
	return &CalculatorRoutes{api: api, page: page}
}

// RegisterPublicRoutes registers POST /calculate.
func (r *CalculatorRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculate", r.api.Calculate)
}

// RegisterPageRoutes registers the server rendered calculator page.
func (r *CalculatorRoutes) RegisterPageRoutes(router gin.IRoutes) {
	router.GET("/calculator", r.page.Show)
	router.POST("/calculator", r.page.Submit)
}

// SiteRoutes registers the site behaviour endpoints.
type SiteRoutes struct {
	handler *SiteHandler
}

// NewSiteRoutes creates site routes.
func NewSiteRoutes(handler *SiteHandler) *SiteRoutes {
	return &SiteRoutes{handler: handler}
}

// RegisterPublicRoutes registers the /site endpoints.
func (r *SiteRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	s := rg.Group("/site")
	{
		s.GET("/nav", r.handler.Nav)
		s.GET("/services", r.handler.Services)
		s.GET("/panels/:group", r.handler.Panels)
		s.GET("/anchor", r.handler.Anchor)
	}
}

// LanguageRoutes registers translations and the language preference.
type LanguageRoutes struct {
	handler *LanguageHandler
}

// NewLanguageRoutes creates language routes.
func NewLanguageRoutes(handler *LanguageHandler) *LanguageRoutes {
	return &LanguageRoutes{handler: handler}
}

// RegisterPublicRoutes registers /i18n and /preferences.
func (r *LanguageRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/i18n/:lang", r.handler.Dictionary)
	rg.GET("/preferences/language", r.handler.GetPreference)
	rg.PUT("/preferences/language", r.handler.SetPreference)
}

// AuthRoutes registers the admin login and the admin-only endpoints.
type AuthRoutes struct {
	auth *AuthHandler
	logs *LogsHandler
}

// NewAuthRoutes creates auth routes.
func NewAuthRoutes(auth *AuthHandler, logs *LogsHandler) *AuthRoutes {
	return &AuthRoutes{auth: auth, logs: logs}
}

// RegisterPublicRoutes registers POST /auth/login.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", r.auth.Login)
}

// RegisterProtectedRoutes registers the /admin endpoints. rg must already
// require a valid admin token.
func (r *AuthRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	{
		admin.GET("/me", r.auth.Me)
		admin.GET("/logs", r.logs.Query)
	}
}
