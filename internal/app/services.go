package app

import (
	"fmt"

	"github.com/guttosm/export-go/config"
	"github.com/guttosm/export-go/internal/service"
	"github.com/guttosm/export-go/internal/site"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Calculator service.Calculator
	Site       service.SiteService
	Languages  service.LanguageService
	// Auth is nil when no admin account is configured.
	Auth service.AuthService
}

// InitializeServices builds the calculator, site, language and auth services.
// It fails only when a configured site content file cannot be loaded.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	content, err := site.Load(cfg.Site.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load site content: %w", err)
	}

	components := &ServiceComponents{
		Calculator: service.NewCalculatorService(
			service.WithFormatting(cfg.Calculator.Locale, cfg.Calculator.Currency),
		),
		Site:      service.NewSiteService(content),
		Languages: service.NewLanguageService(),
	}
	if cfg.Auth.AdminConfigured() {
		components.Auth = service.NewAuthService(cfg.Auth)
	}
	return components, nil
}
