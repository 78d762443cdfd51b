// Package main is the entry point for the export-go application.
//
// @title           export-go API
// @version         1.0.0
// @description     Import duty and VAT calculator with the behaviours of the export-go marketing site.
//
//	The calculator is available as a JSON API and as a server rendered form at /calculator.
//
// @contact.name   API Support
// @contact.email  support@export-go.com
// @contact.url    https://github.com/guttosm/export-go
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for the public API. Required if AUTH_ENABLED is set.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Admin access token, as "Bearer <token>".
//
// @tag.name        Calculator
// @tag.description Duty and VAT calculation
//
// @tag.name        Site
// @tag.description Navigation, service filters, panels and anchors
//
// @tag.name        Language
// @tag.description Dictionaries and the language preference
//
// @tag.name        Auth
// @tag.description Admin login
//
// @tag.name        Admin
// @tag.description Request and audit logs
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/export-go/docs" // swagger docs

	"github.com/guttosm/export-go/config"
	"github.com/guttosm/export-go/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := application.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
