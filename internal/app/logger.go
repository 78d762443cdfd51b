package app

import (
	"github.com/guttosm/export-go/config"
	"github.com/guttosm/export-go/internal/logger"
)

// InitializeLogger configures the global zerolog logger from LOG_LEVEL and
// LOG_PRETTY.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
