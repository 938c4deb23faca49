package app

import (
	"os"
	"time"

	"github.com/ngocdev/portfolio-api/internal/config"
	"github.com/ngocdev/portfolio-api/internal/logger"

	"go.uber.org/zap"
)

// Options holds the application startup options.
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
}

// normalizeOptions fills defaults.
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return opts
}
