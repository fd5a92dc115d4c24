// Package corpuskit wires the engine's shared infrastructure from a single
// configuration: structured logging and the optional Prometheus scrape
// server.
package corpuskit

import (
	"context"

	"github.com/corpuskit/corpuskit/pkg/config"
	"github.com/corpuskit/corpuskit/pkg/logger"
	"github.com/corpuskit/corpuskit/pkg/metrics"
)

// Setup configures the default logger from cfg and, when metrics are
// enabled, starts the scrape server on the configured port. The returned
// shutdown function stops the server and is a no-op when metrics are
// disabled.
func Setup(cfg *config.Config) (shutdown func(context.Context) error) {
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Metrics.Enabled {
		return metrics.StartServer(cfg.Metrics.Port)
	}
	return func(context.Context) error { return nil }
}
