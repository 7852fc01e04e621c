package testhelpers

import (
	"io"
	"testing"

	"github.com/deppfellow/biztime/internal/config"
	"github.com/deppfellow/biztime/internal/logger"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/rs/zerolog"
)

// NewTestConfig returns a complete configuration for tests. No connection
// is made from it.
func NewTestConfig(codeMode string) *config.Config {
	obs := config.DefaultObservabilityConfig()
	obs.ServiceName = "biztime"
	obs.Environment = "test"

	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			Name:            "biztime_test",
			SSLMode:         "disable",
			MaxOpenConns:    5,
			MaxIdleConns:    1,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 60,
		},
		Company:       config.CompanyConfig{CodeMode: codeMode},
		Observability: obs,
	}
}

// NewTestServer builds a Server without a database. Logs are discarded
// unless testing.Verbose is set.
func NewTestServer(t *testing.T, codeMode string) *server.Server {
	t.Helper()

	cfg := NewTestConfig(codeMode)

	var w io.Writer = io.Discard
	if testing.Verbose() {
		w = zerolog.NewTestWriter(t)
	}
	log := logger.NewLogger(w, cfg.Observability)

	return &server.Server{
		Config:        cfg,
		Logger:        &log,
		LoggerService: logger.NewLoggerService(cfg.Observability),
	}
}
