// Package config holds coordinator configuration, parsed from environment
// variables prefixed with MRWORD_.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the coordinator process.
type Config struct {
	// HTTP Configuration — operator surface (spec.md §6).
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// gRPC Configuration — worker dispatch surface (spec.md §6).
	GRPCPort int `envconfig:"GRPC_PORT" default:"50051"`

	// DeadThresholdSeconds is how long, in seconds, a worker may go unseen
	// before the liveness sweeper evicts it (spec.md §4.1, §4.5).
	DeadThresholdSeconds int `envconfig:"DEAD_THRESHOLD_SECONDS" default:"15"`

	// SweepIntervalSeconds is how often, in seconds, the liveness sweeper
	// runs (spec.md §4.5).
	SweepIntervalSeconds int `envconfig:"SWEEP_INTERVAL_SECONDS" default:"5"`

	// ActiveThresholdSeconds controls the EngineInfo "active" vs "idle"
	// cutoff reported by GET /api/engines (spec.md §6).
	ActiveThresholdSeconds int `envconfig:"ACTIVE_THRESHOLD_SECONDS" default:"10"`

	// AppName is the database/app name (spec.md §6). It is reported in the
	// startup configuration log; the persistence sink does not use it.
	AppName string `envconfig:"APPNAME" default:"mrword"`

	// PersistenceDSN is the connection string template for the
	// persistence sink (spec.md §6 "persistence connection string and
	// its template fields"). Empty disables persistence (null sink).
	PersistenceDSN string `envconfig:"PERSISTENCE_DSN" default:"mrword.db"`

	// CORSOrigins is "*" (no credentials) or a comma-separated list of
	// exact origins (credentials enabled) — spec.md §6.
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`
}

// New parses Config from environment variables prefixed MRWORD_, e.g.
// MRWORD_HTTP_PORT, MRWORD_GRPC_PORT.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MRWORD", &cfg); err != nil {
		return nil, fmt.Errorf("process environment variables: %w", err)
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Int("grpc_port", cfg.GRPCPort).
		Int("dead_threshold_seconds", cfg.DeadThresholdSeconds).
		Int("sweep_interval_seconds", cfg.SweepIntervalSeconds).
		Str("app_name", cfg.AppName).
		Str("cors_origins", cfg.CORSOrigins).
		Msg("configuration loaded")

	return &cfg, nil
}

// CORSOriginList splits CORSOrigins into allowed origins and reports
// whether credentialed requests should be allowed. A bare "*" disables
// credentials, matching spec.md §6's rule that wildcard origins and
// credentials are mutually exclusive.
func (c *Config) CORSOriginList() (origins []string, allowCredentials bool) {
	raw := strings.TrimSpace(c.CORSOrigins)
	if raw == "*" || raw == "" {
		return []string{"*"}, false
	}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins, true
}

// HTTPAddr returns the operator HTTP surface listen address.
func (c *Config) HTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }

// GRPCAddr returns the worker RPC surface listen address.
func (c *Config) GRPCAddr() string { return fmt.Sprintf(":%d", c.GRPCPort) }
