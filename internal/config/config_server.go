package config

import (
	"fmt"
	"time"
)

// ServerConfig is the development receiver view of [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address in "host:port" format.
	HTTPAddress string
	// RequestTimeout bounds reading and writing a single request.
	RequestTimeout time.Duration
	// AssignmentsPath and ConfigPath are the routes served by the receiver.
	AssignmentsPath string
	ConfigPath      string
}

// GetServerConfig builds and validates the receiver configuration. Endpoint
// paths are shared with the client so that both sides agree on the routes.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:     cfg.Server.HTTPAddress,
		RequestTimeout:  cfg.Server.RequestTimeout,
		AssignmentsPath: cfg.Adapter.AssignmentsPath,
		ConfigPath:      cfg.Adapter.ConfigPath,
	}
	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = DefaultServerAddress
	}
	if serverCfg.RequestTimeout <= 0 {
		serverCfg.RequestTimeout = DefaultRequestTimeout
	}
	if serverCfg.AssignmentsPath == "" {
		serverCfg.AssignmentsPath = DefaultAssignmentsPath
	}
	if serverCfg.ConfigPath == "" {
		serverCfg.ConfigPath = DefaultConfigPath
	}

	return serverCfg, serverCfg.validate()
}
