package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when no source sets a value.
const (
	DefaultServerAddress   = "localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultToastDuration   = 3 * time.Second
	DefaultAssignmentsPath = "/api/updateDeviceAssignments"
	DefaultConfigPath      = "/api/updateConfig"
)

// ClientApp holds client behaviour settings.
type ClientApp struct {
	// Encoding is the device assignments payload encoding.
	Encoding string
	// ToastDuration is the notification lifetime.
	ToastDuration time.Duration
	// InventoryPath is the YAML inventory file; may be empty.
	InventoryPath string
	// Batch enables headless submission of the inventory assignments.
	Batch bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base address.
	HTTPAddress string
	// RequestTimeout is the timeout for a single submit request.
	RequestTimeout time.Duration
	// AssignmentsPath is the device assignments endpoint.
	AssignmentsPath string
	// ConfigPath is the configuration endpoint.
	ConfigPath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Log     Log
}

// GetClientConfig builds and validates the client configuration from .env,
// the environment, args (command-line flags without the program name) and
// the optional JSON file, then applies defaults.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Encoding:      cfg.App.Encoding,
			ToastDuration: cfg.App.ToastDuration,
			InventoryPath: cfg.App.InventoryPath,
			Batch:         cfg.App.Batch,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			AssignmentsPath: cfg.Adapter.AssignmentsPath,
			ConfigPath:      cfg.Adapter.ConfigPath,
		},
		Log: cfg.Log,
	}

	if clientCfg.App.Encoding == "" {
		clientCfg.App.Encoding = EncodingJSON
	}
	if clientCfg.App.ToastDuration <= 0 {
		clientCfg.App.ToastDuration = DefaultToastDuration
	}
	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = DefaultServerAddress
	}
	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Adapter.AssignmentsPath == "" {
		clientCfg.Adapter.AssignmentsPath = DefaultAssignmentsPath
	}
	if clientCfg.Adapter.ConfigPath == "" {
		clientCfg.Adapter.ConfigPath = DefaultConfigPath
	}

	return clientCfg
}
