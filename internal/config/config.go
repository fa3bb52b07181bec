// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Payload encodings supported by the submission dispatcher.
const (
	// EncodingJSON sends the rows as an application/json array.
	EncodingJSON = "json"
	// EncodingForm sends the rows as multipart/form-data keyed by IP address.
	EncodingForm = "form"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from a .env file, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour settings: payload encoding, notification
	// lifetime and the inventory file.
	App App `envPrefix:"APP_"`

	// Adapter holds the target server address, endpoint paths and the
	// outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen address of the development receiver.
	Server Server `envPrefix:"SERVER_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client behaviour settings.
type App struct {
	// Encoding selects the payload encoding of device assignments:
	// "json" or "form".
	// Env: APP_ENCODING
	Encoding string `env:"ENCODING"`

	// ToastDuration is how long a notification stays on screen before it is
	// dismissed automatically (e.g. "3s").
	// Env: APP_TOAST_DURATION
	ToastDuration time.Duration `env:"TOAST_DURATION"`

	// InventoryPath points to the YAML file listing devices and training
	// labels.
	// Env: APP_INVENTORY
	InventoryPath string `env:"INVENTORY"`

	// Batch submits the inventory assignments without starting the UI.
	// Env: APP_BATCH
	Batch bool `env:"BATCH"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base address of the server, with or without a
	// scheme (e.g. "localhost:8080", "https://dingus.local").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single submit request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AssignmentsPath is the endpoint receiving device assignments.
	// Env: ADAPTER_ASSIGNMENTS_PATH
	AssignmentsPath string `env:"ASSIGNMENTS_PATH"`

	// ConfigPath is the endpoint receiving the configuration form.
	// Env: ADAPTER_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH"`
}

// Server holds network and timeout settings for the development receiver.
type Server struct {
	// HTTPAddress is the TCP address the receiver listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds log output settings.
type Log struct {
	// FilePath is the file the interactive client appends JSON logs to.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
}
