// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.App.Encoding {
	case EncodingJSON, EncodingForm:
	default:
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.Adapter.AssignmentsPath, "/") || !strings.HasPrefix(cfg.Adapter.ConfigPath, "/") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.Batch && cfg.App.InventoryPath == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if !strings.HasPrefix(cfg.AssignmentsPath, "/") || !strings.HasPrefix(cfg.ConfigPath, "/") {
		return ErrInvalidServerConfigs
	}

	return nil
}
