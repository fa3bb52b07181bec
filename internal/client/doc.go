// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the admin client: configuration, transport,
// notification sink, submit services and either the terminal UI or a
// headless batch run over the device inventory.
package client
