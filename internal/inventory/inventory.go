// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package inventory loads the YAML file listing the registered devices and
// the training labels an operator may assign to them.
//
//	trainings: [Laser Cutter, Wood Lathe]
//	devices:
//	  - ip: 192.168.1.10
//	    mac: 00:1a:2b:3c:4d:5e
//	    training: Laser Cutter
package inventory

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/MKhiriev/dingus-admin/models"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the inventory at path.
func Load(path string) (models.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Inventory{}, fmt.Errorf("%w %q: %w", ErrReadInventory, path, err)
	}

	return Parse(data)
}

// Parse decodes an inventory document. Unknown keys are rejected so typos do
// not silently drop devices.
//
// IP and MAC addresses must parse, an IP may appear only once, labels are
// trimmed and de-duplicated, and a device's current label is added to the
// label list if the list does not already name it.
func Parse(data []byte) (models.Inventory, error) {
	var inv models.Inventory

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&inv); err != nil && !errors.Is(err, io.EOF) {
		return models.Inventory{}, fmt.Errorf("%w: %w", ErrInvalidInventory, err)
	}

	if err := normalize(&inv); err != nil {
		return models.Inventory{}, err
	}

	return inv, nil
}

func normalize(inv *models.Inventory) error {
	labels := make([]string, 0, len(inv.Trainings))
	known := make(map[string]bool, len(inv.Trainings))
	addLabel := func(l string) {
		if l == "" || known[l] {
			return
		}
		known[l] = true
		labels = append(labels, l)
	}

	for _, l := range inv.Trainings {
		addLabel(strings.TrimSpace(l))
	}

	seen := make(map[string]int, len(inv.Devices))
	for i := range inv.Devices {
		d := &inv.Devices[i]

		ip := net.ParseIP(strings.TrimSpace(d.IPAddress))
		if ip == nil {
			return fmt.Errorf("%w: device %d: %q", ErrInvalidIPAddress, i, d.IPAddress)
		}
		d.IPAddress = ip.String()

		mac, err := net.ParseMAC(strings.TrimSpace(d.MACAddress))
		if err != nil {
			return fmt.Errorf("%w: device %d: %q", ErrInvalidMACAddress, i, d.MACAddress)
		}
		d.MACAddress = mac.String()

		if first, ok := seen[d.IPAddress]; ok {
			return fmt.Errorf("%w: %s (devices %d and %d)", ErrDuplicateDevice, d.IPAddress, first, i)
		}
		seen[d.IPAddress] = i

		d.Training = strings.TrimSpace(d.Training)
		addLabel(d.Training)
	}

	inv.Trainings = labels
	return nil
}
