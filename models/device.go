// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DeviceAssignment is one row of the device management table: a registered
// device identified by its address pair and the training label an operator
// selected for it.
//
// The JSON field names are the wire contract of the
// /api/updateDeviceAssignments endpoint.
type DeviceAssignment struct {
	// IPAddress is the address the device registered from.
	IPAddress string `json:"ipAddress"`

	// MACAddress is the hardware address reported by the device.
	MACAddress string `json:"macAddress"`

	// TrainingLabel is the selected training. Empty means "not assigned".
	TrainingLabel string `json:"trainingLabel"`
}

// Device is a registered device as listed in the inventory file.
type Device struct {
	IPAddress  string `yaml:"ip"`
	MACAddress string `yaml:"mac"`
	// Training is the currently assigned label, if any.
	Training string `yaml:"training,omitempty"`
}

// Inventory is the set of devices shown in the assignment table together with
// the training labels an operator can choose from.
type Inventory struct {
	Devices   []Device `yaml:"devices"`
	Trainings []string `yaml:"trainings"`
}

// Assignments builds the initial table rows from the inventory, preserving
// the file order. Labels are trimmed so the rows carry the values the
// validator compares.
func (i Inventory) Assignments() []DeviceAssignment {
	rows := make([]DeviceAssignment, 0, len(i.Devices))
	for _, d := range i.Devices {
		rows = append(rows, DeviceAssignment{
			IPAddress:     d.IPAddress,
			MACAddress:    d.MACAddress,
			TrainingLabel: strings.TrimSpace(d.Training),
		})
	}
	return rows
}
