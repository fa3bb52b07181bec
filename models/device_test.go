package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventory_Assignments(t *testing.T) {
	inv := Inventory{Devices: []Device{
		{IPAddress: "192.168.1.10", MACAddress: "aa:bb:cc:dd:ee:01", Training: " Laser Cutter "},
		{IPAddress: "192.168.1.11", MACAddress: "aa:bb:cc:dd:ee:02"},
	}}

	assert.Equal(t, []DeviceAssignment{
		{IPAddress: "192.168.1.10", MACAddress: "aa:bb:cc:dd:ee:01", TrainingLabel: "Laser Cutter"},
		{IPAddress: "192.168.1.11", MACAddress: "aa:bb:cc:dd:ee:02"},
	}, inv.Assignments())

	assert.NotNil(t, Inventory{}.Assignments())
}
