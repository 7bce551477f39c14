// Package search provides the ability to find scanning devices connected
// to the system.
package search

import (
	"strconv"

	"go.bug.st/serial/enumerator"

	"go.viam.com/sweep"
)

// enumeratePorts lists the system's serial ports. It's a variable in case
// you need to override it during tests.
var enumeratePorts = enumerator.GetDetailedPortsList

// Devices returns descriptions for all connected devices whose USB ids
// match a registered device type.
func Devices() ([]sweep.Description, error) {
	ports, err := enumeratePorts()
	if err != nil {
		return nil, err
	}
	var descs []sweep.Description
	for _, port := range ports {
		if !port.IsUSB {
			continue
		}
		vendorID, err := strconv.ParseInt(port.VID, 16, 32)
		if err != nil {
			continue
		}
		productID, err := strconv.ParseInt(port.PID, 16, 32)
		if err != nil {
			continue
		}
		devType := sweep.CheckProductDeviceIDs(int(vendorID), int(productID))
		if devType == sweep.TypeUnknown {
			continue
		}
		descs = append(descs, sweep.Description{Type: devType, Path: port.Name})
	}
	return descs, nil
}
