package sweep

import (
	"sync"

	"github.com/edaniels/golog"

	"go.viam.com/sweep/usb"
)

// A Type identifies a model of scanning device.
type Type string

// The known device types.
const (
	TypeUnknown Type = "unknown"
	TypeSweep   Type = "sweep"
	TypeFake    Type = "fake"
)

// A Description identifies a connected device and how to reach it.
type Description struct {
	Type Type
	Path string
}

// A TypeRegistration associates a device type with how to detect and
// open it.
type TypeRegistration struct {
	// USBInfo, if set, is the USB id a connected device of this type
	// presents.
	USBInfo *usb.Identifier

	// New opens a device from its description.
	New func(desc Description, logger golog.Logger) (*Sweep, error)
}

var (
	registrationsMu sync.Mutex
	registrations   = map[Type]TypeRegistration{}
)

// RegisterType registers a device type and associates it with metadata.
// A later registration for the same type replaces the earlier one.
func RegisterType(deviceType Type, reg TypeRegistration) {
	registrationsMu.Lock()
	registrations[deviceType] = reg
	registrationsMu.Unlock()
}

// CheckProductDeviceIDs takes USB identification details and tries to
// determine a device type from previously registered types.
func CheckProductDeviceIDs(vendorID, productID int) Type {
	registrationsMu.Lock()
	defer registrationsMu.Unlock()

	for t, reg := range registrations {
		if reg.USBInfo != nil &&
			reg.USBInfo.Vendor == vendorID && reg.USBInfo.Product == productID {
			return t
		}
	}
	return TypeUnknown
}

// NewFromDescription opens the device the description refers to.
func NewFromDescription(desc Description, logger golog.Logger) (*Sweep, error) {
	registrationsMu.Lock()
	reg, ok := registrations[desc.Type]
	registrationsMu.Unlock()
	if !ok || reg.New == nil {
		return nil, newArgumentError("do not know how to open a %q device", desc.Type)
	}
	return reg.New(desc, logger)
}
