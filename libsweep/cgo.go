//go:build libsweep

package libsweep

// #cgo LDFLAGS: -lsweep
// #include <stdlib.h>
// #include <sweep/sweep.h>
import "C"

import "unsafe"

// New returns a Driver backed by the native libsweep library.
func New() Driver {
	return nativeDriver{}
}

type nativeDriver struct{}

func (nativeDriver) ConstructSimple() (Device, Error) {
	var cerr C.sweep_error_s
	dev := C.sweep_device_construct_simple(&cerr)
	if cerr != nil {
		return nil, nativeError{cerr}
	}
	return nativeDevice{dev}, nil
}

func (nativeDriver) Construct(port string, baudRate, timeoutMs int) (Device, Error) {
	cport := C.CString(port)
	defer C.free(unsafe.Pointer(cport))

	var cerr C.sweep_error_s
	dev := C.sweep_device_construct(cport, C.int32_t(baudRate), C.int32_t(timeoutMs), &cerr)
	if cerr != nil {
		return nil, nativeError{cerr}
	}
	return nativeDevice{dev}, nil
}

type nativeDevice struct {
	dev C.sweep_device_s
}

func (d nativeDevice) StartScanning() Error {
	var cerr C.sweep_error_s
	C.sweep_device_start_scanning(d.dev, &cerr)
	return maybeError(cerr)
}

func (d nativeDevice) StopScanning() Error {
	var cerr C.sweep_error_s
	C.sweep_device_stop_scanning(d.dev, &cerr)
	return maybeError(cerr)
}

func (d nativeDevice) GetScan(timeoutMs int) (Scan, Error) {
	var cerr C.sweep_error_s
	scan := C.sweep_device_get_scan(d.dev, C.int32_t(timeoutMs), &cerr)
	if cerr != nil {
		return nil, nativeError{cerr}
	}
	return nativeScan{scan}, nil
}

func (d nativeDevice) MotorSpeed() (int, Error) {
	var cerr C.sweep_error_s
	speed := C.sweep_device_get_motor_speed(d.dev, &cerr)
	if cerr != nil {
		return 0, nativeError{cerr}
	}
	return int(speed), nil
}

func (d nativeDevice) SetMotorSpeed(speedHz int) Error {
	var cerr C.sweep_error_s
	C.sweep_device_set_motor_speed(d.dev, C.int32_t(speedHz), &cerr)
	return maybeError(cerr)
}

func (d nativeDevice) SampleRate() (int, Error) {
	var cerr C.sweep_error_s
	rate := C.sweep_device_get_sample_rate(d.dev, &cerr)
	if cerr != nil {
		return 0, nativeError{cerr}
	}
	return int(rate), nil
}

func (d nativeDevice) Reset() Error {
	var cerr C.sweep_error_s
	C.sweep_device_reset(d.dev, &cerr)
	return maybeError(cerr)
}

func (d nativeDevice) Destruct() {
	C.sweep_device_destruct(d.dev)
}

type nativeScan struct {
	scan C.sweep_scan_s
}

func (s nativeScan) NumberOfSamples() int {
	return int(C.sweep_scan_get_number_of_samples(s.scan))
}

func (s nativeScan) AngleMilliDeg(i int) int {
	return int(C.sweep_scan_get_angle(s.scan, C.int32_t(i)))
}

func (s nativeScan) Distance(i int) int {
	return int(C.sweep_scan_get_distance(s.scan, C.int32_t(i)))
}

func (s nativeScan) Destruct() {
	C.sweep_scan_destruct(s.scan)
}

type nativeError struct {
	err C.sweep_error_s
}

func (e nativeError) Message() string {
	return C.GoString(C.sweep_error_message(e.err))
}

func (e nativeError) Destruct() {
	C.sweep_error_destruct(e.err)
}

func maybeError(cerr C.sweep_error_s) Error {
	if cerr == nil {
		return nil
	}
	return nativeError{cerr}
}
