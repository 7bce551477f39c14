package sweep

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

type recordingError struct {
	events *[]string
}

func (e recordingError) Message() string {
	*e.events = append(*e.events, "message")
	return "boom"
}

func (e recordingError) Destruct() {
	*e.events = append(*e.events, "destruct")
}

func TestTakeError(t *testing.T) {
	test.That(t, takeError("op", nil), test.ShouldBeNil)

	var events []string
	err := takeError("get scan", recordingError{events: &events})
	var devErr *DeviceError
	test.That(t, errors.As(err, &devErr), test.ShouldBeTrue)
	test.That(t, devErr.Op, test.ShouldEqual, "get scan")
	test.That(t, devErr.Message, test.ShouldEqual, "boom")
	test.That(t, err.Error(), test.ShouldEqual, "get scan: boom")

	// the message is read exactly once, then the object destructed exactly once
	test.That(t, events, test.ShouldResemble, []string{"message", "destruct"})
}

func TestConstructionError(t *testing.T) {
	inner := &DeviceError{Op: "construct", Message: "no such port"}
	err := &ConstructionError{Err: inner}
	test.That(t, err.Error(), test.ShouldContainSubstring, "device construction failed")
	test.That(t, err.Error(), test.ShouldContainSubstring, "no such port")
	test.That(t, errors.Unwrap(err), test.ShouldEqual, inner)
}

func TestArgumentError(t *testing.T) {
	err := newArgumentError("bad value %d", 42)
	test.That(t, err.Error(), test.ShouldEqual, "bad value 42")
}
