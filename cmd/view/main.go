// Package main contains a command to view scans from a sweep device.
package main

import (
	"context"
	"fmt"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"go.viam.com/sweep"
	_ "go.viam.com/sweep/fake" // register the fake device type
	"go.viam.com/sweep/search"
)

var logger = golog.NewDevelopmentLogger("sweepview")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	Port       string `flag:"port,usage=serial port of the device (auto-detected when empty)"`
	BaudRate   int    `flag:"baud,default=115200,usage=serial baud rate"`
	TimeoutMs  int    `flag:"timeout,default=2000,usage=timeout in milliseconds"`
	MotorSpeed int    `flag:"speed,default=0,usage=motor speed in Hz (0 keeps the device setting)"`
	Fake       bool   `flag:"fake,usage=use a simulated device"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	device, err := openDevice(argsParsed, logger)
	if err != nil {
		return err
	}
	return viewDevice(ctx, device, argsParsed, logger)
}

func openDevice(args Arguments, logger golog.Logger) (*sweep.Sweep, error) {
	switch {
	case args.Fake:
		return sweep.NewFromDescription(sweep.Description{Type: sweep.TypeFake}, logger)
	case args.Port != "":
		return sweep.NewSerial(logger, args.Port, args.BaudRate, args.TimeoutMs)
	default:
		descs, err := search.Devices()
		if err != nil {
			return nil, err
		}
		if len(descs) == 0 {
			return nil, errors.New("no suitable device found")
		}
		return sweep.NewFromDescription(descs[0], logger)
	}
}

func viewDevice(ctx context.Context, device *sweep.Sweep, args Arguments, logger golog.Logger) (err error) {
	defer func() {
		err = multierr.Combine(err, device.Close())
	}()

	if args.MotorSpeed > 0 {
		if err := device.SetMotorSpeed(args.MotorSpeed); err != nil {
			return err
		}
	}
	speed, err := device.MotorSpeed()
	if err != nil {
		return err
	}
	rate, err := device.SampleRate()
	if err != nil {
		return err
	}
	logger.Infow("connected", "motor_speed_hz", speed, "sample_rate", rate)

	if err := device.StartScanning(); err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, device.StopScanning())
	}()

	type scanResult struct {
		measurements sweep.Measurements
		err          error
	}
	// one outstanding scan at a time; the buffer lets a completion land
	// even if we gave up waiting for it
	results := make(chan scanResult, 1)
	for {
		if err := device.Scan(args.TimeoutMs, func(scanErr error, ms sweep.Measurements) {
			results <- scanResult{measurements: ms, err: scanErr}
		}); err != nil {
			return err
		}

		var res scanResult
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res = <-results:
		}
		if res.err != nil {
			logger.Errorw("scan failed", "error", res.err)
			continue
		}

		ahead := "-"
		if closest := res.measurements.ClosestToDegree(0); closest != nil {
			ahead = fmt.Sprintf("%.0fcm", closest.Distance())
		}
		logger.Infow("scan", "samples", len(res.measurements), "ahead", ahead)
	}
}
