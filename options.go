package mpl3115a2

import (
	"fmt"
	"time"
)

// Option defines a functional option for the device.
type Option func(d *Device) (Option, error)

// Options set different configuration options and returns the previous value
// of the last option passed.
func (d *Device) Options(options ...Option) (Option, error) {
	var old Option
	var err error
	for _, opt := range options {
		old, err = opt(d)
		if err != nil {
			return nil, err
		}
	}

	return old, nil
}

// OutputMode sets the device in barometer or altimeter mode.
func OutputMode(mode Mode) Option {
	return func(d *Device) (Option, error) {
		old := d.mode
		if err := d.SetMode(mode); err != nil {
			return nil, err
		}

		return OutputMode(old), nil
	}
}

// PowerMode sets the device in standby or active mode.
func PowerMode(p Power) Option {
	return func(d *Device) (Option, error) {
		old, err := d.setPower(p)
		if err != nil {
			return nil, err
		}

		if old&(1<<ctrlSBYB) != 0 {
			return PowerMode(Active), nil
		}
		return PowerMode(Standby), nil
	}
}

// PollInterval sets how long to wait between two reads of the STATUS
// register. By default, the interval is 1ms.
func PollInterval(interval time.Duration) Option {
	return func(d *Device) (Option, error) {
		if interval < 0 {
			return nil, fmt.Errorf("%w: poll interval %v", ErrInvalidConfig, interval)
		}
		old := d.interval
		d.interval = interval

		return PollInterval(old), nil
	}
}

// PollLimit sets how many times the STATUS register is polled again before a
// measurement times out. By default, the limit is 100.
func PollLimit(n int) Option {
	return func(d *Device) (Option, error) {
		if n < 0 {
			return nil, fmt.Errorf("%w: poll limit %d", ErrInvalidConfig, n)
		}
		old := d.limit
		d.limit = n

		return PollLimit(old), nil
	}
}
