// Package mpl3115a2 controls a NXP MPL3115A2 pressure and temperature sensor
// over I²C.
//
// Every measurement is a one-shot conversion: the driver toggles the OST bit
// in CTRL_REG1, polls STATUS until the data ready flags are set and then reads
// and decodes the output registers.
//
// A Device is not safe for concurrent use. Callers sharing one between
// goroutines must serialize access themselves.
package mpl3115a2

import (
	"fmt"
	"io"
	"time"
)

// Device defines a MPL3115A2 device.
type Device struct {
	bus  Bus
	mode Mode

	interval time.Duration
	limit    int

	sleep func(time.Duration)
	now   func() time.Time
}

// New returns a new MPL3115A2 device on bus. It checks the device ID, enables
// the data ready event flags and puts the device in barometer mode before
// applying opts. If an option fails, the device is put back in standby before
// the error is returned.
func New(bus Bus, opts ...Option) (*Device, error) {
	if bus == nil {
		return nil, errNilBus
	}
	d := &Device{
		bus:      bus,
		interval: DefaultPollInterval,
		limit:    DefaultPollLimit,
		sleep:    time.Sleep,
		now:      time.Now,
	}

	id, err := d.read(WhoAmI)
	if err != nil {
		return nil, fmt.Errorf("mpl3115a2: could not get device ID: %w", err)
	}
	if id != DeviceID {
		return nil, ErrNotDevice
	}

	if err := d.write(PTDataCfg, DataEvents); err != nil {
		return nil, fmt.Errorf("mpl3115a2: could not initialize device: %w", err)
	}
	if err := d.SetMode(Barometer); err != nil {
		return nil, fmt.Errorf("mpl3115a2: could not initialize device: %w", err)
	}
	if _, err := d.Options(opts...); err != nil {
		d.SetPower(Standby)
		return nil, fmt.Errorf("mpl3115a2: could not initialize device: %w", err)
	}

	return d, nil
}

// Close puts the device in standby and closes the bus if it can be closed.
func (d *Device) Close() error {
	err := d.SetPower(Standby)
	if c, ok := d.bus.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Mode returns the current output mode.
func (d *Device) Mode() Mode {
	return d.mode
}

// SetPower sets the device in standby or active mode.
func (d *Device) SetPower(p Power) error {
	_, err := d.setPower(p)
	return err
}

// setPower returns the previous CTRL_REG1 value.
func (d *Device) setPower(p Power) (byte, error) {
	var on bool
	switch p {
	case Standby:
		on = false
	case Active:
		on = true
	default:
		return 0, fmt.Errorf("%w: power %v", ErrInvalidConfig, p)
	}

	old, err := d.update(CtrlReg1, ctrlSBYB, on)
	if err != nil {
		return 0, fmt.Errorf("mpl3115a2: could not set power to %v: %w", p, err)
	}
	return old, nil
}

// SetMode sets the device in barometer or altimeter mode.
func (d *Device) SetMode(m Mode) error {
	var on bool
	switch m {
	case Barometer:
		on = false
	case Altimeter:
		on = true
	default:
		return fmt.Errorf("%w: mode %v", ErrInvalidConfig, m)
	}

	if _, err := d.update(CtrlReg1, ctrlALT, on); err != nil {
		return fmt.Errorf("mpl3115a2: could not set mode to %v: %w", m, err)
	}
	d.mode = m
	return nil
}

// ReadTemperature returns the current temperature in degrees Celsius.
func (d *Device) ReadTemperature() (float64, error) {
	if err := d.trigger(TempReady); err != nil {
		return 0, err
	}

	b, err := d.readBytes(OutTMSB, 2)
	if err != nil {
		return 0, fmt.Errorf("mpl3115a2: could not read temperature: %w", err)
	}

	return decodeTemperature(b[0], b[1]), nil
}

// ReadPressure returns the current pressure in Pascals. It fails with
// ErrAltimeterMode if the device is in altimeter mode.
func (d *Device) ReadPressure() (float64, error) {
	if d.mode == Altimeter {
		return 0, ErrAltimeterMode
	}
	if err := d.trigger(PressReady); err != nil {
		return 0, err
	}

	b, err := d.readBytes(OutPMSB, 3)
	if err != nil {
		return 0, fmt.Errorf("mpl3115a2: could not read pressure: %w", err)
	}

	return decodePressure(b[0], b[1], b[2]), nil
}

// ReadAltitude returns the current altitude in metres. In barometer mode it
// is derived from the pressure; in altimeter mode it is read from the device.
func (d *Device) ReadAltitude() (float64, error) {
	if d.mode == Barometer {
		p, err := d.ReadPressure()
		if err != nil {
			return 0, err
		}
		return Altitude(p), nil
	}

	if err := d.trigger(PressReady); err != nil {
		return 0, err
	}

	b, err := d.readBytes(OutPMSB, 3)
	if err != nil {
		return 0, fmt.Errorf("mpl3115a2: could not read altitude: %w", err)
	}

	return decodeAltitude(b[0], b[1], b[2]), nil
}

// Measurement is a single reading of the device.
type Measurement struct {
	Time        time.Time
	Temperature float64 // °C
	Pressure    float64 // Pa
	Altitude    float64 // m, derived from Pressure
}

// Read reads pressure and temperature in one conversion. It fails with
// ErrAltimeterMode if the device is in altimeter mode.
func (d *Device) Read() (Measurement, error) {
	if d.mode == Altimeter {
		return Measurement{}, ErrAltimeterMode
	}
	if err := d.trigger(TempReady | PressReady); err != nil {
		return Measurement{}, err
	}

	b, err := d.readBytes(OutPMSB, 5)
	if err != nil {
		return Measurement{}, fmt.Errorf("mpl3115a2: could not read data: %w", err)
	}

	p := decodePressure(b[0], b[1], b[2])
	return Measurement{
		Time:        d.now(),
		Temperature: decodeTemperature(b[3], b[4]),
		Pressure:    p,
		Altitude:    Altitude(p),
	}, nil
}

// trigger starts a one-shot conversion and waits for any of the flags in want
// to be set in STATUS.
func (d *Device) trigger(want Status) error {
	ctrl, err := d.read(CtrlReg1)
	if err != nil {
		return fmt.Errorf("mpl3115a2: could not trigger measurement: %w", err)
	}
	// A stuck OST bit would not start a new conversion.
	if err := d.write(CtrlReg1, setBit(ctrl, ctrlOST, false)); err != nil {
		return fmt.Errorf("mpl3115a2: could not trigger measurement: %w", err)
	}
	if err := d.write(CtrlReg1, setBit(ctrl, ctrlOST, true)); err != nil {
		return fmt.Errorf("mpl3115a2: could not trigger measurement: %w", err)
	}

	return d.waitUntil(want)
}

func (d *Device) waitUntil(want Status) error {
	for polls := 1; ; polls++ {
		state, err := d.read(RegStatus)
		if err != nil {
			return fmt.Errorf("mpl3115a2: could not wait for %v: %w", want, err)
		}
		if Status(state)&want != 0 {
			return nil
		}
		if polls > d.limit {
			return &TimeoutError{Want: want, Polls: polls}
		}
		d.sleep(d.interval)
	}
}

// update sets bit pos of reg to on and returns the previous register value.
func (d *Device) update(reg byte, pos uint, on bool) (byte, error) {
	old, err := d.read(reg)
	if err != nil {
		return 0, err
	}
	if err := d.write(reg, setBit(old, pos, on)); err != nil {
		return 0, err
	}
	return old, nil
}

func (d *Device) read(reg byte) (byte, error) {
	return d.bus.Read(reg)
}

func (d *Device) readBytes(reg byte, n int) ([]byte, error) {
	b, err := d.bus.ReadBytes(reg, n)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("short read from 0x%02x: want %d bytes, got %d", reg, n, len(b))
	}
	return b, nil
}

func (d *Device) write(reg, data byte) error {
	return d.bus.Write(reg, data)
}
