package mpl3115a2

import (
	"fmt"
	"io"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

// Bus gives byte level access to the device registers. Implementations are
// bound to a single device address.
type Bus interface {
	// Read reads a single byte from a register.
	Read(reg byte) (byte, error)
	// ReadBytes reads n consecutive bytes starting at a register.
	ReadBytes(reg byte, n int) ([]byte, error)
	// Write writes a byte to a register.
	Write(reg, data byte) error
}

// I2C is a Bus on top of a periph I²C bus.
type I2C struct {
	dev *i2c.Dev
}

// NewI2C returns a Bus talking to addr on b. If addr is 0, Addr (0x60) is
// used.
func NewI2C(b i2c.Bus, addr uint16) *I2C {
	if addr == 0 {
		addr = Addr
	}
	return &I2C{dev: &i2c.Dev{Addr: addr, Bus: b}}
}

// Read reads a single byte from a register.
func (b *I2C) Read(reg byte) (byte, error) {
	r := make([]byte, 1)
	if err := b.dev.Tx([]byte{reg}, r); err != nil {
		return 0, fmt.Errorf("could not read register 0x%02x: %w", reg, err)
	}

	return r[0], nil
}

// ReadBytes read n bytes from a register.
func (b *I2C) ReadBytes(reg byte, n int) ([]byte, error) {
	r := make([]byte, n)
	if err := b.dev.Tx([]byte{reg}, r); err != nil {
		return nil, fmt.Errorf("could not read %d bytes from 0x%02x: %w", n, reg, err)
	}

	return r, nil
}

// Write writes a byte to a register.
func (b *I2C) Write(reg, data byte) error {
	n, err := b.dev.Write([]byte{reg, data})
	if err != nil {
		return fmt.Errorf("could not write register 0x%02x: %w", reg, err)
	}
	n-- // remove register write
	if n != 1 {
		return fmt.Errorf("write: wrong number of bytes written: want %d, got %d", 1, n)
	}

	return nil
}

// Close closes the underlying bus if it can be closed.
func (b *I2C) Close() error {
	if c, ok := b.dev.Bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Open initializes the host, opens an I²C bus and returns a ready MPL3115A2
// device.
//
// Argument "busName" can be used to specify the exact bus to use ("/dev/i2c-2", "I2C2", "2").
// Argument "addr" can be used to specify alternative address if default (0x60) is unavailable.
// If "busName" argument is specified as an empty string "" the first available bus will be used.
func Open(busName string, addr uint16, opts ...Option) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("mpl3115a2: could not initialize host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("mpl3115a2: could not open I2C bus: %w", err)
	}

	d, err := New(NewI2C(bus, addr), opts...)
	if err != nil {
		bus.Close()
		return nil, err
	}

	return d, nil
}
