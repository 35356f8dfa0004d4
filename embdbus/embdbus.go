// Package embdbus adapts an embd I²C bus to the mpl3115a2 register bus.
package embdbus

import (
	"fmt"

	"github.com/cgxeiji/mpl3115a2"
	"github.com/kidoman/embd"
)

// Bus talks to a single device address on an embd I²C bus.
type Bus struct {
	bus  embd.I2CBus
	addr byte
}

var _ mpl3115a2.Bus = (*Bus)(nil)

// New returns a Bus for addr on bus. If addr is 0, mpl3115a2.Addr is used.
func New(bus embd.I2CBus, addr byte) *Bus {
	if addr == 0 {
		addr = mpl3115a2.Addr
	}
	return &Bus{bus: bus, addr: addr}
}

// Read reads a single byte from a register.
func (b *Bus) Read(reg byte) (byte, error) {
	v, err := b.bus.ReadByteFromReg(b.addr, reg)
	if err != nil {
		return 0, fmt.Errorf("embdbus: could not read register 0x%02x: %w", reg, err)
	}
	return v, nil
}

// ReadBytes reads n bytes starting at a register.
func (b *Bus) ReadBytes(reg byte, n int) ([]byte, error) {
	data := make([]byte, n)
	if err := b.bus.ReadFromReg(b.addr, reg, data); err != nil {
		return nil, fmt.Errorf("embdbus: could not read %d bytes from 0x%02x: %w", n, reg, err)
	}
	return data, nil
}

// Write writes a byte to a register.
func (b *Bus) Write(reg, data byte) error {
	if err := b.bus.WriteByteToReg(b.addr, reg, data); err != nil {
		return fmt.Errorf("embdbus: could not write register 0x%02x: %w", reg, err)
	}
	return nil
}

// Close closes the underlying embd bus.
func (b *Bus) Close() error {
	return b.bus.Close()
}
