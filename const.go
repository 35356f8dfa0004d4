package mpl3115a2

import "time"

// Register addresses
const (
	RegStatus = 0x00
	OutPMSB   = 0x01
	OutPCSB   = 0x02
	OutPLSB   = 0x03
	OutTMSB   = 0x04
	OutTLSB   = 0x05
	WhoAmI    = 0x0C
	PTDataCfg = 0x13
	CtrlReg1  = 0x26
)

// Status flags
const (
	TempReady      Status = (1 << 1) // TDR
	PressReady     Status = (1 << 2) // PDR
	DataReady      Status = (1 << 3) // PTDR
	TempOverwrite  Status = (1 << 5) // TOW
	PressOverwrite Status = (1 << 6) // POW
	DataOverwrite  Status = (1 << 7) // PTOW
)

// Device constants
const (
	Addr     = 0x60
	DeviceID = 0xC4
)

// Settings
const (
	// DataEvents enables the data ready event flag along with the pressure
	// and temperature data change flags.
	DataEvents byte = 0b0000_0111

	ctrlSBYB = 0 // standby/active
	ctrlOST  = 1 // one-shot trigger
	ctrlALT  = 7 // altimeter/barometer
)

// Poll policy defaults
const (
	DefaultPollInterval = time.Millisecond
	DefaultPollLimit    = 100
)
