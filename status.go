package mpl3115a2

import (
	"fmt"
	"strings"
)

// Status is the value of the STATUS register, or a mask of the flags to wait
// for in it.
type Status byte

var statusNames = []struct {
	flag Status
	name string
}{
	{TempReady, "TDR"},
	{PressReady, "PDR"},
	{DataReady, "PTDR"},
	{TempOverwrite, "TOW"},
	{PressOverwrite, "POW"},
	{DataOverwrite, "PTOW"},
}

func (s Status) String() string {
	if s == 0 {
		return "0"
	}
	var names []string
	rest := s
	for _, n := range statusNames {
		if s&n.flag != 0 {
			names = append(names, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%02x", byte(rest)))
	}
	return strings.Join(names, "|")
}

// Mode selects how the device interprets the pressure output registers.
type Mode byte

// Output modes.
const (
	Barometer Mode = iota
	Altimeter
)

func (m Mode) String() string {
	switch m {
	case Barometer:
		return "Barometer"
	case Altimeter:
		return "Altimeter"
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

// Power gates whether the device samples on its own.
type Power byte

// Power states. In Standby the device still performs one-shot conversions.
const (
	Standby Power = iota
	Active
)

func (p Power) String() string {
	switch p {
	case Standby:
		return "Standby"
	case Active:
		return "Active"
	}
	return fmt.Sprintf("Power(%d)", byte(p))
}
