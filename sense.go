package mpl3115a2

import (
	"periph.io/x/periph/conn/physic"
)

// Env returns the temperature and pressure of m as physical units.
func (m Measurement) Env() physic.Env {
	return physic.Env{
		Temperature: physic.Temperature(m.Temperature*float64(physic.Kelvin)) + physic.ZeroCelsius,
		Pressure:    physic.Pressure(m.Pressure * float64(physic.Pascal)),
	}
}

// Elevation returns the altitude of m as a physical distance.
func (m Measurement) Elevation() physic.Distance {
	return physic.Distance(m.Altitude * float64(physic.Metre))
}

// Sense reads temperature and pressure into e. Humidity is not modified.
func (d *Device) Sense(e *physic.Env) error {
	m, err := d.Read()
	if err != nil {
		return err
	}
	env := m.Env()
	e.Temperature = env.Temperature
	e.Pressure = env.Pressure
	return nil
}

// Precision returns the resolution of the device: 1/16°C and 1/4Pa.
func (d *Device) Precision(e *physic.Env) {
	e.Temperature = physic.Kelvin / 16
	e.Pressure = physic.Pascal / 4
}
