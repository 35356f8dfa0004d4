package mpl3115a2

import "math"

const (
	seaLevel     = 101326 // Pa
	altitudeBase = 44330.77
	altitudeExp  = 0.1902632
)

// decodePressure converts OUT_P_MSB/CSB/LSB into Pascals. The registers hold
// an unsigned Q18.2 value left aligned in 24 bits.
func decodePressure(msb, csb, lsb byte) float64 {
	whole := (uint32(msb)<<16 | uint32(csb)<<8 | uint32(lsb)) >> 6
	frac := float64((lsb&0b0011_0000)>>4) / 4.0
	return float64(whole) + frac
}

// decodeTemperature converts OUT_T_MSB/LSB into degrees Celsius. MSB is the
// signed integer part; the high nibble of LSB holds sixteenths.
func decodeTemperature(msb, lsb byte) float64 {
	frac := float64(lsb>>4) / 16.0
	return float64(int8(msb)) + frac
}

// decodeAltitude converts OUT_P_MSB/CSB/LSB into metres when the device is in
// altimeter mode. The registers hold a signed Q16.4 value left aligned in 24
// bits.
func decodeAltitude(msb, csb, lsb byte) float64 {
	raw := int32(uint32(msb)<<24|uint32(csb)<<16|uint32(lsb)<<8) >> 12
	return float64(raw) / 16.0
}

// Altitude returns the altitude in metres for the given pressure in Pascals,
// using the barometric formula with a fixed sea level reference of 101326 Pa.
func Altitude(pressure float64) float64 {
	return altitudeBase * (1 - math.Pow(pressure/seaLevel, altitudeExp))
}
