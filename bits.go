package mpl3115a2

// setBit returns b with bit pos set to on. Other bits are left untouched.
func setBit(b byte, pos uint, on bool) byte {
	if on {
		return b | 1<<pos
	}
	return b &^ (1 << pos)
}
