package common

// Swap16 reverses the byte order of a 16-bit value
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// Swap32 reverses the byte order of a 32-bit value
func Swap32(v uint32) uint32 {
	v = (v<<8)&0xFF00FF00 | (v>>8)&0x00FF00FF
	return v<<16 | v>>16
}
