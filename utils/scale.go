// SPDX-License-Identifier: EPL-2.0

package utils

// ScaleToInt16 rescales a signed sample of the given bit depth to 16 bits.
// Deeper samples drop their low bits, shallower ones are shifted up.
func ScaleToInt16(v int32, bitsPerSample int) int16 {
	switch {
	case bitsPerSample > 16:
		return int16(v >> (bitsPerSample - 16))
	case bitsPerSample < 16 && bitsPerSample > 0:
		return int16(v << (16 - bitsPerSample))
	default:
		return int16(v)
	}
}

// Int24LE decodes a little-endian signed 24-bit sample.
func Int24LE(b []byte) int32 {
	v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	// Sign extension for 24-bit
	if v&0x800000 != 0 {
		v |= -1 << 24
	}
	return v
}
