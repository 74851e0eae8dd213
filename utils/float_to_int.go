// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a sample in [-1,1] to 16-bit PCM. Values outside
// the range are clamped.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for both signs so -1 and 1 stay symmetric
	return int16(x * 32767.0)
}

// Floats32ToInt16 converts src into dst and returns the number of samples
// converted, which is the shorter of the two lengths.
func Floats32ToInt16(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}
	return n
}
