// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the codec tests: PCM
// generators, byte builders for the container formats and fake codecs.
package audiotest

import (
	"encoding/binary"
	"math"
)

// Sine generates frames*channels interleaved samples of a sine wave at
// half amplitude. Each channel is phase shifted so channels differ.
func Sine(sampleRate, channels, frames int, frequency float64) []int16 {
	out := make([]int16, frames*channels)
	for frame := range frames {
		t := float64(frame) / float64(sampleRate)
		for ch := range channels {
			phase := float64(ch) * math.Pi / 4
			v := 0.5 * math.Sin(2*math.Pi*frequency*t+phase)
			out[frame*channels+ch] = int16(v * math.MaxInt16)
		}
	}
	return out
}

// Ramp generates n samples counting up from start, wrapping at int16 bounds.
func Ramp(n int, start int16) []int16 {
	out := make([]int16, n)
	v := start
	for i := range out {
		out[i] = v
		v++
	}
	return out
}

// PCM16LE encodes samples as little-endian 16-bit PCM.
func PCM16LE(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// PCM16BE encodes samples as big-endian 16-bit PCM.
func PCM16BE(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.BigEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}
