// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// InputStream is a seekable byte source codecs decode from.
//
// Read and Seek follow io.Reader and io.Seeker, which lets the codec
// libraries consume a stream directly. Positions are always kept inside
// [0, Size]: seeking past the end clamps to the end.
type InputStream interface {
	io.Reader
	io.Seeker
	// Tell returns the current read position in bytes.
	Tell() (int64, error)
	// Size returns the total number of bytes in the stream.
	Size() (int64, error)
}

// Info describes an opened sound file.
type Info struct {
	// SampleCount is the total number of samples over all channels.
	SampleCount uint64
	// ChannelCount (e.g., 1=mono, 2=stereo).
	ChannelCount int
	// SampleRate in Hz.
	SampleRate int
}

// Frames returns the number of samples per channel.
func (i Info) Frames() uint64 {
	if i.ChannelCount <= 0 {
		return 0
	}
	return i.SampleCount / uint64(i.ChannelCount)
}

// Duration returns the playing time described by i.
func (i Info) Duration() time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}
	return time.Duration(i.Frames()) * time.Second / time.Duration(i.SampleRate)
}

// Reader decodes one sound stream into interleaved 16-bit PCM.
type Reader interface {
	// Open parses the header of s. s stays owned by the caller and must
	// outlive the reader.
	Open(s InputStream) (Info, error)
	// Seek moves to sampleOffset, counted in interleaved samples over all
	// channels. Offsets past the end clamp to the end.
	Seek(sampleOffset uint64) error
	// Read fills dst with interleaved samples and returns how many were
	// written. When n == 0 with err == io.EOF, the stream is finished.
	Read(dst []int16) (n int, err error)
	// Close releases decoder state. It never closes the stream.
	Close() error
}

// Writer encodes interleaved 16-bit PCM into a file.
type Writer interface {
	// Open creates filename for writing.
	Open(filename string, sampleRate, channelCount int) error
	// Write appends interleaved samples.
	Write(samples []int16) error
	// Close finalizes the file headers and closes the file.
	Close() error
}

// ReaderEntry registers a reader implementation.
type ReaderEntry struct {
	// Name is a short format key (e.g., "wav", "flac").
	Name string
	// Check reports whether the data in s can be decoded. It only moves the
	// read position of s and keeps no state.
	Check func(s InputStream) bool
	// New constructs an unopened reader.
	New func() Reader
}

// WriterEntry registers a writer implementation.
type WriterEntry struct {
	Name string
	// Check reports whether filename names a file this writer produces.
	Check func(filename string) bool
	New   func() Writer
}

// ValidateFormat checks writer parameters.
func ValidateFormat(sampleRate, channelCount int) error {
	if sampleRate <= 0 {
		return ErrInvalidFormat
	}
	if channelCount < 1 || channelCount > MaxChannels {
		return ErrInvalidFormat
	}
	return nil
}

// MaxChannels is the highest channel count every built-in format can carry.
const MaxChannels = 8
