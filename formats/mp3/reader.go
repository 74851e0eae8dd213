// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/sndfile/audio"
	"github.com/ik5/sndfile/utils"
)

// go-mp3 always decodes to interleaved stereo 16-bit little-endian PCM.
const (
	channels      = 2
	bytesPerFrame = 2 * channels
)

// ReaderEntry registers the MP3 reader. It is not one of the built-in
// formats; callers register it explicitly.
var ReaderEntry = audio.ReaderEntry{
	Name:  "mp3",
	Check: Check,
	New:   func() audio.Reader { return NewReader() },
}

// Check reports whether s starts with an MPEG audio Layer III frame header,
// optionally behind an ID3v2 tag.
func Check(s audio.InputStream) bool {
	if err := utils.SkipID3v2(s); err != nil {
		return false
	}
	var hdr [4]byte
	if _, err := io.ReadFull(s, hdr[:]); err != nil {
		return false
	}
	return validFrameHeader(hdr)
}

func validFrameHeader(h [4]byte) bool {
	// 11 sync bits
	if h[0] != 0xFF || h[1]&0xE0 != 0xE0 {
		return false
	}
	version := h[1] >> 3 & 0x3
	layer := h[1] >> 1 & 0x3
	bitrate := h[2] >> 4
	rate := h[2] >> 2 & 0x3

	switch {
	case version == 1: // reserved
		return false
	case layer != 1: // Layer III only
		return false
	case bitrate == 0 || bitrate == 0xF: // free format or invalid
		return false
	case rate == 3: // reserved
		return false
	}
	return true
}

// mp3Decoder is the subset of gomp3.Decoder used here, so tests can
// replace it.
type mp3Decoder interface {
	Read([]byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	SampleRate() int
	// Length is the decoded size in bytes, or -1 when unknown.
	Length() int64
}

// Reader decodes MP3 streams through github.com/hajimehoshi/go-mp3.
type Reader struct {
	dec  mp3Decoder
	info audio.Info
	buf  []byte
}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Open(s audio.InputStream) (audio.Info, error) {
	r.Close()

	dec, err := gomp3.NewDecoder(s)
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}
	return r.init(dec), nil
}

func (r *Reader) init(dec mp3Decoder) audio.Info {
	var count uint64
	if n := dec.Length(); n > 0 {
		count = uint64(n / 2)
	}

	r.dec = dec
	r.info = audio.Info{
		SampleCount:  count,
		ChannelCount: channels,
		SampleRate:   dec.SampleRate(),
	}
	return r.info
}

func (r *Reader) Read(dst []int16) (int, error) {
	if r.dec == nil {
		return 0, audio.ErrNotOpen
	}
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}
	r.buf = r.buf[:need]

	// go-mp3 hands out at most one decoded frame per Read.
	n, err := io.ReadFull(r.dec, r.buf)
	samples := n / 2
	for i := range samples {
		dst[i] = int16(binary.LittleEndian.Uint16(r.buf[2*i:]))
	}

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		if samples == 0 {
			return 0, io.EOF
		}
		return samples, nil
	default:
		if samples > 0 {
			return samples, nil
		}
		return 0, fmt.Errorf("decoding MP3: %w", err)
	}
}

// Seek moves to sampleOffset, rounded down to a whole frame.
func (r *Reader) Seek(sampleOffset uint64) error {
	if r.dec == nil {
		return audio.ErrNotOpen
	}

	offset := sampleOffset
	if r.info.SampleCount > 0 {
		offset = min(offset, r.info.SampleCount)
	}
	offset = offset / channels * channels

	if _, err := r.dec.Seek(int64(offset)*2, io.SeekStart); err != nil {
		return fmt.Errorf("seeking MP3 stream: %w", err)
	}
	return nil
}

// Close drops the decoder; the stream stays open.
func (r *Reader) Close() error {
	r.dec = nil
	r.info = audio.Info{}
	return nil
}

var _ audio.Reader = (*Reader)(nil)
