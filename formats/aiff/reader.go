// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/sndfile/audio"
)

// ReaderEntry registers the AIFF reader. It is not one of the built-in
// formats; callers register it explicitly.
var ReaderEntry = audio.ReaderEntry{
	Name:  "aiff",
	Check: Check,
	New:   func() audio.Reader { return NewReader() },
}

// Check reports whether s holds an AIFF or AIFF-C file go-audio can parse.
func Check(s audio.InputStream) bool {
	var hdr [12]byte
	if _, err := io.ReadFull(s, hdr[:]); err != nil {
		return false
	}
	if string(hdr[0:4]) != "FORM" || (string(hdr[8:12]) != "AIFF" && string(hdr[8:12]) != "AIFC") {
		return false
	}
	if _, err := s.Seek(-int64(len(hdr)), io.SeekCurrent); err != nil {
		return false
	}
	return aiff.NewDecoder(s).IsValidFile()
}

// pcmReader is the part of aiff.Decoder used for sample data, so tests can
// replace it.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Reader decodes 16-bit AIFF files through github.com/go-audio/aiff.
type Reader struct {
	s     audio.InputStream
	start int64
	dec   pcmReader
	info  audio.Info
	// position in interleaved samples
	pos uint64
	buf *goaudio.IntBuffer
}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Open(s audio.InputStream) (audio.Info, error) {
	r.Close()

	start, err := s.Tell()
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w", err)
	}
	dec, info, err := newDecoder(s)
	if err != nil {
		return audio.Info{}, err
	}

	r.s = s
	r.start = start
	r.init(dec, info)
	return info, nil
}

func newDecoder(s io.ReadSeeker) (*aiff.Decoder, audio.Info, error) {
	dec := aiff.NewDecoder(s)
	if !dec.IsValidFile() {
		return nil, audio.Info{}, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, audio.Info{}, ErrOnlyPCM16bitSupported
	}
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, audio.Info{}, ErrNoChannels
	}

	info := audio.Info{
		SampleCount:  uint64(dec.NumSampleFrames) * uint64(format.NumChannels),
		ChannelCount: format.NumChannels,
		SampleRate:   format.SampleRate,
	}
	return dec, info, nil
}

func (r *Reader) init(dec pcmReader, info audio.Info) {
	r.dec = dec
	r.info = info
	r.pos = 0
	r.buf = &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: info.ChannelCount,
			SampleRate:  info.SampleRate,
		},
		SourceBitDepth: 16,
	}
}

func (r *Reader) Read(dst []int16) (int, error) {
	if r.dec == nil {
		return 0, audio.ErrNotOpen
	}
	if len(dst) == 0 {
		return 0, nil
	}

	want := int(min(uint64(len(dst)), r.info.SampleCount-r.pos))
	if want == 0 {
		return 0, io.EOF
	}

	n, err := r.fill(want)
	for i, v := range r.buf.Data[:n] {
		dst[i] = int16(v)
	}
	r.pos += uint64(n)

	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("decoding AIFF: %w", err)
	}
	return n, nil
}

// fill decodes up to n samples into r.buf.
func (r *Reader) fill(n int) (int, error) {
	if cap(r.buf.Data) < n {
		r.buf.Data = make([]int, n)
	}
	r.buf.Data = r.buf.Data[:n]
	return r.dec.PCMBuffer(r.buf)
}

// Seek moves to sampleOffset, rounded down to a whole frame. The decoder
// cannot jump, so it restarts from the header and skips samples.
func (r *Reader) Seek(sampleOffset uint64) error {
	if r.dec == nil {
		return audio.ErrNotOpen
	}
	if r.s == nil {
		return ErrNotSeekable
	}

	channels := uint64(r.info.ChannelCount)
	target := min(sampleOffset, r.info.SampleCount) / channels * channels

	if _, err := r.s.Seek(r.start, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	dec, info, err := newDecoder(r.s)
	if err != nil {
		return err
	}
	r.init(dec, info)

	const chunk = 4096
	for r.pos < target {
		n, err := r.fill(int(min(target-r.pos, chunk)))
		r.pos += uint64(n)
		if n == 0 {
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("skipping AIFF samples: %w", err)
			}
			break
		}
	}
	return nil
}

// Close drops the decoder; the stream stays open.
func (r *Reader) Close() error {
	r.s = nil
	r.dec = nil
	r.info = audio.Info{}
	r.pos = 0
	return nil
}

var _ audio.Reader = (*Reader)(nil)
