// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sndfile/audio"
	"github.com/ik5/sndfile/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

var signature = []byte("fLaC")

// ReaderEntry registers the FLAC reader.
var ReaderEntry = audio.ReaderEntry{
	Name:  "flac",
	Check: Check,
	New:   func() audio.Reader { return NewReader() },
}

// Check reports whether s starts with the FLAC signature, optionally behind
// an ID3v2 tag.
func Check(s audio.InputStream) bool {
	if err := utils.SkipID3v2(s); err != nil {
		return false
	}
	var sig [4]byte
	if _, err := io.ReadFull(s, sig[:]); err != nil {
		return false
	}
	return string(sig[:]) == string(signature)
}

// Reader decodes FLAC streams through github.com/mewkiz/flac.
type Reader struct {
	dec  *flac.Stream
	info audio.Info
	bits int
	// decoded samples of the current frame not yet returned
	pending []int16
	buf     []int16
	atEnd   bool
}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Open(s audio.InputStream) (audio.Info, error) {
	r.Close()

	if err := utils.SkipID3v2(s); err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	dec, err := flac.NewSeek(s)
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	si := dec.Info
	if si.BitsPerSample < 4 || si.BitsPerSample > 32 {
		return audio.Info{}, ErrUnsupportedBitDepth
	}

	r.dec = dec
	r.bits = int(si.BitsPerSample)
	r.info = audio.Info{
		SampleCount:  si.NSamples * uint64(si.NChannels),
		ChannelCount: int(si.NChannels),
		SampleRate:   int(si.SampleRate),
	}

	return r.info, nil
}

func (r *Reader) Read(dst []int16) (int, error) {
	if r.dec == nil {
		return 0, audio.ErrNotOpen
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if r.atEnd {
		return 0, io.EOF
	}

	n := 0
	for n < len(dst) {
		if len(r.pending) == 0 {
			err := r.decodeFrame()
			if errors.Is(err, io.EOF) {
				r.atEnd = true
				break
			}
			if err != nil {
				if n > 0 {
					return n, nil
				}
				return 0, err
			}
		}

		c := copy(dst[n:], r.pending)
		r.pending = r.pending[c:]
		n += c
	}

	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// decodeFrame parses the next frame into r.pending.
func (r *Reader) decodeFrame() error {
	f, err := r.dec.ParseNext()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("decoding FLAC frame: %w", err)
	}

	channels := len(f.Subframes)
	if channels != r.info.ChannelCount {
		return ErrChannelMismatch
	}

	bits := r.bits
	if f.BitsPerSample != 0 {
		bits = int(f.BitsPerSample)
	}

	frames := int(f.BlockSize)
	need := frames * channels
	if cap(r.buf) < need {
		r.buf = make([]int16, need)
	}
	r.buf = r.buf[:need]

	interleave(r.buf, f, frames, bits)
	r.pending = r.buf
	return nil
}

// interleave writes frames samples of every subframe of f into dst.
func interleave(dst []int16, f *frame.Frame, frames, bits int) {
	channels := len(f.Subframes)
	for ch, sub := range f.Subframes {
		for i, v := range sub.Samples[:frames] {
			dst[i*channels+ch] = utils.ScaleToInt16(v, bits)
		}
	}
}

// Seek moves to sampleOffset, rounded down to a whole frame. The decoder
// lands on the block holding the target; the samples before it are dropped.
func (r *Reader) Seek(sampleOffset uint64) error {
	if r.dec == nil {
		return audio.ErrNotOpen
	}

	channels := uint64(r.info.ChannelCount)
	target := sampleOffset / channels
	if total := r.dec.Info.NSamples; total != 0 && target >= total {
		r.pending = nil
		r.atEnd = true
		return nil
	}

	first, err := r.dec.Seek(target)
	if errors.Is(err, flac.ErrNoSeektable) {
		// no frames at all
		r.pending = nil
		r.atEnd = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("seeking FLAC stream: %w", err)
	}
	r.pending = nil
	r.atEnd = false

	if err := r.decodeFrame(); err != nil {
		if errors.Is(err, io.EOF) {
			r.atEnd = true
			return nil
		}
		return err
	}

	skip := min(int((target-first)*channels), len(r.pending))
	r.pending = r.pending[skip:]
	return nil
}

// Close drops the decoder. The stream belongs to the caller and stays open.
func (r *Reader) Close() error {
	r.dec = nil
	r.info = audio.Info{}
	r.pending = nil
	r.atEnd = false
	return nil
}

var _ audio.Reader = (*Reader)(nil)
