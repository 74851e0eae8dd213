// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sndfile/audio"
	"github.com/ik5/sndfile/utils"
	"github.com/jfreymuth/oggvorbis"
)

// ReaderEntry registers the Ogg Vorbis reader.
var ReaderEntry = audio.ReaderEntry{
	Name:  "ogg",
	Check: Check,
	New:   func() audio.Reader { return NewReader() },
}

// oggDecoder is the subset of oggvorbis.Reader used here, so tests can
// replace it.
type oggDecoder interface {
	SampleRate() int
	Channels() int
	// Length is the stream length in frames.
	Length() int64
	SetPosition(frame int64) error
	// Read fills p with interleaved samples and returns how many it wrote.
	Read(p []float32) (int, error)
}

func newDecoder(r io.Reader) (oggDecoder, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec, nil
}

// Reader decodes Ogg Vorbis streams through github.com/jfreymuth/oggvorbis.
type Reader struct {
	dec      oggDecoder
	info     audio.Info
	frameBuf []float32
	// decoded samples not yet returned
	pending []float32
}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Open(s audio.InputStream) (audio.Info, error) {
	r.Close()

	dec, err := newDecoder(s)
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotVorbis, err)
	}
	return r.init(dec)
}

func (r *Reader) init(dec oggDecoder) (audio.Info, error) {
	channels := dec.Channels()
	if channels < 1 {
		return audio.Info{}, ErrUnsupportedChannels
	}

	frames := max(dec.Length(), 0)
	r.dec = dec
	r.info = audio.Info{
		SampleCount:  uint64(frames) * uint64(channels),
		ChannelCount: channels,
		SampleRate:   dec.SampleRate(),
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

	if len(r.pending) == 0 {
		// Always ask for whole frames, at least one.
		channels := r.info.ChannelCount
		want := max(len(dst)/channels, 1) * channels
		if cap(r.frameBuf) < want {
			r.frameBuf = make([]float32, want)
		}

		n, err := r.dec.Read(r.frameBuf[:want])
		if n == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("decoding Vorbis: %w", err)
		}
		r.pending = r.frameBuf[:n]
	}

	n := utils.Floats32ToInt16(dst, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// Seek moves to sampleOffset, rounded down to a whole frame.
func (r *Reader) Seek(sampleOffset uint64) error {
	if r.dec == nil {
		return audio.ErrNotOpen
	}

	frame := min(sampleOffset, r.info.SampleCount) / uint64(r.info.ChannelCount)
	if err := r.dec.SetPosition(int64(frame)); err != nil {
		return fmt.Errorf("seeking Vorbis stream: %w", err)
	}
	r.pending = nil
	return nil
}

// Close drops the decoder; the stream stays open.
func (r *Reader) Close() error {
	r.dec = nil
	r.info = audio.Info{}
	r.pending = nil
	return nil
}

var _ audio.Reader = (*Reader)(nil)
