// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/ik5/sndfile/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

const (
	// blockSize is the number of frames per FLAC block.
	blockSize    = 4096
	minBlockSize = 16

	// streamInfoOffset is where the StreamInfo body starts: the signature
	// and one metadata block header come first.
	streamInfoOffset = 8
	streamInfoSize   = 34

	maxSampleRate = 1<<20 - 1
)

// WriterEntry registers the FLAC writer.
var WriterEntry = audio.WriterEntry{
	Name:  "flac",
	Check: CheckFilename,
	New:   func() audio.Writer { return NewWriter() },
}

// CheckFilename reports whether filename has a .flac extension.
func CheckFilename(filename string) bool {
	return audio.HasExtension(filename, ".flac")
}

var layouts = [...]frame.Channels{
	1: frame.ChannelsMono,
	2: frame.ChannelsLR,
	3: frame.ChannelsLRC,
	4: frame.ChannelsLRLsRs,
	5: frame.ChannelsLRCLsRs,
	6: frame.ChannelsLRCLfeLsRs,
	7: frame.ChannelsLRCLfeCsSlSr,
	8: frame.ChannelsLRCLfeLsRsSlSr,
}

// Writer encodes 16-bit samples losslessly into FLAC files.
type Writer struct {
	f          *os.File
	enc        *flac.Encoder
	sampleRate int
	channels   int
	subframes  []*frame.Subframe
	pending    []int16
	frames     uint64
	md5        hash.Hash
	pcm        []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

// headerSink hides Seek and Close of the file from the encoder: the
// StreamInfo block is rewritten by Close and the file is closed there.
type headerSink struct {
	io.Writer
}

func (w *Writer) Open(filename string, sampleRate, channelCount int) error {
	if err := audio.ValidateFormat(sampleRate, channelCount); err != nil {
		return err
	}
	if sampleRate > maxSampleRate {
		return audio.ErrInvalidFormat
	}
	if w.enc != nil {
		w.Close()
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  minBlockSize,
		BlockSizeMax:  blockSize,
		SampleRate:    uint32(sampleRate),
		NChannels:     uint8(channelCount),
		BitsPerSample: 16,
	}
	enc, err := flac.NewEncoder(headerSink{f}, info)
	if err != nil {
		f.Close()
		os.Remove(filename)
		return fmt.Errorf("creating FLAC encoder: %w", err)
	}

	w.f = f
	w.enc = enc
	w.sampleRate = sampleRate
	w.channels = channelCount
	w.frames = 0
	w.md5 = md5.New()
	w.subframes = make([]*frame.Subframe, channelCount)
	for i := range w.subframes {
		w.subframes[i] = &frame.Subframe{
			Samples: make([]int32, blockSize),
		}
	}

	return nil
}

// Write buffers samples and encodes full blocks. One block is held back so
// the final block never drops below the minimum block size.
func (w *Writer) Write(samples []int16) error {
	if w.enc == nil {
		return audio.ErrNotOpen
	}

	w.pending = append(w.pending, samples...)
	block := blockSize * w.channels

	done := 0
	for len(w.pending)-done >= 2*block {
		if err := w.writeBlock(w.pending[done : done+block]); err != nil {
			return err
		}
		done += block
	}
	w.pending = w.pending[:copy(w.pending, w.pending[done:])]

	return nil
}

func (w *Writer) flush() error {
	frames := len(w.pending) / w.channels
	data := w.pending[:frames*w.channels]

	if frames > blockSize {
		half := frames / 2 * w.channels
		if err := w.writeBlock(data[:half]); err != nil {
			return err
		}
		data = data[half:]
	}
	if len(data) > 0 {
		return w.writeBlock(data)
	}
	return nil
}

func (w *Writer) writeBlock(samples []int16) error {
	frames := len(samples) / w.channels

	for ch, sub := range w.subframes {
		sub.Samples = sub.Samples[:frames]
		sub.NSamples = frames
		for i := range frames {
			sub.Samples[i] = int32(samples[i*w.channels+ch])
		}

		sub.SubHeader = frame.SubHeader{Pred: frame.PredVerbatim}
		if constant(sub.Samples) {
			sub.SubHeader.Pred = frame.PredConstant
		}
	}

	f := &frame.Frame{
		Header: frame.Header{
			BlockSize:     uint16(frames),
			SampleRate:    uint32(w.sampleRate),
			Channels:      layouts[w.channels],
			BitsPerSample: 16,
		},
		Subframes: w.subframes,
	}
	if err := w.enc.WriteFrame(f); err != nil {
		return fmt.Errorf("writing FLAC frame: %w", err)
	}

	// The MD5 signature covers little-endian samples.
	w.pcm = w.pcm[:0]
	for _, s := range samples {
		w.pcm = binary.LittleEndian.AppendUint16(w.pcm, uint16(s))
	}
	w.md5.Write(w.pcm)
	w.frames += uint64(frames)

	return nil
}

func constant(samples []int32) bool {
	for _, s := range samples[1:] {
		if s != samples[0] {
			return false
		}
	}
	return true
}

// Close encodes the buffered samples, rewrites StreamInfo and closes the
// file. A trailing incomplete frame is dropped.
func (w *Writer) Close() error {
	if w.enc == nil {
		return nil
	}

	err := w.flush()
	err = errors.Join(err, w.enc.Close())
	if err == nil {
		_, err = w.f.WriteAt(w.streamInfo(), streamInfoOffset)
	}
	err = errors.Join(err, w.f.Close())

	w.enc, w.f, w.subframes, w.pending, w.md5 = nil, nil, nil, nil, nil
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// streamInfo encodes the StreamInfo body for the samples written so far.
func (w *Writer) streamInfo() []byte {
	buf := make([]byte, streamInfoSize)
	binary.BigEndian.PutUint16(buf[0:2], minBlockSize)
	binary.BigEndian.PutUint16(buf[2:4], blockSize)
	// bytes 4-9 hold the frame size bounds, zero means unknown

	packed := uint64(w.sampleRate)<<44 |
		uint64(w.channels-1)<<41 |
		uint64(16-1)<<36 |
		w.frames&(1<<36-1)
	binary.BigEndian.PutUint64(buf[10:18], packed)
	copy(buf[18:], w.md5.Sum(nil))

	return buf
}

var _ audio.Writer = (*Writer)(nil)
