// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/sndfile/audio"
	"github.com/ik5/sndfile/utils"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE

	// maxFmtChunkSize bounds the fmt chunk we are willing to buffer.
	maxFmtChunkSize = 1 << 16
)

// ReaderEntry registers the WAV reader.
var ReaderEntry = audio.ReaderEntry{
	Name:  "wav",
	Check: Check,
	New:   func() audio.Reader { return NewReader() },
}

// Check reports whether s holds a RIFF/WAVE file with a readable fmt chunk.
func Check(s audio.InputStream) bool {
	header := make([]byte, 12)
	if _, err := io.ReadFull(s, header); err != nil {
		return false
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return false
	}
	if _, err := s.Seek(-int64(len(header)), io.SeekCurrent); err != nil {
		return false
	}

	return wav.NewDecoder(s).IsValidFile()
}

// Reader decodes integer PCM WAV data.
type Reader struct {
	s              audio.InputStream
	info           audio.Info
	bytesPerSample int
	dataStart      int64
	// position in samples from dataStart
	pos uint64
	buf []byte
}

func NewReader() *Reader {
	return &Reader{}
}

type fmtChunk struct {
	formatTag     uint16
	channels      int
	sampleRate    int
	bitsPerSample int
}

func (r *Reader) Open(s audio.InputStream) (audio.Info, error) {
	r.Close()

	header := make([]byte, 12)
	if _, err := io.ReadFull(s, header); err != nil {
		return audio.Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return audio.Info{}, ErrNotWavFile
	}

	var (
		format   fmtChunk
		foundFmt bool
	)
	for {
		id, size, err := readChunkHeader(s)
		if err != nil {
			if foundFmt && (errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)) {
				return audio.Info{}, ErrMissingDataChunk
			}
			return audio.Info{}, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}

		switch id {
		case "fmt ":
			format, err = readFmtChunk(s, size)
			if err != nil {
				return audio.Info{}, err
			}
			foundFmt = true
		case "data":
			if !foundFmt {
				return audio.Info{}, ErrUnsupportedWavLayout
			}
			return r.openData(s, format, size)
		default:
			// Chunks are padded to even bytes
			if _, err := s.Seek(int64(size)+int64(size&1), io.SeekCurrent); err != nil {
				return audio.Info{}, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
			}
		}
	}
}

func (r *Reader) openData(s audio.InputStream, format fmtChunk, size uint32) (audio.Info, error) {
	dataStart, err := s.Tell()
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w", err)
	}

	// Streamed or truncated files announce more data than they carry.
	dataSize := int64(size)
	if total, err := s.Size(); err == nil && dataStart+dataSize > total {
		dataSize = total - dataStart
	}

	bytesPerSample := format.bitsPerSample / 8
	r.s = s
	r.bytesPerSample = bytesPerSample
	r.dataStart = dataStart
	r.pos = 0
	r.info = audio.Info{
		SampleCount:  uint64(dataSize / int64(bytesPerSample)),
		ChannelCount: format.channels,
		SampleRate:   format.sampleRate,
	}

	return r.info, nil
}

func readChunkHeader(s io.Reader) (string, uint32, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(s, hdr[:]); err != nil {
		return "", 0, err
	}
	return string(hdr[0:4]), binary.LittleEndian.Uint32(hdr[4:8]), nil
}

func readFmtChunk(s io.ReadSeeker, size uint32) (fmtChunk, error) {
	if size < 16 || size > maxFmtChunkSize {
		return fmtChunk{}, ErrUnsupportedWavLayout
	}

	data := make([]byte, size+size&1)
	if _, err := io.ReadFull(s, data); err != nil {
		return fmtChunk{}, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	f := fmtChunk{
		formatTag:     binary.LittleEndian.Uint16(data[0:2]),
		channels:      int(binary.LittleEndian.Uint16(data[2:4])),
		sampleRate:    int(binary.LittleEndian.Uint32(data[4:8])),
		bitsPerSample: int(binary.LittleEndian.Uint16(data[14:16])),
	}

	switch f.formatTag {
	case formatPCM:
	case formatExtensible:
		// The sub-format GUID starts with the format tag it extends.
		if size < 40 || binary.LittleEndian.Uint16(data[24:26]) != formatPCM {
			return fmtChunk{}, ErrUnsupportedEncoding
		}
	default:
		return fmtChunk{}, ErrUnsupportedEncoding
	}

	switch f.bitsPerSample {
	case 8, 16, 24, 32:
	default:
		return fmtChunk{}, ErrUnsupportedEncoding
	}

	if f.channels < 1 || f.sampleRate < 1 {
		return fmtChunk{}, ErrUnsupportedWavLayout
	}

	return f, nil
}

// Seek moves to sampleOffset, rounded down to a whole frame.
func (r *Reader) Seek(sampleOffset uint64) error {
	if r.s == nil {
		return audio.ErrNotOpen
	}

	channels := uint64(r.info.ChannelCount)
	offset := min(sampleOffset, r.info.SampleCount) / channels * channels

	if _, err := r.s.Seek(r.dataStart+int64(offset)*int64(r.bytesPerSample), io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	r.pos = offset
	return nil
}

func (r *Reader) Read(dst []int16) (int, error) {
	if r.s == nil {
		return 0, audio.ErrNotOpen
	}
	if len(dst) == 0 {
		return 0, nil
	}

	left := r.info.SampleCount - r.pos
	if left == 0 {
		return 0, io.EOF
	}

	count := int(min(uint64(len(dst)), left))
	need := count * r.bytesPerSample
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}
	r.buf = r.buf[:need]

	n, err := io.ReadFull(r.s, r.buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / r.bytesPerSample
	r.decode(dst[:samples], r.buf)
	r.pos += uint64(samples)

	if samples == 0 {
		return 0, io.EOF
	}
	return samples, nil
}

func (r *Reader) decode(dst []int16, src []byte) {
	switch r.bytesPerSample {
	case 1:
		// 8-bit WAV is unsigned
		for i := range dst {
			dst[i] = int16(int(src[i])-128) << 8
		}
	case 2:
		for i := range dst {
			dst[i] = int16(binary.LittleEndian.Uint16(src[2*i:]))
		}
	case 3:
		for i := range dst {
			dst[i] = utils.ScaleToInt16(utils.Int24LE(src[3*i:]), 24)
		}
	case 4:
		for i := range dst {
			dst[i] = utils.ScaleToInt16(int32(binary.LittleEndian.Uint32(src[4*i:])), 32)
		}
	}
}

// Close forgets the stream; the caller still owns it.
func (r *Reader) Close() error {
	r.s = nil
	r.info = audio.Info{}
	r.pos = 0
	return nil
}

var _ audio.Reader = (*Reader)(nil)
