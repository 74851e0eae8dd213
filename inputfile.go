// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/sndfile/audio"
	"github.com/ik5/sndfile/stream"
	"go.uber.org/zap"
)

// InputFile is an opened sound file. It keeps track of the read offset in
// interleaved samples.
type InputFile struct {
	reader audio.Reader
	closer io.Closer // set when the file owns its stream
	info   audio.Info
	format string
	offset uint64
}

// OpenInputFile opens the sound file at path.
func (f *Factory) OpenInputFile(path string) (*InputFile, error) {
	f.ensureBuiltins()

	s, err := f.openFile(path)
	if err != nil {
		return nil, err
	}

	in, err := f.openInput(s, quote(path), zap.String("path", path))
	if err != nil {
		s.Close()
		return nil, err
	}
	in.closer = s
	return in, nil
}

// OpenInputMemory opens a sound file held in data. data must not change
// while the file is open.
func (f *Factory) OpenInputMemory(data []byte) (*InputFile, error) {
	f.ensureBuiltins()
	return f.openInput(stream.NewMemory(data), "from memory", zap.Int("size", len(data)))
}

// OpenInputStream opens a sound file read from s. s stays owned by the
// caller and must outlive the returned file.
func (f *Factory) OpenInputStream(s audio.InputStream) (*InputFile, error) {
	f.ensureBuiltins()
	return f.openInput(s, "from stream")
}

func (f *Factory) openInput(s audio.InputStream, source string, fields ...zap.Field) (*InputFile, error) {
	r, format, err := f.findReader(s, source, fields...)
	if err != nil {
		return nil, err
	}

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCannotRestart, err)
	}

	info, err := r.Open(s)
	if err != nil {
		f.log().Warn("Failed to open sound file "+source+" (invalid "+format+" data)",
			append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("opening %s data: %w", format, err)
	}

	return &InputFile{
		reader: r,
		info:   info,
		format: format,
	}, nil
}

// Info returns the stream description read from the header.
func (in *InputFile) Info() audio.Info { return in.info }

// Format returns the name of the reader that decodes the file.
func (in *InputFile) Format() string { return in.format }

// Duration returns the playing time of the whole file.
func (in *InputFile) Duration() time.Duration { return in.info.Duration() }

// Offset returns the read position in interleaved samples.
func (in *InputFile) Offset() uint64 { return in.offset }

// TimeOffset returns the read position as playing time.
func (in *InputFile) TimeOffset() time.Duration {
	if in.info.SampleRate <= 0 || in.info.ChannelCount <= 0 {
		return 0
	}
	frames := in.offset / uint64(in.info.ChannelCount)
	return time.Duration(frames) * time.Second / time.Duration(in.info.SampleRate)
}

// Read fills dst with interleaved samples. It returns io.EOF once the file
// is exhausted.
func (in *InputFile) Read(dst []int16) (int, error) {
	if in.reader == nil {
		return 0, audio.ErrNotOpen
	}
	n, err := in.reader.Read(dst)
	in.offset += uint64(n)
	return n, err
}

// Seek moves to sampleOffset, counted in interleaved samples. The offset is
// rounded down to a whole frame and clamped to the end of the file.
func (in *InputFile) Seek(sampleOffset uint64) error {
	if in.reader == nil {
		return audio.ErrNotOpen
	}
	if err := in.reader.Seek(sampleOffset); err != nil {
		return err
	}

	if in.info.SampleCount > 0 {
		sampleOffset = min(sampleOffset, in.info.SampleCount)
	}
	if ch := uint64(in.info.ChannelCount); ch > 0 {
		sampleOffset -= sampleOffset % ch
	}
	in.offset = sampleOffset
	return nil
}

// SeekTime moves to the frame playing at d. Negative durations seek to the
// start.
func (in *InputFile) SeekTime(d time.Duration) error {
	if d < 0 {
		d = 0
	}
	rate := uint64(in.info.SampleRate)
	frames := uint64(d/time.Second)*rate + uint64(d%time.Second)*rate/uint64(time.Second)
	return in.Seek(frames * uint64(in.info.ChannelCount))
}

// Close releases the reader and, for files opened by path, the file itself.
// Closing twice is a no-op.
func (in *InputFile) Close() error {
	if in.reader == nil {
		return nil
	}
	err := in.reader.Close()
	if in.closer != nil {
		if cerr := in.closer.Close(); err == nil {
			err = cerr
		}
	}
	in.reader, in.closer = nil, nil
	return err
}
