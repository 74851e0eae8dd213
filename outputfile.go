// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"fmt"

	"github.com/ik5/sndfile/audio"
	"go.uber.org/zap"
)

// OutputFile is a sound file being written.
type OutputFile struct {
	writer  audio.Writer
	written uint64
}

// CreateOutputFile creates path with the writer matching its file name.
func (f *Factory) CreateOutputFile(path string, sampleRate, channelCount int) (*OutputFile, error) {
	w, err := f.CreateWriterFromFilename(path)
	if err != nil {
		return nil, err
	}

	if err := w.Open(path, sampleRate, channelCount); err != nil {
		f.log().Warn("Failed to open sound file "+quote(path)+" for writing",
			zap.String("path", path),
			zap.Int("sample_rate", sampleRate),
			zap.Int("channels", channelCount),
			zap.Error(err))
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	return &OutputFile{writer: w}, nil
}

// Write appends interleaved samples.
func (out *OutputFile) Write(samples []int16) error {
	if out.writer == nil {
		return audio.ErrNotOpen
	}
	if err := out.writer.Write(samples); err != nil {
		return err
	}
	out.written += uint64(len(samples))
	return nil
}

// Written returns the number of samples handed to Write.
func (out *OutputFile) Written() uint64 { return out.written }

// Close finishes the file. Closing twice is a no-op.
func (out *OutputFile) Close() error {
	if out.writer == nil {
		return nil
	}
	err := out.writer.Close()
	out.writer = nil
	return err
}
