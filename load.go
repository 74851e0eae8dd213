// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"errors"
	"io"

	"github.com/ik5/sndfile/audio"
)

const loadChunk = 4096

// Load decodes the whole sound file at path into interleaved samples.
func (f *Factory) Load(path string) ([]int16, audio.Info, error) {
	in, err := f.OpenInputFile(path)
	if err != nil {
		return nil, audio.Info{}, err
	}
	defer in.Close()

	info := in.Info()
	samples, err := readAll(in, info.SampleCount)
	if err != nil {
		return nil, audio.Info{}, err
	}
	return samples, info, nil
}

// readAll collects samples until io.EOF. hint presizes the result.
func readAll(in *InputFile, hint uint64) ([]int16, error) {
	out := make([]int16, 0, hint)
	buf := make([]int16, loadChunk)
	for {
		n, err := in.Read(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return out, nil
		}
	}
}
