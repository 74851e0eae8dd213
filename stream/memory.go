// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"

	"github.com/ik5/sndfile/audio"
)

// Memory is an InputStream over a fixed byte slice. The slice is not copied
// and must not change while the stream is in use.
type Memory struct {
	data   []byte
	offset int64
}

// NewMemory wraps data. A nil slice is an empty stream.
func NewMemory(data []byte) *Memory {
	return &Memory{data: data}
}

func (m *Memory) Read(p []byte) (int, error) {
	if m.offset >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.offset:])
	m.offset += int64(n)
	return n, nil
}

// Seek clamps positions past the end to the end.
func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	pos, err := resolve(offset, whence, m.offset, int64(len(m.data)))
	if err != nil {
		return m.offset, err
	}
	m.offset = pos
	return pos, nil
}

func (m *Memory) Tell() (int64, error) { return m.offset, nil }
func (m *Memory) Size() (int64, error) { return int64(len(m.data)), nil }

var _ audio.InputStream = (*Memory)(nil)
