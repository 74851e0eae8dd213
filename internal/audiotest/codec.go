// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/ik5/sndfile/audio"
)

// ProbeLog records the order in which fake reader probes run.
type ProbeLog struct {
	mtx   sync.Mutex
	calls []string
}

func (l *ProbeLog) add(name string) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.calls = append(l.calls, name)
}

// Calls returns the recorded probe names.
func (l *ProbeLog) Calls() []string {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return append([]string(nil), l.calls...)
}

// MagicEntry returns a reader entry accepting streams that start with magic.
// Every probe is recorded in log when log is not nil. The probe also checks
// that it was handed a rewound stream.
func MagicEntry(name, magic string, log *ProbeLog) audio.ReaderEntry {
	return audio.ReaderEntry{
		Name: name,
		Check: func(s audio.InputStream) bool {
			if log != nil {
				log.add(name)
			}
			if pos, err := s.Tell(); err != nil || pos != 0 {
				return false
			}
			buf := make([]byte, len(magic))
			if _, err := io.ReadFull(s, buf); err != nil {
				return false
			}
			return bytes.Equal(buf, []byte(magic))
		},
		New: func() audio.Reader { return &FakeReader{Name: name} },
	}
}

// FakeReader returns silence described by Info.
type FakeReader struct {
	Name   string
	Info   audio.Info
	offset uint64
	open   bool
}

func (r *FakeReader) Open(audio.InputStream) (audio.Info, error) {
	r.open = true
	return r.Info, nil
}

func (r *FakeReader) Seek(sampleOffset uint64) error {
	if !r.open {
		return audio.ErrNotOpen
	}
	r.offset = min(sampleOffset, r.Info.SampleCount)
	return nil
}

func (r *FakeReader) Read(dst []int16) (int, error) {
	if !r.open {
		return 0, audio.ErrNotOpen
	}
	left := r.Info.SampleCount - r.offset
	if left == 0 {
		return 0, io.EOF
	}
	n := min(uint64(len(dst)), left)
	clear(dst[:n])
	r.offset += n
	return int(n), nil
}

func (r *FakeReader) Close() error {
	r.open = false
	return nil
}

// ExtEntry returns a writer entry matching filenames with the suffix ext.
func ExtEntry(name, ext string) audio.WriterEntry {
	return audio.WriterEntry{
		Name:  name,
		Check: func(filename string) bool { return strings.HasSuffix(filename, ext) },
		New:   func() audio.Writer { return &FakeWriter{Name: name} },
	}
}

// FakeWriter collects written samples in memory.
type FakeWriter struct {
	Name       string
	Filename   string
	SampleRate int
	Channels   int
	Samples    []int16
	Closed     bool
}

func (w *FakeWriter) Open(filename string, sampleRate, channelCount int) error {
	if err := audio.ValidateFormat(sampleRate, channelCount); err != nil {
		return err
	}
	w.Filename, w.SampleRate, w.Channels = filename, sampleRate, channelCount
	return nil
}

func (w *FakeWriter) Write(samples []int16) error {
	w.Samples = append(w.Samples, samples...)
	return nil
}

func (w *FakeWriter) Close() error {
	w.Closed = true
	return nil
}
