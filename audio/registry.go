// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Registry holds reader and writer entries in registration order.
// Probing walks the entries in that order and the first match wins, so a
// more specific format has to be registered before a permissive one.
type Registry struct {
	readers []ReaderEntry
	writers []WriterEntry
	mtx     *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		mtx: &sync.Mutex{},
	}
}

// RegisterReader appends e. Registering the same codec twice yields two
// entries that are both probed.
func (r *Registry) RegisterReader(e ReaderEntry) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.readers = append(r.readers, e)
}

// RegisterWriter appends e.
func (r *Registry) RegisterWriter(e WriterEntry) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.writers = append(r.writers, e)
}

// Readers returns a snapshot of the reader entries.
func (r *Registry) Readers() []ReaderEntry {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]ReaderEntry(nil), r.readers...)
}

// Writers returns a snapshot of the writer entries.
func (r *Registry) Writers() []WriterEntry {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]WriterEntry(nil), r.writers...)
}

// ProbeReader rewinds s before every probe and returns the first entry whose
// Check accepts it.
func (r *Registry) ProbeReader(s InputStream) (ReaderEntry, error) {
	for _, e := range r.Readers() {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return ReaderEntry{}, fmt.Errorf("rewinding stream: %w", err)
		}
		if check(e, s) {
			return e, nil
		}
	}
	return ReaderEntry{}, ErrFormatNotSupported
}

// FindReader returns a new, unopened reader for the data in s.
func (r *Registry) FindReader(s InputStream) (Reader, error) {
	e, err := r.ProbeReader(s)
	if err != nil {
		return nil, err
	}
	return e.New(), nil
}

// FindWriter returns a new, unopened writer for filename.
func (r *Registry) FindWriter(filename string) (Writer, error) {
	for _, e := range r.Writers() {
		if e.Check(filename) {
			return e.New(), nil
		}
	}
	return nil, ErrFormatNotSupported
}

// check treats a panicking probe as a rejection; decoders are fed arbitrary
// bytes here.
func check(e ReaderEntry, s InputStream) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return e.Check(s)
}

// HasExtension reports whether filename ends with one of exts, ignoring case.
// exts include the leading dot.
func HasExtension(filename string, exts ...string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
