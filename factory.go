// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/ik5/sndfile/audio"
	"github.com/ik5/sndfile/formats/flac"
	"github.com/ik5/sndfile/formats/vorbis"
	"github.com/ik5/sndfile/formats/wav"
	"github.com/ik5/sndfile/stream"
	"go.uber.org/zap"
)

// Factory picks a codec for sound files. The built-in codecs (FLAC, Ogg
// Vorbis and WAV, in that order) are added on the first lookup, after any
// entry registered before it.
type Factory struct {
	registry *audio.Registry
	logger   *zap.Logger
	builtins bool
	once     sync.Once
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger failures are reported to. Without it the
// factory logs to zap.L().
func WithLogger(l *zap.Logger) Option {
	return func(f *Factory) {
		f.logger = l
	}
}

// WithoutBuiltins leaves the built-in codecs out, so only registered entries
// are probed.
func WithoutBuiltins() Option {
	return func(f *Factory) {
		f.builtins = false
	}
}

func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		registry: audio.NewRegistry(),
		builtins: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var (
	defaultFactory *Factory
	defaultOnce    sync.Once
)

// Default returns the process-wide factory used by the package level
// functions.
func Default() *Factory {
	defaultOnce.Do(func() {
		defaultFactory = NewFactory()
	})
	return defaultFactory
}

// RegisterReader appends e to the probe list. It does not trigger the
// built-in registration, so entries added before the first lookup are probed
// before the built-ins.
func (f *Factory) RegisterReader(e audio.ReaderEntry) {
	f.registry.RegisterReader(e)
}

// RegisterWriter appends e to the writer list.
func (f *Factory) RegisterWriter(e audio.WriterEntry) {
	f.registry.RegisterWriter(e)
}

// ReaderCount returns the number of registered reader entries. It does not
// trigger the built-in registration.
func (f *Factory) ReaderCount() int {
	return len(f.registry.Readers())
}

// WriterCount returns the number of registered writer entries.
func (f *Factory) WriterCount() int {
	return len(f.registry.Writers())
}

// ReaderFormats lists the reader names in probe order.
func (f *Factory) ReaderFormats() []string {
	f.ensureBuiltins()
	entries := f.registry.Readers()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// WriterFormats lists the writer names in match order.
func (f *Factory) WriterFormats() []string {
	f.ensureBuiltins()
	entries := f.registry.Writers()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// RegisterBuiltins adds the built-in codecs now unless that already
// happened. Entries registered afterwards are probed after them.
func (f *Factory) RegisterBuiltins() {
	f.ensureBuiltins()
}

func (f *Factory) ensureBuiltins() {
	f.once.Do(func() {
		if !f.builtins {
			return
		}
		f.registry.RegisterReader(flac.ReaderEntry)
		f.registry.RegisterWriter(flac.WriterEntry)
		f.registry.RegisterReader(vorbis.ReaderEntry)
		f.registry.RegisterWriter(vorbis.WriterEntry)
		f.registry.RegisterReader(wav.ReaderEntry)
		f.registry.RegisterWriter(wav.WriterEntry)
	})
}

func (f *Factory) log() *zap.Logger {
	if f.logger != nil {
		return f.logger
	}
	return zap.L()
}

// CreateReaderFromFilename returns an unopened reader for the file at path.
// The file is only opened to probe it.
func (f *Factory) CreateReaderFromFilename(path string) (audio.Reader, error) {
	f.ensureBuiltins()

	s, err := f.openFile(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	r, _, err := f.findReader(s, quote(path), zap.String("path", path))
	return r, err
}

// CreateReaderFromMemory returns an unopened reader for data.
func (f *Factory) CreateReaderFromMemory(data []byte) (audio.Reader, error) {
	f.ensureBuiltins()

	r, _, err := f.findReader(stream.NewMemory(data), "from memory", zap.Int("size", len(data)))
	return r, err
}

// CreateReaderFromStream returns an unopened reader for s. s is rewound
// before every probe.
func (f *Factory) CreateReaderFromStream(s audio.InputStream) (audio.Reader, error) {
	f.ensureBuiltins()

	r, _, err := f.findReader(s, "from stream")
	return r, err
}

// CreateWriterFromFilename returns an unopened writer chosen by the file
// name of path.
func (f *Factory) CreateWriterFromFilename(path string) (audio.Writer, error) {
	f.ensureBuiltins()

	w, err := f.registry.FindWriter(path)
	if err != nil {
		f.log().Warn("Failed to open sound file "+quote(path)+" (format not supported)",
			zap.String("path", path))
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

func (f *Factory) openFile(path string) (*stream.File, error) {
	s, err := stream.OpenFile(path)
	if err != nil {
		f.log().Warn("Failed to open sound file "+quote(path)+" (couldn't open stream)",
			zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrOpenStream, err)
	}
	return s, nil
}

// findReader probes s and logs a failure under the name source.
func (f *Factory) findReader(s audio.InputStream, source string, fields ...zap.Field) (audio.Reader, string, error) {
	e, err := f.registry.ProbeReader(s)
	if errors.Is(err, audio.ErrFormatNotSupported) {
		f.log().Warn("Failed to open sound file "+source+" (format not supported)", fields...)
		return nil, "", err
	}
	if err != nil {
		f.log().Warn("Failed to open sound file "+source+" (couldn't rewind stream)",
			append(fields, zap.Error(err))...)
		return nil, "", fmt.Errorf("%w: %w", ErrCannotRestart, err)
	}

	f.log().Debug("sound file format detected", append(fields, zap.String("format", e.Name))...)
	return e.New(), e.Name, nil
}

func quote(path string) string {
	return strconv.Quote(path)
}
