// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/sndfile/audio"
)

// WriterEntry registers the WAV writer.
var WriterEntry = audio.WriterEntry{
	Name:  "wav",
	Check: CheckFilename,
	New:   func() audio.Writer { return NewWriter() },
}

// CheckFilename reports whether filename has a .wav extension.
func CheckFilename(filename string) bool {
	return audio.HasExtension(filename, ".wav")
}

// Writer encodes 16-bit PCM WAV files.
type Writer struct {
	f   *os.File
	enc *wav.Encoder
	buf *goaudio.IntBuffer
	// samples of an incomplete frame carried to the next Write
	pending []int16
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Open(filename string, sampleRate, channelCount int) error {
	if err := audio.ValidateFormat(sampleRate, channelCount); err != nil {
		return err
	}
	if w.enc != nil {
		w.Close()
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	w.f = f
	w.enc = wav.NewEncoder(f, sampleRate, 16, channelCount, formatPCM)
	w.buf = &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channelCount,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: 16,
	}

	// An empty write emits the headers, so a file closed without samples is
	// still a valid WAV.
	if err := w.enc.Write(w.buf); err != nil {
		w.abort()
		return fmt.Errorf("writing WAV header: %w", err)
	}

	return nil
}

func (w *Writer) Write(samples []int16) error {
	if w.enc == nil {
		return audio.ErrNotOpen
	}
	if len(samples) == 0 {
		return nil
	}

	// The encoder only takes whole frames.
	data := append(w.pending, samples...)
	whole := len(data) / w.buf.Format.NumChannels * w.buf.Format.NumChannels

	if cap(w.buf.Data) < whole {
		w.buf.Data = make([]int, whole)
	}
	w.buf.Data = w.buf.Data[:whole]
	for i, s := range data[:whole] {
		w.buf.Data[i] = int(s)
	}
	w.pending = append([]int16(nil), data[whole:]...)

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Close patches the chunk sizes and closes the file.
func (w *Writer) Close() error {
	if w.enc == nil {
		return nil
	}

	err := w.enc.Close()
	err = errors.Join(err, w.f.Close())
	w.enc, w.f, w.buf, w.pending = nil, nil, nil, nil
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (w *Writer) abort() {
	w.f.Close()
	os.Remove(w.f.Name())
	w.enc, w.f, w.buf, w.pending = nil, nil, nil, nil
}

var _ audio.Writer = (*Writer)(nil)
