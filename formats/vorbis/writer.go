// SPDX-License-Identifier: EPL-2.0

package vorbis

import "github.com/ik5/sndfile/audio"

// WriterEntry registers the Ogg writer. It claims .ogg and .oga file names so
// they are not handed to another writer, but encoding is not available.
var WriterEntry = audio.WriterEntry{
	Name:  "ogg",
	Check: CheckFilename,
	New:   func() audio.Writer { return NewWriter() },
}

// CheckFilename reports whether filename has an .ogg or .oga extension.
func CheckFilename(filename string) bool {
	return audio.HasExtension(filename, ".ogg", ".oga")
}

// Writer is the Ogg Vorbis writer. Open always fails with
// ErrEncodingUnsupported since there is no Vorbis encoder to drive.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Open(_ string, sampleRate, channelCount int) error {
	if err := audio.ValidateFormat(sampleRate, channelCount); err != nil {
		return err
	}
	return ErrEncodingUnsupported
}

func (w *Writer) Write([]int16) error { return audio.ErrNotOpen }
func (w *Writer) Close() error        { return nil }

var _ audio.Writer = (*Writer)(nil)
