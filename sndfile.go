// SPDX-License-Identifier: EPL-2.0

package sndfile

import "github.com/ik5/sndfile/audio"

// RegisterReader adds e to the default factory.
func RegisterReader(e audio.ReaderEntry) { Default().RegisterReader(e) }

// RegisterWriter adds e to the default factory.
func RegisterWriter(e audio.WriterEntry) { Default().RegisterWriter(e) }

// CreateReaderFromFilename probes path with the default factory.
func CreateReaderFromFilename(path string) (audio.Reader, error) {
	return Default().CreateReaderFromFilename(path)
}

// CreateReaderFromMemory probes data with the default factory.
func CreateReaderFromMemory(data []byte) (audio.Reader, error) {
	return Default().CreateReaderFromMemory(data)
}

// CreateReaderFromStream probes s with the default factory.
func CreateReaderFromStream(s audio.InputStream) (audio.Reader, error) {
	return Default().CreateReaderFromStream(s)
}

// CreateWriterFromFilename picks a writer for path with the default factory.
func CreateWriterFromFilename(path string) (audio.Writer, error) {
	return Default().CreateWriterFromFilename(path)
}

func OpenInputFile(path string) (*InputFile, error) { return Default().OpenInputFile(path) }

func OpenInputMemory(data []byte) (*InputFile, error) { return Default().OpenInputMemory(data) }

func OpenInputStream(s audio.InputStream) (*InputFile, error) {
	return Default().OpenInputStream(s)
}

func CreateOutputFile(path string, sampleRate, channelCount int) (*OutputFile, error) {
	return Default().CreateOutputFile(path, sampleRate, channelCount)
}

// Load decodes the file at path with the default factory.
func Load(path string) ([]int16, audio.Info, error) { return Default().Load(path) }
