// SPDX-License-Identifier: EPL-2.0

// Package wav provides the WAV reader and writer.
//
// # Supported Formats
//
// Reading:
//   - Integer PCM, 8 (unsigned), 16, 24 and 32 bits
//   - WAVE_FORMAT_EXTENSIBLE files whose sub-format is PCM
//   - Any channel count and sample rate
//   - Extra chunks (LIST, fact, cue, ...) before the data chunk are skipped
//
// Every depth is delivered as 16-bit samples; deeper samples lose their low
// bits. Writing always produces canonical 16-bit PCM.
//
// # Reading WAV Files
//
//	s, _ := stream.OpenFile("audio.wav")
//	defer s.Close()
//
//	if !wav.Check(s) {
//	    // not a WAV file
//	}
//	s.Seek(0, io.SeekStart)
//
//	r := wav.NewReader()
//	info, err := r.Open(s)
//	buf := make([]int16, 4096)
//	n, err := r.Read(buf)
//
// Check relies on github.com/go-audio/wav to validate the RIFF header and the
// fmt chunk; Open walks the chunk list itself so Seek can address samples
// directly.
//
// # Writing WAV Files
//
//	w := wav.NewWriter()
//	if err := w.Open("out.wav", 44100, 2); err != nil {
//	    // handle error
//	}
//	w.Write(samples)
//	w.Close()
//
// The writer uses the github.com/go-audio/wav encoder. Close patches the
// RIFF and data chunk sizes, so a writer that is never closed leaves a file
// with placeholder sizes.
//
// # Error Handling
//
//   - ErrNotWavFile: the RIFF/WAVE signature is missing
//   - ErrUnsupportedWavLayout: the chunk structure cannot be parsed
//   - ErrUnsupportedEncoding: floating point, compressed or odd bit depths
//   - ErrMissingDataChunk: the file ends before the data chunk
//
// ReaderEntry and WriterEntry register the codec with an audio.Registry.
package wav
