// SPDX-License-Identifier: EPL-2.0

// Package aiff provides an AIFF (Audio Interchange File Format) reader.
//
// This package uses github.com/go-audio/aiff to parse AIFF and AIFF-C files.
// Only 16-bit PCM is supported; other depths fail to open with
// ErrOnlyPCM16bitSupported.
//
// AIFF is not registered by default. Add it to a factory explicitly:
//
//	f := sndfile.Default()
//	f.RegisterReader(aiff.ReaderEntry)
//
// The go-audio decoder reads forward only, so Seek restarts decoding from
// the start of the file and skips to the target. Seeking is therefore linear
// in the target offset.
//
// # Error Handling
//
//   - ErrNotAiffFile: invalid or corrupted AIFF file
//   - ErrOnlyPCM16bitSupported: non-16-bit audio
//   - ErrNoChannels: a COMM chunk without channels
//   - ErrNotSeekable: Seek on a reader that has no stream
package aiff
