// SPDX-License-Identifier: EPL-2.0

// Package flac provides the FLAC reader and writer, built on
// github.com/mewkiz/flac.
//
// The reader accepts any bit depth from 4 to 32 bits and delivers 16-bit
// interleaved samples. Files may carry an ID3v2 tag before the FLAC
// signature. Seek uses the stream's seek table when present and builds one
// on first use otherwise.
//
// The writer stores 16-bit samples losslessly in blocks of 4096 frames, using
// verbatim or constant subframes. Close rewrites the StreamInfo block with
// the final sample count and MD5 signature:
//
//	w := flac.NewWriter()
//	if err := w.Open("out.flac", 44100, 2); err != nil {
//	    // handle error
//	}
//	w.Write(samples)
//	w.Close()
//
// ReaderEntry and WriterEntry register the codec with an audio.Registry.
package flac
