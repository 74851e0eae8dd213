// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides the Ogg Vorbis reader and the Ogg writer entry.
//
// Decoding uses github.com/jfreymuth/oggvorbis. Vorbis is a lossy format and
// decodes to floating point; samples are converted to 16 bits with clamping.
//
// # Detection
//
// Check inspects the first Ogg page only: it must open a logical stream and
// its first packet must be a Vorbis identification header. Opus, FLAC or
// Speex in Ogg have a different first packet and are rejected, so they can be
// handled by another reader.
//
// # Reading
//
//	r := vorbis.NewReader()
//	info, err := r.Open(s)
//	if err != nil {
//	    // handle error
//	}
//	buf := make([]int16, 4096)
//	n, err := r.Read(buf)
//
// Seek is exact to the frame when the stream is seekable, which every
// audio.InputStream is.
//
// # Writing
//
// There is no Vorbis encoder available, so WriterEntry claims .ogg and .oga
// names and Writer.Open returns ErrEncodingUnsupported for valid arguments.
package vorbis
