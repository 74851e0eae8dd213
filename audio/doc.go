// SPDX-License-Identifier: EPL-2.0

// Package audio defines the contracts shared by every sound file codec and
// the ordered registry that dispatches between them.
//
// # Streams
//
// Codecs never touch files directly. They decode from an InputStream, a
// seekable byte source with Tell and Size queries. The stream package
// provides file and memory implementations.
//
// # Readers and Writers
//
// A Reader decodes interleaved 16-bit PCM:
//
//	info, err := r.Open(s)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	buf := make([]int16, 4096)
//	for {
//	    n, err := r.Read(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// Info.SampleCount counts samples over all channels, the same unit Seek
// takes. A Writer encodes samples into a named file and finalizes it on
// Close.
//
// # Registry
//
// Codecs are registered as entries pairing a probe (Check) with a
// constructor (New). The Registry keeps them in registration order:
//
//	reg := audio.NewRegistry()
//	reg.RegisterReader(flac.ReaderEntry)
//	reg.RegisterReader(wav.ReaderEntry)
//
//	r, err := reg.FindReader(s)
//
// FindReader rewinds the stream before every probe and constructs the
// reader of the first entry that accepts it, so registration order is
// priority order. When nothing matches, ErrFormatNotSupported is returned.
// Writers are matched by filename instead:
//
//	w, err := reg.FindWriter("out.flac")
//
// The registry is safe for concurrent use. Readers and writers are not; each
// instance belongs to one decode or encode session.
package audio
