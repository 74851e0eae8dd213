// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides an MP3 reader built on github.com/hajimehoshi/go-mp3.
//
// The decoder handles MPEG-1, MPEG-2 and MPEG-2.5 Layer III and always
// produces stereo output; mono files are duplicated over both channels.
//
// MP3 is not registered by default. Add it to a factory explicitly:
//
//	f := sndfile.Default()
//	f.RegisterReader(mp3.ReaderEntry)
//
// Check looks for a Layer III frame header at the start of the data, after
// an optional ID3v2 tag. Files with other data before the first frame are
// not detected.
package mp3
