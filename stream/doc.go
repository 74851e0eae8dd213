// SPDX-License-Identifier: EPL-2.0

// Package stream provides the two audio.InputStream implementations codecs
// read from: File, backed by an OS file, and Memory, backed by a byte slice.
//
// Both keep the read position inside [0, Size]. Seeking past the end moves
// the position to the end; seeking before the start fails with
// audio.ErrNegativeOffset and leaves the position unchanged.
//
//	s, err := stream.OpenFile("music.flac")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	m := stream.NewMemory(data)
package stream
