// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"

	"github.com/ik5/sndfile/audio"
)

const (
	pageHeaderSize = 27
	flagFirstPage  = 0x02
)

var (
	capturePattern = []byte("OggS")
	vorbisIDPrefix = []byte("\x01vorbis")
)

// Check reports whether s starts with an Ogg page opening a logical stream
// whose first packet is a Vorbis identification header. Ogg streams carrying
// other codecs (Opus, FLAC, Speex) are rejected.
func Check(s audio.InputStream) bool {
	var hdr [pageHeaderSize]byte
	if _, err := io.ReadFull(s, hdr[:]); err != nil {
		return false
	}
	if !bytes.Equal(hdr[0:4], capturePattern) || hdr[4] != 0 || hdr[5]&flagFirstPage == 0 {
		return false
	}

	lacing := make([]byte, hdr[26])
	if _, err := io.ReadFull(s, lacing); err != nil {
		return false
	}

	// The first packet ends at the first lacing value below 255.
	packetSize := 0
	for _, l := range lacing {
		packetSize += int(l)
		if l < 255 {
			break
		}
	}
	if packetSize < len(vorbisIDPrefix) {
		return false
	}

	prefix := make([]byte, len(vorbisIDPrefix))
	if _, err := io.ReadFull(s, prefix); err != nil {
		return false
	}
	return bytes.Equal(prefix, vorbisIDPrefix)
}
