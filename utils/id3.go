// SPDX-License-Identifier: EPL-2.0

package utils

import "io"

const id3HeaderSize = 10

// SkipID3v2 moves s past a leading ID3v2 tag. Without a tag s is left where
// it was.
func SkipID3v2(s io.ReadSeeker) error {
	start, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	var hdr [id3HeaderSize]byte
	if _, err := io.ReadFull(s, hdr[:]); err != nil || string(hdr[:3]) != "ID3" {
		_, err := s.Seek(start, io.SeekStart)
		return err
	}

	// synchsafe integer, 7 bits per byte
	size := int64(hdr[6]&0x7F)<<21 | int64(hdr[7]&0x7F)<<14 |
		int64(hdr[8]&0x7F)<<7 | int64(hdr[9]&0x7F)
	if hdr[5]&0x10 != 0 {
		size += id3HeaderSize // footer
	}

	_, err = s.Seek(size, io.SeekCurrent)
	return err
}
