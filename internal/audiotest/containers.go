// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// OggFirstPage builds a beginning-of-stream Ogg page carrying packet in a
// single lacing run. The checksum is left zero, so only signature probes
// can use it; real decoders reject the page.
func OggFirstPage(packet []byte) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("OggS")
	buf.WriteByte(0)    // version
	buf.WriteByte(0x02) // beginning of stream
	binary.Write(buf, binary.LittleEndian, uint64(0))     // granule position
	binary.Write(buf, binary.LittleEndian, uint32(0x1234)) // serial
	binary.Write(buf, binary.LittleEndian, uint32(0))     // sequence
	binary.Write(buf, binary.LittleEndian, uint32(0))     // checksum

	var lacing []byte
	n := len(packet)
	for n >= 255 {
		lacing = append(lacing, 255)
		n -= 255
	}
	lacing = append(lacing, byte(n))
	buf.WriteByte(byte(len(lacing)))
	buf.Write(lacing)
	buf.Write(packet)
	return buf.Bytes()
}

// VorbisIDHeader builds a Vorbis identification header packet.
func VorbisIDHeader(sampleRate, channels int) []byte {
	buf := new(bytes.Buffer)
	buf.WriteByte(0x01)
	buf.WriteString("vorbis")
	binary.Write(buf, binary.LittleEndian, uint32(0)) // version
	buf.WriteByte(byte(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, int32(0))      // bitrate max
	binary.Write(buf, binary.LittleEndian, int32(128000)) // bitrate nominal
	binary.Write(buf, binary.LittleEndian, int32(0))      // bitrate min
	buf.WriteByte(0xB8)                                   // block sizes 256/2048
	buf.WriteByte(0x01)                                   // framing
	return buf.Bytes()
}

// AIFF builds a 16-bit AIFF file holding samples.
func AIFF(sampleRate, channels int, samples []int16) []byte {
	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, uint16(channels))
	binary.Write(comm, binary.BigEndian, uint32(len(samples)/channels))
	binary.Write(comm, binary.BigEndian, uint16(16))
	comm.Write(extended(uint64(sampleRate)))

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	ssnd.Write(PCM16BE(samples))

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	binary.Write(body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

// extended encodes a positive integer as an 80-bit IEEE 754 extended float.
func extended(v uint64) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}
	shift := bits.LeadingZeros64(v)
	binary.BigEndian.PutUint16(out[0:2], uint16(16383+63-shift))
	binary.BigEndian.PutUint64(out[2:10], v<<shift)
	return out
}

// MP3FrameHeader is an MPEG-1 Layer III, 128 kbit/s, 44.1 kHz, stereo frame
// header.
var MP3FrameHeader = []byte{0xFF, 0xFB, 0x90, 0x00}

// ID3v2Header builds an empty ID3v2.4 tag header announcing size bytes of tag
// data.
func ID3v2Header(size int) []byte {
	return []byte{
		'I', 'D', '3', 4, 0, 0,
		byte(size >> 21 & 0x7F), byte(size >> 14 & 0x7F),
		byte(size >> 7 & 0x7F), byte(size & 0x7F),
	}
}
