// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// Chunk is a raw RIFF chunk inserted into a built WAV file.
type Chunk struct {
	ID   string
	Data []byte
}

// WAVLayout describes a WAV file to build.
type WAVLayout struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	// FormatTag defaults to 1 (PCM). Extensible writes tag 0xFFFE with a
	// PCM sub-format GUID.
	FormatTag  uint16
	Extensible bool
	// Before are written between the fmt and data chunks.
	Before []Chunk
	// Data is the raw content of the data chunk. NoData omits the chunk.
	Data   []byte
	NoData bool
}

// pcmSubFormat is KSDATAFORMAT_SUBTYPE_PCM.
var pcmSubFormat = []byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

// WAV builds a RIFF/WAVE file.
func WAV(layout WAVLayout) []byte {
	tag := layout.FormatTag
	if tag == 0 {
		tag = 1
	}
	if layout.Extensible {
		tag = 0xFFFE
	}

	blockAlign := layout.Channels * layout.BitsPerSample / 8
	fmtChunk := new(bytes.Buffer)
	binary.Write(fmtChunk, binary.LittleEndian, tag)
	binary.Write(fmtChunk, binary.LittleEndian, uint16(layout.Channels))
	binary.Write(fmtChunk, binary.LittleEndian, uint32(layout.SampleRate))
	binary.Write(fmtChunk, binary.LittleEndian, uint32(layout.SampleRate*blockAlign))
	binary.Write(fmtChunk, binary.LittleEndian, uint16(blockAlign))
	binary.Write(fmtChunk, binary.LittleEndian, uint16(layout.BitsPerSample))
	if layout.Extensible {
		binary.Write(fmtChunk, binary.LittleEndian, uint16(22)) // cbSize
		binary.Write(fmtChunk, binary.LittleEndian, uint16(layout.BitsPerSample))
		binary.Write(fmtChunk, binary.LittleEndian, uint32(0)) // channel mask
		fmtChunk.Write(pcmSubFormat)
	}

	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	writeChunk(body, "fmt ", fmtChunk.Bytes())
	for _, c := range layout.Before {
		writeChunk(body, c.ID, c.Data)
	}
	if !layout.NoData {
		writeChunk(body, "data", layout.Data)
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

// WAV16 builds a canonical 16-bit PCM WAV file holding samples.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	return WAV(WAVLayout{
		SampleRate:    sampleRate,
		Channels:      channels,
		BitsPerSample: 16,
		Data:          PCM16LE(samples),
	})
}

// writeChunk writes a chunk header and data, padding odd sizes to an even
// byte boundary.
func writeChunk(buf *bytes.Buffer, id string, data []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}
}
