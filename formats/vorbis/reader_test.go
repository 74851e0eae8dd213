// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/sndfile/audio"
	"github.com/ik5/sndfile/internal/audiotest"
	"github.com/ik5/sndfile/stream"
)

// mockDecoder simulates oggvorbis.Reader for testing.
type mockDecoder struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	readErr    error
	positions  []int64
}

func (m *mockDecoder) SampleRate() int { return m.sampleRate }
func (m *mockDecoder) Channels() int   { return m.channels }
func (m *mockDecoder) Length() int64   { return int64(len(m.samples) / m.channels) }

func (m *mockDecoder) SetPosition(frame int64) error {
	m.positions = append(m.positions, frame)
	m.offset = int(frame) * m.channels
	return nil
}

func (m *mockDecoder) Read(p []float32) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}
	n := copy(p, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func openMock(t *testing.T, m *mockDecoder) *Reader {
	t.Helper()

	r := NewReader()
	if _, err := r.init(m); err != nil {
		t.Fatalf("init() error = %v", err)
	}
	return r
}

func TestReader_OpenInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not Ogg Vorbis data")},
		{"wav", audiotest.WAV16(8000, 1, audiotest.Ramp(8, 0))},
		// A lone identification page is not a complete stream.
		{"unchecked page", audiotest.OggFirstPage(audiotest.VorbisIDHeader(44100, 2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewReader()
			if _, err := r.Open(stream.NewMemory(tt.data)); !errors.Is(err, ErrNotVorbis) {
				t.Errorf("Open() error = %v, want %v", err, ErrNotVorbis)
			}
			if _, err := r.Read(make([]int16, 4)); !errors.Is(err, audio.ErrNotOpen) {
				t.Errorf("Read() after failed Open error = %v, want %v", err, audio.ErrNotOpen)
			}
		})
	}
}

func TestReader_Info(t *testing.T) {
	t.Parallel()

	r := NewReader()
	info, err := r.init(&mockDecoder{sampleRate: 44100, channels: 2, samples: make([]float32, 200)})
	if err != nil {
		t.Fatalf("init() error = %v", err)
	}
	want := audio.Info{SampleCount: 200, ChannelCount: 2, SampleRate: 44100}
	if info != want {
		t.Errorf("init() = %+v, want %+v", info, want)
	}
}

func TestReader_NoChannels(t *testing.T) {
	t.Parallel()

	// Length divides by channels, give the mock one and report zero separately.
	_, err := NewReader().init(&zeroChannels{mockDecoder{channels: 1}})
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("init() error = %v, want %v", err, ErrUnsupportedChannels)
	}
}

type zeroChannels struct{ mockDecoder }

func (zeroChannels) Channels() int { return 0 }

func TestReader_Read(t *testing.T) {
	t.Parallel()

	r := openMock(t, &mockDecoder{
		sampleRate: 8000,
		channels:   2,
		samples:    []float32{0, 0.5, -0.5, 1, -1, 2, -2, 0.25},
	})

	got := readAll(t, r, 3)
	want := []int16{0, 16383, -16383, 32767, -32767, 32767, -32767, 8191}
	if !slices.Equal(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestReader_ReadSmallBuffer(t *testing.T) {
	t.Parallel()

	r := openMock(t, &mockDecoder{
		sampleRate: 8000,
		channels:   2,
		samples:    []float32{0.5, -0.5, 0.25, -0.25},
	})

	var got []int16
	dst := make([]int16, 1)
	for {
		n, err := r.Read(dst)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if n != 1 {
			t.Fatalf("Read() n = %d, want 1", n)
		}
		got = append(got, dst[0])
	}

	if want := []int16{16383, -16383, 8191, -8191}; !slices.Equal(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestReader_ReadEmptyBuffer(t *testing.T) {
	t.Parallel()

	r := openMock(t, &mockDecoder{sampleRate: 8000, channels: 1, samples: make([]float32, 10)})
	if n, err := r.Read(nil); n != 0 || err != nil {
		t.Errorf("Read(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestReader_ReadError(t *testing.T) {
	t.Parallel()

	r := openMock(t, &mockDecoder{
		sampleRate: 8000,
		channels:   1,
		samples:    make([]float32, 10),
		readErr:    io.ErrUnexpectedEOF,
	})

	if _, err := r.Read(make([]int16, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Read() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestReader_Seek(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 20)
	for i := range samples {
		samples[i] = float32(i) / 100
	}

	tests := []struct {
		name      string
		offset    uint64
		wantFrame int64
	}{
		{"start", 0, 0},
		{"frame", 6, 3},
		{"rounds down", 7, 3},
		{"end", 20, 10},
		{"past end", 500, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := &mockDecoder{sampleRate: 8000, channels: 2, samples: samples}
			r := openMock(t, m)

			// leave decoded samples behind that Seek must discard
			if _, err := r.Read(make([]int16, 1)); err != nil {
				t.Fatalf("Read() error = %v", err)
			}

			if err := r.Seek(tt.offset); err != nil {
				t.Fatalf("Seek(%d) error = %v", tt.offset, err)
			}
			if !slices.Equal(m.positions, []int64{tt.wantFrame}) {
				t.Errorf("SetPosition calls = %v, want [%d]", m.positions, tt.wantFrame)
			}

			got := readAll(t, r, 4)
			if want := len(samples) - 2*int(tt.wantFrame); len(got) != want {
				t.Errorf("read %d samples after Seek, want %d", len(got), want)
			}
		})
	}
}

func TestReader_NotOpen(t *testing.T) {
	t.Parallel()

	r := NewReader()
	if _, err := r.Read(make([]int16, 2)); !errors.Is(err, audio.ErrNotOpen) {
		t.Errorf("Read() error = %v, want %v", err, audio.ErrNotOpen)
	}
	if err := r.Seek(0); !errors.Is(err, audio.ErrNotOpen) {
		t.Errorf("Seek() error = %v, want %v", err, audio.ErrNotOpen)
	}
}

func BenchmarkReader_Read(b *testing.B) {
	samples := make([]float32, 44100*2)
	for i := range samples {
		samples[i] = float32(i%200)/100 - 1
	}
	dst := make([]int16, 4096)

	for b.Loop() {
		r := NewReader()
		r.init(&mockDecoder{sampleRate: 44100, channels: 2, samples: samples})
		for {
			if _, err := r.Read(dst); err != nil {
				break
			}
		}
	}
}

func readAll(t *testing.T, r audio.Reader, chunk int) []int16 {
	t.Helper()

	var out []int16
	buf := make([]int16, chunk)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}
}
