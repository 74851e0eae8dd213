// SPDX-License-Identifier: EPL-2.0

package sndfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/sndfile"
	"github.com/ik5/sndfile/audio"
	"github.com/ik5/sndfile/formats/vorbis"
	"github.com/ik5/sndfile/internal/audiotest"
)

func TestOutputFile_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"tone.wav", "tone.flac"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := sndfile.NewFactory()
			path := filepath.Join(t.TempDir(), name)
			samples := audiotest.Sine(22050, 2, 6000, 440)

			out, err := f.CreateOutputFile(path, 22050, 2)
			if err != nil {
				t.Fatalf("CreateOutputFile() error = %v", err)
			}
			for chunk := range slices.Chunk(samples, 1000) {
				if err := out.Write(chunk); err != nil {
					t.Fatalf("Write() error = %v", err)
				}
			}
			if got := out.Written(); got != uint64(len(samples)) {
				t.Errorf("Written() = %d, want %d", got, len(samples))
			}
			if err := out.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}
			if err := out.Close(); err != nil {
				t.Errorf("second Close() error = %v", err)
			}
			if err := out.Write(samples); !errors.Is(err, audio.ErrNotOpen) {
				t.Errorf("Write() after Close error = %v, want ErrNotOpen", err)
			}

			got, info, err := f.Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			want := audio.Info{SampleCount: uint64(len(samples)), ChannelCount: 2, SampleRate: 22050}
			if info != want {
				t.Errorf("Info = %+v, want %+v", info, want)
			}
			if !slices.Equal(got, samples) {
				t.Error("decoded samples differ from the written ones")
			}
		})
	}
}

func TestOutputFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		rate     int
		channels int
		want     error
	}{
		{"unknown extension", filepath.Join(dir, "out.xyz"), 8000, 1, audio.ErrFormatNotSupported},
		{"ogg encoding", filepath.Join(dir, "out.ogg"), 8000, 1, vorbis.ErrEncodingUnsupported},
		{"zero rate", filepath.Join(dir, "rate.wav"), 0, 1, audio.ErrInvalidFormat},
		{"too many channels", filepath.Join(dir, "ch.flac"), 8000, 9, audio.ErrInvalidFormat},
		{"missing directory", filepath.Join(dir, "nope", "out.wav"), 8000, 1, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, logs := observed()
			out, err := f.CreateOutputFile(tt.path, tt.rate, tt.channels)
			if out != nil {
				t.Errorf("CreateOutputFile() = %v, want nil", out)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("CreateOutputFile() error = %v, want %v", err, tt.want)
			}
			if logs.Len() != 1 {
				t.Errorf("logged %d entries, want 1", logs.Len())
			}
		})
	}
}
