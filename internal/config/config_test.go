// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sndfile.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SNDFILE_CONFIG", "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	if cfg.Log.Level != want.Log.Level || cfg.Log.Format != want.Log.Format {
		t.Errorf("Log = %+v, want %+v", cfg.Log, want.Log)
	}
	if !slices.Equal(cfg.Log.Outputs, want.Log.Outputs) {
		t.Errorf("Log.Outputs = %v, want %v", cfg.Log.Outputs, want.Log.Outputs)
	}
	if !slices.Equal(cfg.Codecs.Extra, ExtraCodecs) {
		t.Errorf("Codecs.Extra = %v, want %v", cfg.Codecs.Extra, ExtraCodecs)
	}
	if cfg.Convert.ChunkSamples != 8192 {
		t.Errorf("Convert.ChunkSamples = %d, want 8192", cfg.Convert.ChunkSamples)
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
log:
  level: DEBUG
  format: json
  outputs: [stdout, /tmp/sndfile.log]
  rotation:
    enable: true
    max_size_mb: 5
codecs:
  extra: [aiff]
convert:
  chunk_samples: 1024
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
	if want := []string{"stdout", "/tmp/sndfile.log"}; !slices.Equal(cfg.Log.Outputs, want) {
		t.Errorf("Log.Outputs = %v, want %v", cfg.Log.Outputs, want)
	}
	if !cfg.Log.Rotation.Enable || cfg.Log.Rotation.MaxSizeMB != 5 {
		t.Errorf("Log.Rotation = %+v", cfg.Log.Rotation)
	}
	if cfg.Log.Rotation.MaxBackups != 3 {
		t.Errorf("Log.Rotation.MaxBackups = %d, want default 3", cfg.Log.Rotation.MaxBackups)
	}
	if want := []string{"aiff"}; !slices.Equal(cfg.Codecs.Extra, want) {
		t.Errorf("Codecs.Extra = %v, want %v", cfg.Codecs.Extra, want)
	}
	if cfg.Convert.ChunkSamples != 1024 {
		t.Errorf("Convert.ChunkSamples = %d, want 1024", cfg.Convert.ChunkSamples)
	}
}

func TestLoad_Env(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")
	t.Setenv("SNDFILE_CONFIG", path)
	t.Setenv("SNDFILE_LOG_LEVEL", "error")
	t.Setenv("SNDFILE_CONVERT_CHUNK_SAMPLES", "256")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
	if cfg.Convert.ChunkSamples != 256 {
		t.Errorf("Convert.ChunkSamples = %d, want 256", cfg.Convert.ChunkSamples)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"level", "log:\n  level: loud\n", true},
		{"format", "log:\n  format: xml\n", true},
		{"codec", "codecs:\n  extra: [wma]\n", true},
		{"chunk", "convert:\n  chunk_samples: 0\n", true},
		{"yaml", "log: [unterminated\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load() error = nil, want an error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err = %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() error = nil, want an error for a missing explicit file")
	}
}
