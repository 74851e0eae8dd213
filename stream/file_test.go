// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestOpenFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want error
	}{
		{"empty path", "", ErrEmptyPath},
		{"missing", filepath.Join(dir, "missing.wav"), fs.ErrNotExist},
		{"directory", dir, ErrIsDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := OpenFile(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("OpenFile(%q) error = %v, want %v", tt.path, err, tt.want)
			}
			if s != nil {
				t.Errorf("OpenFile(%q) = %v, want nil", tt.path, s)
			}
		})
	}
}

func TestFile_ReadSeekTell(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, []byte("0123456789"))
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer s.Close()

	size, err := s.Size()
	if err != nil || size != 10 {
		t.Fatalf("Size() = %d, %v, want 10, nil", size, err)
	}

	if _, err := s.Seek(3, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(s, buf); err != nil {
		t.Fatalf("ReadFull() error = %v", err)
	}
	if string(buf) != "3456" {
		t.Errorf("read %q, want %q", buf, "3456")
	}

	pos, err := s.Tell()
	if err != nil || pos != 7 {
		t.Errorf("Tell() = %d, %v, want 7, nil", pos, err)
	}

	if s.Name() != path {
		t.Errorf("Name() = %q, want %q", s.Name(), path)
	}
}

func TestFile_SeekClamps(t *testing.T) {
	t.Parallel()

	s, err := OpenFile(writeTemp(t, make([]byte, 10)))
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer s.Close()

	pos, err := s.Seek(100, io.SeekStart)
	if err != nil || pos != 10 {
		t.Errorf("Seek(100) = %d, %v, want 10, nil", pos, err)
	}

	if _, err := s.Seek(-1, io.SeekStart); err == nil {
		t.Error("Seek(-1) error = nil, want error")
	}
	if pos, _ := s.Tell(); pos != 10 {
		t.Errorf("Tell() after failed seek = %d, want 10", pos)
	}

	n, err := s.Read(make([]byte, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("Read() at end = %d, %v, want 0, io.EOF", n, err)
	}
}
