// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/sndfile/audio"
)

var (
	ErrEmptyPath   = errors.New("empty file path")
	ErrIsDirectory = errors.New("is a directory")
)

// File is an InputStream reading from an OS file.
type File struct {
	f    *os.File
	size int64
}

// OpenFile opens path for reading. Directories are rejected.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w", err)
	}
	if st.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	return &File{f: f, size: st.Size()}, nil
}

func (s *File) Read(p []byte) (int, error) {
	n, err := s.f.Read(p)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, err
}

// Seek clamps positions past the end of the file to the end.
func (s *File) Seek(offset int64, whence int) (int64, error) {
	cur, err := s.Tell()
	if err != nil {
		return 0, err
	}

	pos, err := resolve(offset, whence, cur, s.size)
	if err != nil {
		return cur, err
	}

	pos, err = s.f.Seek(pos, io.SeekStart)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	return pos, nil
}

func (s *File) Tell() (int64, error) {
	pos, err := s.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	return pos, nil
}

func (s *File) Size() (int64, error) { return s.size, nil }

// Name returns the path the stream was opened with.
func (s *File) Name() string { return s.f.Name() }

func (s *File) Close() error {
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

var _ audio.InputStream = (*File)(nil)
