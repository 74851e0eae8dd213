// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{"ErrUnsupportedEncoding", ErrUnsupportedEncoding, "only integer PCM of 8, 16, 24 or 32 bits supported"},
		{"ErrMissingDataChunk", ErrMissingDataChunk, "missing WAV data chunk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.msg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.msg)
			}
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	allErrors := []error{
		ErrNotWavFile,
		ErrUnsupportedWavLayout,
		ErrUnsupportedEncoding,
		ErrMissingDataChunk,
	}

	for i, err := range allErrors {
		wrapped := errors.Join(err, errors.New("additional context"))
		if !errors.Is(wrapped, err) {
			t.Errorf("errors.Is(wrapped, %v) = false, want true", err)
		}
		for j, other := range allErrors {
			if i != j && errors.Is(err, other) {
				t.Errorf("errors.Is(%v, %v) = true, want false", err, other)
			}
		}
	}
}
