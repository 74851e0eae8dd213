// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	allErrors := map[string]error{
		"ErrFormatNotSupported": ErrFormatNotSupported,
		"ErrNotOpen":            ErrNotOpen,
		"ErrInvalidFormat":      ErrInvalidFormat,
		"ErrNegativeOffset":     ErrNegativeOffset,
		"ErrInvalidWhence":      ErrInvalidWhence,
	}

	messages := make(map[string]string)
	for name, err := range allErrors {
		if err == nil {
			t.Fatalf("%s is nil", name)
		}
		if other, found := messages[err.Error()]; found {
			t.Errorf("%s has same message as %s: %q", name, other, err.Error())
		}
		messages[err.Error()] = name
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("probing song.xyz: %w", ErrFormatNotSupported)
	if !errors.Is(wrapped, ErrFormatNotSupported) {
		t.Error("errors.Is(wrapped, ErrFormatNotSupported) = false, want true")
	}
	if errors.Is(wrapped, ErrNotOpen) {
		t.Error("errors.Is(wrapped, ErrNotOpen) = true, want false")
	}
}
