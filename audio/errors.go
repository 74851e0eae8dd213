// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrFormatNotSupported = errors.New("format not supported")
	ErrNotOpen            = errors.New("sound file not open")
	ErrInvalidFormat      = errors.New("invalid sample rate or channel count")
	ErrNegativeOffset     = errors.New("negative stream offset")
	ErrInvalidWhence      = errors.New("invalid whence")
)
