// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"

	"github.com/ik5/sndfile/audio"
)

// resolve turns a Seek request into an absolute offset in [0, size].
func resolve(offset int64, whence int, cur, size int64) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = cur + offset
	case io.SeekEnd:
		pos = size + offset
	default:
		return 0, audio.ErrInvalidWhence
	}

	if pos < 0 {
		return 0, audio.ErrNegativeOffset
	}

	return min(pos, size), nil
}
