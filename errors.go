// SPDX-License-Identifier: EPL-2.0

package sndfile

import "errors"

var (
	// ErrOpenStream reports that the file could not be opened as a stream.
	ErrOpenStream = errors.New("couldn't open stream")

	// ErrCannotRestart reports a stream that cannot be rewound for probing.
	ErrCannotRestart = errors.New("stream cannot be rewound")
)
