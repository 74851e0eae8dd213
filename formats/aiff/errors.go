// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile           = errors.New("not an AIFF or AIFF-C file")
	ErrOnlyPCM16bitSupported = errors.New("AIFF reader only decodes 16-bit samples")
	// ErrNoChannels reports a COMM chunk that declares no channels.
	ErrNoChannels = errors.New("AIFF file declares no channels")
	// ErrNotSeekable reports a reader built without a stream to rewind.
	ErrNotSeekable = errors.New("AIFF reader has no stream to rewind")
)
