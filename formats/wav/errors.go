// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedEncoding  = errors.New("only integer PCM of 8, 16, 24 or 32 bits supported")
	ErrMissingDataChunk     = errors.New("missing WAV data chunk")
)
