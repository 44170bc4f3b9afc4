// SPDX-License-Identifier: EPL-2.0

package formats

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrNotAiffFile         = errors.New("not an AIFF file")
	ErrUnsupportedEncoding = errors.New("only integer PCM is supported")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrUnknownExtension    = errors.New("no decoder for file extension")
	ErrEmptyBuffer         = errors.New("nothing to write")
)
