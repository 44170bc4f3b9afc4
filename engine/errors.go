// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid engine config")
	ErrUnknownBuffer = errors.New("unknown buffer")
	ErrEmptyBuffer   = errors.New("buffer has no data")
	ErrDeviceFormat  = errors.New("output device already open with a different format")
	ErrNoAudio       = errors.New("audio output not compiled in (built with -tags noaudio)")
)
