// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src and returns every interleaved sample it produced.
// bufferSize is the per-read chunk; a non-positive value falls back to
// src.BufSize(), then 4096.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = 4096
	}
	if ch := src.Channels(); ch > 1 && bufferSize%ch != 0 {
		bufferSize += ch - bufferSize%ch
	}

	out := make([]float32, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			// A source that makes no progress without an error is treated as finished.
			return out, nil
		}
	}
}
