// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/binary"
	"math"
)

// renderStream adapts a Renderer to the io.Reader an oto player pulls from.
type renderStream struct {
	r        Renderer
	channels int
	buf      []float32
}

func (rs *renderStream) Read(p []byte) (int, error) {
	n := len(p) / 4
	n -= n % rs.channels
	if n == 0 {
		return 0, nil
	}
	if cap(rs.buf) < n {
		rs.buf = make([]float32, n)
	}
	samples := rs.buf[:n]
	rs.r.Render(samples)

	for i, v := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}
	return n * 4, nil
}
