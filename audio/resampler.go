// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audswitch/utils"
)

// Resampler streams src at a new sample rate using cubic interpolation.
// The channel count is preserved. When downsampling, a one-pole low-pass
// filter softens aliasing.
type Resampler struct {
	src      Source
	srcRate  int
	dstRate  int
	channels int

	// window holds four consecutive frames; output is interpolated
	// between window[1] and window[2]
	window [4][]float32
	filled [4]bool
	primed bool
	eof    bool

	// pos/dstRate is the fractional position between window[1] and
	// window[2]; each output frame advances it by srcRate
	pos    int
	srcBuf []float32

	lowPass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		srcRate:  src.SampleRate(),
		dstRate:  dstRate,
		channels: channels,
		srcBuf:   make([]float32, channels),
		lowPass:  src.SampleRate() > dstRate,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readFrame reads one source frame into dst, filtered when downsampling.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}
	n, err := r.src.ReadSamples(r.srcBuf)
	if errors.Is(err, io.EOF) {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("resampler source: %w", err)
	}
	if n < r.channels {
		return false, nil
	}

	copy(dst, r.srcBuf)
	if r.lowPass {
		for c, v := range dst {
			dst[c] = r.alpha*v + (1-r.alpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}
	return true, nil
}

// prime fills the window. The first frame is duplicated into the t-1 slot
// and missing tail frames repeat the last one read.
func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	if r.lowPass {
		// start the filter settled on the first frame
		copy(r.state, r.srcBuf)
		copy(r.window[1], r.srcBuf)
	}
	copy(r.window[0], r.window[1])
	r.filled[0], r.filled[1] = true, true

	for i := 2; i < 4; i++ {
		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
		r.filled[i] = ok
	}
	r.primed = true
	return nil
}

// advance shifts the window by one source frame, padding the tail with
// the last real frame once the source is exhausted.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.filled[:], r.filled[1:])
	r.window[3] = first

	ok, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}
	r.filled[3] = ok
	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of the channel count. A source of n frames
// yields ceil(n*dstRate/srcRate) frames; positions past the last source
// frame hold its value.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= r.dstRate {
			r.pos -= r.dstRate
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
			if !r.filled[1] {
				return written * r.channels, io.EOF
			}
		}

		out := dst[written*r.channels : (written+1)*r.channels]
		x := float32(r.pos) / float32(r.dstRate)
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}
		written++
		r.pos += r.srcRate
	}

	return written * r.channels, nil
}
