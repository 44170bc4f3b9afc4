// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic sample sources for tests. It
// satisfies audio.Source without importing it so the audio package can
// use it from its own tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of one sample for a frame index and channel.
type Waveform func(frame, channel int) float32

// MockSource generates a fixed number of frames from a Waveform.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	generated  int
	waveform   Waveform
	closed     bool
}

// NewMockSource creates a source of frames frames (per channel) at
// sampleRate.
func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewConstantSource repeats value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewSineSource generates a sine wave of frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewSequenceSource plays back mono samples verbatim, one frame each.
func NewSequenceSource(sampleRate int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, 1, len(samples), func(frame, _ int) float32 {
		return samples[frame]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range n {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += n

	if m.generated >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}
