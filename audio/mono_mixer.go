// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds a multi-channel Source into one channel by averaging
// each frame. Mono sources pass straight through.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mixer source: %w", err)
	}
	return nil
}

// ReadSamples writes up to len(dst) mono samples.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		// never shrink, keep headroom for the next read
		m.tmp = make([]float32, max(need, 8192))
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	switch channels {
	case 2:
		for f := range frames {
			i := f << 1
			dst[f] = (m.tmp[i] + m.tmp[i+1]) * 0.5
		}
	default:
		inv := 1 / float32(channels)
		for f := range frames {
			var sum float32
			for _, v := range m.tmp[f*channels : (f+1)*channels] {
				sum += v
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}
