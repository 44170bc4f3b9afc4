// SPDX-License-Identifier: EPL-2.0

package engine

import "math"

// Renderer produces interleaved float32 output frames.
type Renderer interface {
	// Render overwrites dst with the next len(dst) interleaved samples.
	Render(dst []float32)
}

// Render mixes every playing source into dst. dst is interleaved at the
// engine's channel count; a trailing partial frame is left silent.
func (s *Soft) Render(dst []float32) {
	clear(dst)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	outCh := s.cfg.Channels
	frames := len(dst) / outCh
	if frames == 0 {
		return
	}
	out := dst[:frames*outCh]

	for _, src := range s.sources {
		if src.state != statePlaying {
			continue
		}
		b, ok := s.buf(src.buffer)
		if !ok || b.frames() == 0 {
			src.state = stateStopped
			src.cursor = 0
			continue
		}
		s.mixSource(src, b, out)
	}

	for i, v := range out {
		out[i] = clamp32(v, -1, 1)
	}
}

func panGains(src *source, outCh int) (float32, float32) {
	if !src.panSet || outCh != 2 {
		return 1, 1
	}
	angle := float64(clamp32(src.pan, -1, 1)+1) * math.Pi / 4
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}

func (s *Soft) mixSource(src *source, b *buffer, out []float32) {
	outCh := s.cfg.Channels
	inCh := b.pcm.Format.NumChannels
	total := b.frames()
	data := b.pcm.Data

	gains, doppler := s.spatialize(src, outCh)
	left, right := panGains(src, outCh)
	step := float64(src.pitch*doppler) * float64(b.pcm.Format.SampleRate) / float64(s.cfg.SampleRate)

	for f := range len(out) / outCh {
		idx := int(src.cursor)
		if idx >= total {
			if !src.looping {
				src.state = stateStopped
				src.cursor = 0
				return
			}
			src.cursor = math.Mod(src.cursor, float64(total))
			idx = int(src.cursor)
		}

		frame := data[idx*inCh : idx*inCh+inCh]
		for c := range outCh {
			v := frame[c%inCh] * gains[c] * src.volume
			if outCh == 2 {
				if c == 0 {
					v *= left
				} else {
					v *= right
				}
			}
			out[f*outCh+c] += v
		}
		src.cursor += step
	}
}
