// SPDX-License-Identifier: EPL-2.0

package audswitch

import "github.com/ik5/audswitch/audio"

// upmix widens mono uploads to the engine's output layout when enabled.
func upmix[S audio.Sample](a *Adapter, samples []S, channels int) ([]S, int) {
	if !a.cfg.UpmixMono || channels != 1 {
		return samples, channels
	}
	out := a.eng.Channels()
	if out <= 1 {
		return samples, channels
	}
	return audio.UpmixMono(samples, out), out
}

func (a *Adapter) SetBufferData8U(buf BufferID, samples []uint8, channels, sampleRate int) bool {
	if a.eng == nil {
		return false
	}
	samples, channels = upmix(a, samples, channels)
	return a.eng.SetBufferData8U(buf, samples, channels, sampleRate)
}

func (a *Adapter) SetBufferData16S(buf BufferID, samples []int16, channels, sampleRate int) bool {
	if a.eng == nil {
		return false
	}
	samples, channels = upmix(a, samples, channels)
	return a.eng.SetBufferData16S(buf, samples, channels, sampleRate)
}

func (a *Adapter) SetBufferData32F(buf BufferID, samples []float32, channels, sampleRate int) bool {
	if a.eng == nil {
		return false
	}
	samples, channels = upmix(a, samples, channels)
	return a.eng.SetBufferData32F(buf, samples, channels, sampleRate)
}

func (a *Adapter) BufferInfo(buf BufferID) (BufferInfo, bool) {
	if a.eng == nil {
		return BufferInfo{}, false
	}
	return a.eng.BufferInfo(buf)
}
