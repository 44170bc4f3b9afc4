// SPDX-License-Identifier: EPL-2.0

package audio

// Sample is any PCM sample representation the engine accepts.
type Sample interface {
	~uint8 | ~int16 | ~float32
}

// UpmixMono repeats each mono sample once per output channel, so
// [s0, s1] with channels=2 becomes [s0, s0, s1, s1]. The frame count and
// therefore the sample rate are unchanged. channels <= 1 returns mono as is.
func UpmixMono[S Sample](mono []S, channels int) []S {
	if channels <= 1 {
		return mono
	}
	out := make([]S, len(mono)*channels)
	for i, s := range mono {
		frame := out[i*channels : (i+1)*channels]
		for c := range frame {
			frame[c] = s
		}
	}
	return out
}

// WholeFrames reports whether n interleaved samples split evenly into
// frames of the given channel count.
func WholeFrames(n, channels int) bool {
	return channels > 0 && n%channels == 0
}
