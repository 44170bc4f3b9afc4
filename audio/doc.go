// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming sample pipeline that feeds buffer
// uploads.
//
// Everything is built on the Source interface: decoders produce one, and
// processors wrap one to produce another.
//
//	src, _ := formats.Open("clip.ogg")
//	res := audio.NewResampler(src, 48000)
//	mono := audio.NewMonoMixer(res)
//	samples, err := audio.ReadAll(mono, 4096)
//
// Samples are interleaved float32 values in [-1, 1].
//
// # Channel Layout
//
// MonoMixer folds any layout down to one channel by averaging. UpmixMono
// goes the other way on an in-memory slice: every mono sample is repeated
// once per output channel, which is what engines with a fixed output
// layout expect from a mono upload.
//
// # End of Stream
//
// ReadSamples returns io.EOF when no more data is available, possibly
// together with a final batch of samples. ReadAll hides this and returns
// a nil error on a clean end of stream.
package audio
