// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV encodes pcm as an integer PCM WAV of 16, 24 or 32 bits.
// Samples outside [-1, 1] are clipped.
func WriteWAV(w io.WriteSeeker, pcm *goaudio.Float32Buffer, bitDepth int) error {
	if pcm == nil || pcm.Format == nil || len(pcm.Data) == 0 {
		return ErrEmptyBuffer
	}
	if bitDepth != 16 && bitDepth != 24 && bitDepth != 32 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	ints := &goaudio.IntBuffer{
		Format:         pcm.Format,
		Data:           make([]int, len(pcm.Data)),
		SourceBitDepth: bitDepth,
	}
	full := float64(int64(1)<<(bitDepth-1)) - 1
	for i, v := range pcm.Data {
		x := math.Max(-1, math.Min(1, float64(v)))
		ints.Data[i] = int(math.Round(x * full))
	}

	enc := wav.NewEncoder(w, pcm.Format.SampleRate, bitDepth, pcm.Format.NumChannels, wavFormatPCM)
	if err := enc.Write(ints); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}

// WriteWAV16 writes interleaved 16-bit samples as a WAV file.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	data := make([]float32, len(samples))
	for i, s := range samples {
		data[i] = float32(s) / math.MaxInt16
	}
	return WriteWAV(w, &goaudio.Float32Buffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}, 16)
}
