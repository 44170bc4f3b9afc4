// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audswitch/formats"
	"github.com/ik5/audswitch/utils"
)

func (s *Soft) SetBufferData8U(id BufferID, samples []uint8, channels, sampleRate int) bool {
	data := make([]float32, len(samples))
	for i, v := range samples {
		data[i] = utils.Uint8ToFloat32(v)
	}
	return s.storeBuffer(id, FormatU8, data, channels, sampleRate)
}

func (s *Soft) SetBufferData16S(id BufferID, samples []int16, channels, sampleRate int) bool {
	data := make([]float32, len(samples))
	for i, v := range samples {
		data[i] = utils.Int16ToFloat32(v)
	}
	return s.storeBuffer(id, FormatS16, data, channels, sampleRate)
}

func (s *Soft) SetBufferData32F(id BufferID, samples []float32, channels, sampleRate int) bool {
	data := make([]float32, len(samples))
	copy(data, samples)
	return s.storeBuffer(id, FormatF32, data, channels, sampleRate)
}

// storeBuffer replaces the payload of buffer id. Trailing samples that do
// not fill a whole frame are dropped.
func (s *Soft) storeBuffer(id BufferID, format SampleFormat, data []float32, channels, sampleRate int) bool {
	if channels < 1 || channels > MaxChannels || sampleRate <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buf(id)
	if !ok {
		return false
	}

	data = data[:len(data)-len(data)%channels]
	b.format = format
	b.pcm = &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: format.BitDepth(),
	}

	// Sources playing the old payload restart on the new one.
	for _, src := range s.sources {
		if src.buffer == id {
			src.cursor = 0
			if len(data) == 0 {
				src.state = stateStopped
			}
		}
	}
	return true
}

func (s *Soft) BufferInfo(id BufferID) (BufferInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buf(id)
	if !ok || b.pcm == nil {
		return BufferInfo{}, false
	}
	return BufferInfo{
		Format:     b.format,
		Channels:   b.pcm.Format.NumChannels,
		SampleRate: b.pcm.Format.SampleRate,
		Frames:     b.frames(),
	}, true
}

// ExportBuffer writes the payload of buffer id to w as a 16-bit PCM WAV.
func (s *Soft) ExportBuffer(id BufferID, w io.WriteSeeker) error {
	s.mu.Lock()
	b, ok := s.buf(id)
	var pcm *goaudio.Float32Buffer
	if ok && b.pcm != nil {
		pcm = &goaudio.Float32Buffer{
			Format:         &goaudio.Format{NumChannels: b.pcm.Format.NumChannels, SampleRate: b.pcm.Format.SampleRate},
			Data:           append([]float32(nil), b.pcm.Data...),
			SourceBitDepth: b.pcm.SourceBitDepth,
		}
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBuffer, id)
	}
	if pcm == nil {
		return fmt.Errorf("%w: %d", ErrEmptyBuffer, id)
	}
	return formats.WriteWAV(w, pcm, 16)
}
