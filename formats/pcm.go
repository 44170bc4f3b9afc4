// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// pcmReader is the part of the go-audio wav and aiff decoders a source
// needs; tests substitute their own.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// intSource converts integer PCM from a go-audio decoder to float32.
type intSource struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	// WAV stores 8-bit samples unsigned, AIFF signed.
	unsigned8 bool
	intBuf    *goaudio.IntBuffer
	done      bool
}

func supportedBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}

func (s *intSource) SampleRate() int { return s.sampleRate }
func (s *intSource) Channels() int   { return s.channels }
func (s *intSource) Close() error    { return nil }

func (s *intSource) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *intSource) scale(v int) float32 {
	if s.bitDepth == 8 && s.unsigned8 {
		return float32(v-128) / 128
	}
	return float32(v) / float32(int64(1)<<(s.bitDepth-1))
}

func (s *intSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
			SourceBitDepth: s.bitDepth,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decoding pcm: %w", err)
	}
	if n == 0 {
		// go-audio reports the end of the data chunk as an empty read.
		s.done = true
		return 0, io.EOF
	}
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = s.scale(v)
	}
	return n, nil
}

// readSeeker returns r itself when it can seek, otherwise buffers it in
// memory; the go-audio decoders need to seek between chunks.
func readSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
