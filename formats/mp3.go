// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audswitch/audio"
)

// mp3Channels is fixed: go-mp3 always emits interleaved stereo.
const mp3Channels = 2

// mp3Reader is the part of gomp3.Decoder the source uses.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type mp3Source struct {
	dec  mp3Reader
	buf  []byte
	tail []byte // odd byte left over from the previous read
}

func (s *mp3Source) SampleRate() int { return s.dec.SampleRate() }
func (s *mp3Source) Channels() int   { return mp3Channels }
func (s *mp3Source) Close() error    { return nil }
func (s *mp3Source) BufSize() int    { return cap(s.buf) / 2 }

func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	off := copy(buf, s.tail)
	s.tail = s.tail[:0]

	n, err := s.dec.Read(buf[off:])
	n += off
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	samples := n / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(buf[2*i:]))) / 32768
	}
	if n%2 == 1 {
		s.tail = append(s.tail, buf[n-1])
	}

	if errors.Is(err, io.EOF) {
		return samples, io.EOF
	}
	return samples, nil
}

// MP3Decoder decodes MPEG-1/2 Layer III streams.
type MP3Decoder struct{}

func (MP3Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}
	return &mp3Source{
		dec: dec,
		buf: make([]byte, 8192),
	}, nil
}
