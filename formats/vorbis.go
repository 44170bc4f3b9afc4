// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audswitch/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source uses.
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read returns the number of interleaved values decoded, always a
	// multiple of Channels.
	Read([]float32) (int, error)
}

type vorbisSource struct {
	dec oggReader
}

func (s *vorbisSource) SampleRate() int { return s.dec.SampleRate() }
func (s *vorbisSource) Channels() int   { return s.dec.Channels() }
func (s *vorbisSource) Close() error    { return nil }
func (s *vorbisSource) BufSize() int    { return 4096 }

func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.dec.Channels()
	if whole == 0 {
		return 0, nil
	}
	n, err := s.dec.Read(dst[:whole])
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	return n, err
}

// VorbisDecoder decodes Ogg Vorbis streams.
type VorbisDecoder struct{}

func (VorbisDecoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening vorbis stream: %w", err)
	}
	return &vorbisSource{dec: dec}, nil
}
