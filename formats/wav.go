// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/audswitch/audio"
)

const wavFormatPCM = 1

// WAVDecoder decodes RIFF/WAVE files with integer PCM payloads.
type WAVDecoder struct{}

func (WAVDecoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: wav format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}
	bits := int(dec.BitDepth)
	if !supportedBitDepth(bits) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}
	return &intSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   bits,
		unsigned8:  true,
	}, nil
}
