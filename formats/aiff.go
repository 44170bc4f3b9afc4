// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audswitch/audio"
)

// AIFFDecoder decodes AIFF files with integer PCM payloads.
type AIFFDecoder struct{}

func (AIFFDecoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bits := int(dec.BitDepth)
	if !supportedBitDepth(bits) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrNotAiffFile
	}

	return &intSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bits,
	}, nil
}
