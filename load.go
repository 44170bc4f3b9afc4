// SPDX-License-Identifier: EPL-2.0

package audswitch

import (
	"fmt"

	"github.com/ik5/audswitch/audio"
	"github.com/ik5/audswitch/utils"
)

// LoadOptions shapes the data LoadBuffer uploads.
type LoadOptions struct {
	// Format selects the SetBufferData entry point; zero means FormatS16.
	Format SampleFormat
	// SampleRate resamples the source when positive and different from
	// the source rate.
	SampleRate int
	// Mono folds the source to a single channel before upload.
	Mono bool
	// BufferSize is the read chunk in samples; zero uses the source's
	// preferred size.
	BufferSize int
}

// LoadBuffer drains src, reshapes it according to opts and uploads the
// result into buf through sw. src is not closed.
//
//	src, err := formats.Open("step.wav")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	buf := sw.CreateBuffer()
//	err = audswitch.LoadBuffer(sw, buf, src, audswitch.LoadOptions{SampleRate: 48000})
func LoadBuffer(sw Switcher, buf BufferID, src audio.Source, opts LoadOptions) error {
	if !sw.IsInitialized() {
		return ErrNotInitialized
	}

	format := opts.Format
	if format == 0 {
		format = FormatS16
	}
	switch format {
	case FormatU8, FormatS16, FormatF32:
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	if src.Channels() < 1 || src.SampleRate() <= 0 {
		return fmt.Errorf("%w: %d channels at %d Hz", audio.ErrInvalidLayout, src.Channels(), src.SampleRate())
	}

	var stream audio.Source = src
	if opts.SampleRate > 0 && opts.SampleRate != src.SampleRate() {
		stream = audio.NewResampler(stream, opts.SampleRate)
	}
	if opts.Mono {
		stream = audio.NewMonoMixer(stream)
	}

	channels := stream.Channels()
	rate := stream.SampleRate()

	samples, err := audio.ReadAll(stream, opts.BufferSize)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}
	if !audio.WholeFrames(len(samples), channels) {
		return fmt.Errorf("%w: %d samples for %d channels", audio.ErrInvalidLayout, len(samples), channels)
	}

	var ok bool
	switch format {
	case FormatU8:
		data := make([]uint8, len(samples))
		for i, s := range samples {
			data[i] = utils.Float32ToUint8(s)
		}
		ok = sw.SetBufferData8U(buf, data, channels, rate)
	case FormatS16:
		data := make([]int16, len(samples))
		for i, s := range samples {
			data[i] = utils.Float32ToInt16(s)
		}
		ok = sw.SetBufferData16S(buf, data, channels, rate)
	case FormatF32:
		ok = sw.SetBufferData32F(buf, samples, channels, rate)
	}
	if !ok {
		return fmt.Errorf("%w: buffer %d", ErrUploadFailed, buf)
	}
	return nil
}
