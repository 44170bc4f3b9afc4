// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audswitch/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewConstantSource(8000, 1, 100, 0.5))
	if mixer.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}
	for i, v := range buf[:n] {
		if v != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{name: "stereo", channels: 2, want: 0.375},
		{name: "quad", channels: 4, want: 0.625},
		{name: "five channels", channels: 5, want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// channel c carries 0.25*(c+1)
			src := audiotest.NewMockSource(8000, tt.channels, 50, func(_, c int) float32 {
				return 0.25 * float32(c+1)
			})
			mixer := NewMonoMixer(src)

			buf := make([]float32, 8)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 8 {
				t.Fatalf("ReadSamples() n = %d, want 8", n)
			}
			for i, v := range buf[:n] {
				if math.Abs(float64(v-tt.want)) > 1e-6 {
					t.Errorf("buf[%d] = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewConstantSource(8000, 2, 5, 0.1))
	buf := make([]float32, 16)

	n, err := mixer.ReadSamples(buf)
	if n != 5 {
		t.Errorf("first read n = %d, want 5", n)
	}
	if !errors.Is(err, io.EOF) {
		t.Errorf("first read err = %v, want io.EOF", err)
	}

	n, err = mixer.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("second read = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewConstantSource(8000, 2, 5, 0.1))
	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_PreservesRateAndCloses(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(22050, 2, 5, 0)
	mixer := NewMonoMixer(src)

	if mixer.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", mixer.SampleRate())
	}
	if err := mixer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the wrapped source")
	}
}
