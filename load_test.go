// SPDX-License-Identifier: EPL-2.0

package audswitch

import (
	"testing"

	"github.com/ik5/audswitch/audio"
	"github.com/ik5/audswitch/internal/audiotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuffer_S16(t *testing.T) {
	t.Parallel()

	a, f := newTestAdapter(t)
	buf := a.CreateBuffer()

	src := audiotest.NewConstantSource(48000, 2, 100, 0.5)
	require.NoError(t, LoadBuffer(a, buf, src, LoadOptions{}))
	assert.False(t, src.Closed(), "LoadBuffer leaves the source open")

	up := f.Last().Uploads()[0]
	assert.Equal(t, FormatS16, up.Format)
	assert.Equal(t, 2, up.Channels)
	assert.Equal(t, 48000, up.SampleRate)
	require.Len(t, up.S16, 200)
	assert.Equal(t, int16(16383), up.S16[0])

	info, ok := a.BufferInfo(buf)
	require.True(t, ok)
	assert.Equal(t, 100, info.Frames)
}

func TestLoadBuffer_Formats(t *testing.T) {
	t.Parallel()

	a, f := newTestAdapter(t)

	buf := a.CreateBuffer()
	require.NoError(t, LoadBuffer(a, buf, audiotest.NewConstantSource(8000, 2, 4, 0), LoadOptions{Format: FormatU8}))
	buf2 := a.CreateBuffer()
	require.NoError(t, LoadBuffer(a, buf2, audiotest.NewConstantSource(8000, 2, 4, 0.25), LoadOptions{Format: FormatF32}))

	ups := f.Last().Uploads()
	require.Len(t, ups, 2)
	assert.Equal(t, []uint8{128, 128, 128, 128, 128, 128, 128, 128}, ups[0].U8)
	assert.Equal(t, FormatF32, ups[1].Format)
	assert.InDeltaSlice(t, []float32{0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25}, ups[1].F32, 1e-6)
}

func TestLoadBuffer_MonoIsUpmixed(t *testing.T) {
	t.Parallel()

	a, f := newTestAdapter(t)
	buf := a.CreateBuffer()

	src := audiotest.NewSequenceSource(16000, []float32{0.5, -0.5})
	require.NoError(t, LoadBuffer(a, buf, src, LoadOptions{Format: FormatF32}))

	up := f.Last().Uploads()[0]
	assert.Equal(t, 2, up.Channels)
	assert.Equal(t, []float32{0.5, 0.5, -0.5, -0.5}, up.F32)
}

func TestLoadBuffer_ResampleAndFold(t *testing.T) {
	t.Parallel()

	a, f := newTestAdapter(t)
	a.cfg.UpmixMono = false
	buf := a.CreateBuffer()

	src := audiotest.NewConstantSource(16000, 2, 1600, 0.5)
	require.NoError(t, LoadBuffer(a, buf, src, LoadOptions{SampleRate: 8000, Mono: true, Format: FormatF32}))

	up := f.Last().Uploads()[0]
	assert.Equal(t, 1, up.Channels)
	assert.Equal(t, 8000, up.SampleRate)
	assert.Len(t, up.F32, 800)
	// Away from the edges a constant signal stays constant.
	assert.InDelta(t, 0.5, up.F32[len(up.F32)/2], 1e-3)
}

func TestLoadBuffer_Errors(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 10, 0)
	assert.ErrorIs(t, LoadBuffer(NewAdapter(), 1, src, LoadOptions{}), ErrNotInitialized)
	assert.ErrorIs(t, LoadBuffer(Nop{}, 1, src, LoadOptions{}), ErrNotInitialized)

	a, _ := newTestAdapter(t)
	assert.ErrorIs(t, LoadBuffer(a, a.CreateBuffer(), src, LoadOptions{Format: 42}), ErrUnsupportedFormat)
	assert.ErrorIs(t, LoadBuffer(a, 31337, src, LoadOptions{}), ErrUploadFailed)

	bad := audiotest.NewConstantSource(0, 1, 10, 0)
	assert.ErrorIs(t, LoadBuffer(a, a.CreateBuffer(), bad, LoadOptions{}), audio.ErrInvalidLayout)
	assert.ErrorIs(t, LoadBuffer(a, a.CreateBuffer(), bad, LoadOptions{SampleRate: 8000}), audio.ErrInvalidLayout)
}
