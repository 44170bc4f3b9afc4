// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playConstant attaches a mono buffer of frames samples of v and plays it.
func playConstant(t *testing.T, s *Soft, v float32, frames int) SourceID {
	t.Helper()

	data := make([]float32, frames)
	for i := range data {
		data[i] = v
	}
	buf := s.CreateBuffer()
	require.True(t, s.SetBufferData32F(buf, data, 1, 48000))
	src := s.CreateSource()
	s.AttachBufferToSource(src, buf)
	s.PlaySource(src)
	return src
}

func TestRender_Silence(t *testing.T) {
	t.Parallel()

	_, dev := withNullDevice(t, 2)
	assert.Equal(t, make([]float32, 8), dev.Pull(4))
}

func TestRender_MonoToStereo(t *testing.T) {
	t.Parallel()

	s, dev := withNullDevice(t, 2)
	src := playConstant(t, s, 0.5, 2)

	out := dev.Pull(4)
	assert.Equal(t, []float32{0.5, 0.5, 0.5, 0.5, 0, 0, 0, 0}, out)

	playing, _ := s.IsSourcePlaying(src)
	assert.False(t, playing, "source stops at the end of its buffer")
}

func TestRender_Looping(t *testing.T) {
	t.Parallel()

	s, dev := withNullDevice(t, 1)
	src := playConstant(t, s, 0.25, 3)
	s.SetSourceLooping(src, true)

	out := dev.Pull(7)
	for i, v := range out {
		assert.Equal(t, float32(0.25), v, "sample %d", i)
	}
	playing, _ := s.IsSourcePlaying(src)
	assert.True(t, playing)
}

func TestRender_VolumeAndPan(t *testing.T) {
	t.Parallel()

	s, dev := withNullDevice(t, 2)
	src := playConstant(t, s, 1, 8)
	s.SetSourceVolume(src, 0.5)
	s.SetSourcePanning(src, -1)

	out := dev.Pull(1)
	assert.InDelta(t, 0.5, out[0], 1e-6)
	assert.InDelta(t, 0, out[1], 1e-6)

	s.ResetSourcePanning(src)
	out = dev.Pull(1)
	assert.InDelta(t, 0.5, out[0], 1e-6)
	assert.InDelta(t, 0.5, out[1], 1e-6)
}

func TestRender_Pitch(t *testing.T) {
	t.Parallel()

	s, dev := withNullDevice(t, 1)
	buf := s.CreateBuffer()
	require.True(t, s.SetBufferData32F(buf, []float32{0.1, 0.2, 0.3, 0.4}, 1, 48000))
	src := s.CreateSource()
	s.AttachBufferToSource(src, buf)
	s.SetSourcePitch(src, 2)
	s.PlaySource(src)

	assert.InDeltaSlice(t, []float32{0.1, 0.3, 0, 0}, dev.Pull(4), 1e-6)
}

func TestRender_PausedKeepsPosition(t *testing.T) {
	t.Parallel()

	s, dev := withNullDevice(t, 1)
	buf := s.CreateBuffer()
	require.True(t, s.SetBufferData32F(buf, []float32{0.1, 0.2, 0.3, 0.4}, 1, 48000))
	src := s.CreateSource()
	s.AttachBufferToSource(src, buf)
	s.PlaySource(src)

	assert.InDeltaSlice(t, []float32{0.1, 0.2}, dev.Pull(2), 1e-6)
	s.PauseSource(src)
	assert.Equal(t, []float32{0, 0}, dev.Pull(2))
	s.PlaySource(src)
	assert.InDeltaSlice(t, []float32{0.3, 0.4}, dev.Pull(2), 1e-6)
}

func TestRender_Clipping(t *testing.T) {
	t.Parallel()

	s, dev := withNullDevice(t, 1)
	playConstant(t, s, 0.75, 4)
	playConstant(t, s, 0.75, 4)

	for _, v := range dev.Pull(2) {
		assert.Equal(t, float32(1), v)
	}
}

func TestRender_DistanceGain(t *testing.T) {
	t.Parallel()

	s, dev := withNullDevice(t, 1)
	s.Init3DScene()
	src := playConstant(t, s, 1, 8)
	require.True(t, s.EnableSource3DAudio(src, true))
	require.True(t, s.SetSourceAttenuationLinearFalloff(src, 1))

	tr := IdentityTransform()
	tr.Position = Vec3{0, 0, -2}
	require.True(t, s.SetSource3DStateChannel(src, 0, tr))

	out := dev.Pull(1)
	assert.InDelta(t, 1.0/3.0, out[0], 1e-5)

	// Disabled sources ignore their spatial state.
	require.True(t, s.EnableSource3DAudio(src, false))
	out = dev.Pull(1)
	assert.InDelta(t, 1, out[0], 1e-6)
}

func TestRender_ListenerChannelPerOutput(t *testing.T) {
	t.Parallel()

	s, dev := withNullDevice(t, 2)
	s.Init3DScene()
	src := playConstant(t, s, 1, 8)
	require.True(t, s.EnableSource3DAudio(src, true))
	require.True(t, s.SetSourceAttenuationLinearFalloff(src, 1))

	tr := IdentityTransform()
	tr.Position = Vec3{0, 0, -2}
	require.True(t, s.SetSource3DStateChannel(src, 0, tr))

	// Unset channels follow channel 0.
	out := dev.Pull(1)
	assert.InDelta(t, 1.0/3.0, out[0], 1e-5)
	assert.InDelta(t, 1.0/3.0, out[1], 1e-5)

	ear := IdentityTransform()
	ear.Position = Vec3{0, 0, 1}
	require.True(t, s.SetListener3DStateChannel(1, ear))

	out = dev.Pull(1)
	assert.InDelta(t, 1.0/3.0, out[0], 1e-5)
	assert.InDelta(t, 0.25, out[1], 1e-5)
}

type rampRenderer struct{}

func (rampRenderer) Render(dst []float32) {
	for i := range dst {
		dst[i] = float32(i) / 10
	}
}

func TestRenderStream_Read(t *testing.T) {
	t.Parallel()

	rs := &renderStream{r: rampRenderer{}, channels: 2}

	// 19 bytes hold four whole samples but only two whole frames.
	p := make([]byte, 19)
	n, err := rs.Read(p)
	require.NoError(t, err)
	require.Equal(t, 16, n)

	for i := range 4 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
		assert.InDelta(t, float32(i)/10, got, 1e-7)
	}

	n, err = rs.Read(make([]byte, 7))
	assert.NoError(t, err)
	assert.Zero(t, n)
}
