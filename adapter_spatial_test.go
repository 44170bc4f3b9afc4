// SPDX-License-Identifier: EPL-2.0

package audswitch

import (
	"testing"

	"github.com/ik5/audswitch/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_3DRequiresScene(t *testing.T) {
	t.Parallel()

	a, _ := newTestAdapter(t)
	src := a.CreateSource()

	assert.False(t, a.SetSource3DStateChannel(src, 0, engine.IdentityTransform()))
	_, ok := a.Listener3DStateChannel(0)
	assert.False(t, ok)

	a.Init3DScene()
	assert.True(t, a.SetSource3DStateChannel(src, 0, engine.IdentityTransform()))
}

func TestAdapter_TransformRoundTrip(t *testing.T) {
	t.Parallel()

	a, _ := newTestAdapter(t)
	a.Init3DScene()
	src := a.CreateSource()

	tr := Transform{
		Rotation: Mat3{0, 0, -1, 0, 1, 0, 1, 0, 0},
		Position: Vec3{1, 2, 3},
		Velocity: Vec3{-4, 0, 0.5},
	}

	require.True(t, a.SetSource3DStateChannel(src, 1, tr))
	got, ok := a.Source3DStateChannel(src, 1)
	require.True(t, ok)
	assert.Equal(t, tr, got)

	// Untouched channels report the identity transform.
	got, ok = a.Source3DStateChannel(src, 0)
	require.True(t, ok)
	assert.Equal(t, engine.IdentityTransform(), got)

	require.True(t, a.SetListener3DStateChannel(0, tr))
	got, ok = a.Listener3DStateChannel(0)
	require.True(t, ok)
	assert.Equal(t, tr, got)

	assert.False(t, a.SetSource3DStateChannel(src, engine.MaxChannels, tr))
	assert.False(t, a.SetListener3DStateChannel(-1, tr))
}

func TestAdapter_Enable3D(t *testing.T) {
	t.Parallel()

	a, _ := newTestAdapter(t)
	src := a.CreateSource()

	enabled, ok := a.IsSource3DAudioEnabled(src)
	require.True(t, ok)
	assert.False(t, enabled)

	require.True(t, a.EnableSource3DAudio(src, true))
	enabled, _ = a.IsSource3DAudioEnabled(src)
	assert.True(t, enabled)

	assert.False(t, a.EnableSource3DAudio(777, true))
}

func TestAdapter_ParameterRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  func(*Adapter, SourceID, float32) bool
		get  func(*Adapter, SourceID) (float32, bool)
		def  float32
		val  float32
	}{
		{"speed of sound", (*Adapter).SetSourceSpeedOfSound, (*Adapter).SourceSpeedOfSound, 343, 1500},
		{"min distance", (*Adapter).SetSourceAttenuationMinDistance, (*Adapter).SourceAttenuationMinDistance, 1, 2.5},
		{"max distance", (*Adapter).SetSourceAttenuationMaxDistance, (*Adapter).SourceAttenuationMaxDistance, 1000, 40},
		{"constant falloff", (*Adapter).SetSourceAttenuationConstantFalloff, (*Adapter).SourceAttenuationConstantFalloff, 1, 0.5},
		{"linear falloff", (*Adapter).SetSourceAttenuationLinearFalloff, (*Adapter).SourceAttenuationLinearFalloff, 0, 0.2},
		{"quadratic falloff", (*Adapter).SetSourceAttenuationQuadraticFalloff, (*Adapter).SourceAttenuationQuadraticFalloff, 0, 0.03},
		{"directivity alpha", (*Adapter).SetSourceDirectivityAlpha, (*Adapter).SourceDirectivityAlpha, 0, 0.8},
		{"directivity sharpness", (*Adapter).SetSourceDirectivitySharpness, (*Adapter).SourceDirectivitySharpness, 1, 4},
		{"rear attenuation", (*Adapter).SetSourceRearAttenuation, (*Adapter).SourceRearAttenuation, 1, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, _ := newTestAdapter(t)
			src := a.CreateSource()

			got, ok := tt.get(a, src)
			require.True(t, ok)
			assert.Equal(t, tt.def, got, "default")

			require.True(t, tt.set(a, src, tt.val))
			got, ok = tt.get(a, src)
			require.True(t, ok)
			assert.Equal(t, tt.val, got)

			assert.False(t, tt.set(a, 4040, tt.val), "unknown source")
			_, ok = tt.get(a, 4040)
			assert.False(t, ok)
		})
	}
}

func TestAdapter_ParameterRanges(t *testing.T) {
	t.Parallel()

	a, _ := newTestAdapter(t)
	src := a.CreateSource()

	assert.False(t, a.SetSourceDirectivityAlpha(src, 1.5))
	assert.False(t, a.SetSourceDirectivityAlpha(src, -0.1))
	assert.False(t, a.SetSourceDirectivitySharpness(src, 0.5))
	assert.False(t, a.SetSourceDirectivitySharpness(src, 9))
	assert.False(t, a.SetSourceRearAttenuation(src, 2))
	assert.False(t, a.SetSourceSpeedOfSound(src, 0))
	assert.False(t, a.SetSourceAttenuationMinDistance(src, -1))

	alpha, _ := a.SourceDirectivityAlpha(src)
	assert.Zero(t, alpha, "rejected values leave the old one")
}

func TestAdapter_DirectivityType(t *testing.T) {
	t.Parallel()

	a, _ := newTestAdapter(t)
	src := a.CreateSource()

	got, ok := a.SourceDirectivityType(src)
	require.True(t, ok)
	assert.Equal(t, Cardioid, got)

	for _, v := range []int{3, 0, 2, 1} {
		require.True(t, a.SetSourceDirectivityType(src, v))
		got, ok = a.SourceDirectivityType(src)
		require.True(t, ok)
		assert.Equal(t, DirectivityType(v), got)
	}

	for _, v := range []int{-1, 4, 100} {
		assert.False(t, a.SetSourceDirectivityType(src, v), "type %d", v)
		got, _ = a.SourceDirectivityType(src)
		assert.Equal(t, SuperCardioid, got, "prior value kept after %d", v)
	}
}

func TestAdapter_DirectivityTypeFilteredBeforeEngine(t *testing.T) {
	t.Parallel()

	a, f := newTestAdapter(t)
	src := a.CreateSource()
	eng := f.Last()

	for _, v := range []int{-1, 4, 100} {
		assert.False(t, a.SetSourceDirectivityType(src, v), "type %d", v)
	}
	assert.Empty(t, eng.DirectivityTypes(), "out of range types must not reach the engine")

	require.True(t, a.SetSourceDirectivityType(src, 2))
	assert.Equal(t, []DirectivityType{HalfRectifiedDipole}, eng.DirectivityTypes())
}

func TestAdapter_ListenerRear(t *testing.T) {
	t.Parallel()

	a, _ := newTestAdapter(t)

	got, ok := a.ListenerRearAttenuation()
	require.True(t, ok)
	assert.Equal(t, float32(1), got)

	require.True(t, a.SetListenerRearAttenuation(0.25))
	got, _ = a.ListenerRearAttenuation()
	assert.Equal(t, float32(0.25), got)

	assert.False(t, a.SetListenerRearAttenuation(1.1))
}

func TestParseDirectivityType(t *testing.T) {
	t.Parallel()

	for v, want := range map[int]DirectivityType{0: Cardioid, 1: SuperCardioid, 2: HalfRectifiedDipole, 3: Dipole} {
		got, err := ParseDirectivityType(v)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseDirectivityType(4)
	assert.ErrorIs(t, err, ErrInvalidDirectivityType)
	_, err = ParseDirectivityType(-1)
	assert.ErrorIs(t, err, ErrInvalidDirectivityType)
}
