// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, FormatU8.BitDepth())
	assert.Equal(t, 16, FormatS16.BitDepth())
	assert.Equal(t, 32, FormatF32.BitDepth())
	assert.Zero(t, SampleFormat(0).BitDepth())
	assert.Equal(t, "s16", FormatS16.String())
	assert.Equal(t, "SampleFormat(9)", SampleFormat(9).String())
}

func TestDirectivityType_Valid(t *testing.T) {
	t.Parallel()

	for _, d := range []DirectivityType{Cardioid, SuperCardioid, HalfRectifiedDipole, Dipole} {
		assert.True(t, d.Valid(), d.String())
	}
	assert.False(t, DirectivityType(-1).Valid())
	assert.False(t, DirectivityType(4).Valid())
	assert.Equal(t, "DirectivityType(4)", DirectivityType(4).String())
}

func TestMat3_Row(t *testing.T) {
	t.Parallel()

	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, Vec3{1, 2, 3}, m.Row(0))
	assert.Equal(t, Vec3{7, 8, 9}, m.Row(2))
	assert.Equal(t, Vec3{0, 0, 1}, IdentityMat3().Row(2))
}

func TestVec3_Length(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5, Vec3{3, 4, 0}.Length(), 1e-6)
	assert.Zero(t, Vec3{}.Length())
}
