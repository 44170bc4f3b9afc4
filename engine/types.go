// SPDX-License-Identifier: EPL-2.0

package engine

import "fmt"

// MaxChannels bounds both the output channel count and the number of
// spatial channels a source or the listener can carry.
const MaxChannels = 8

// SourceID is an opaque, engine-assigned voice handle. Zero is never valid.
type SourceID uint32

// BufferID is an opaque, engine-assigned sample container handle. Zero is never valid.
type BufferID uint32

const (
	InvalidSource SourceID = 0
	InvalidBuffer BufferID = 0
)

// SampleFormat identifies the layout of an uploaded sample payload.
type SampleFormat int

const (
	FormatU8 SampleFormat = iota + 1
	FormatS16
	FormatF32
)

func (f SampleFormat) String() string {
	switch f {
	case FormatU8:
		return "u8"
	case FormatS16:
		return "s16"
	case FormatF32:
		return "f32"
	default:
		return fmt.Sprintf("SampleFormat(%d)", int(f))
	}
}

// BitDepth of one sample in the format, 0 for unknown formats.
func (f SampleFormat) BitDepth() int {
	switch f {
	case FormatU8:
		return 8
	case FormatS16:
		return 16
	case FormatF32:
		return 32
	default:
		return 0
	}
}

// Vec3 is a world-space vector (x, y, z).
type Vec3 [3]float32

// Mat3 is a 3x3 rotation matrix stored row-major.
type Mat3 [9]float32

// IdentityMat3 returns the rotation that leaves axes untouched.
func IdentityMat3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Row returns row i of the matrix.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Transform is the spatial state of one source or listener channel.
type Transform struct {
	Rotation Mat3
	Position Vec3
	// Velocity feeds the Doppler shift; it is never integrated into Position.
	Velocity Vec3
}

// IdentityTransform is the state of a channel that was never positioned.
func IdentityTransform() Transform {
	return Transform{Rotation: IdentityMat3()}
}

// DirectivityType is the polar emission pattern of a directional source.
type DirectivityType int

const (
	Cardioid DirectivityType = iota
	SuperCardioid
	HalfRectifiedDipole
	Dipole
)

// Valid reports whether d is one of the four known patterns.
func (d DirectivityType) Valid() bool {
	return d >= Cardioid && d <= Dipole
}

func (d DirectivityType) String() string {
	switch d {
	case Cardioid:
		return "cardioid"
	case SuperCardioid:
		return "super-cardioid"
	case HalfRectifiedDipole:
		return "half-rectified-dipole"
	case Dipole:
		return "dipole"
	default:
		return fmt.Sprintf("DirectivityType(%d)", int(d))
	}
}

// Config is what the engine needs to start.
type Config struct {
	SampleRate int
	Channels   int
	// AudioEnabled opens an output device; headless and test runs leave it off.
	AudioEnabled bool
}

// Validate checks the config against what the engine can run with.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.Channels < 1 || c.Channels > MaxChannels {
		return fmt.Errorf("%w: channels %d (want 1..%d)", ErrInvalidConfig, c.Channels, MaxChannels)
	}
	return nil
}

// BufferInfo describes the payload uploaded to a buffer.
type BufferInfo struct {
	Format     SampleFormat
	Channels   int
	SampleRate int
	Frames     int
}
