// SPDX-License-Identifier: EPL-2.0

package audswitch

import "github.com/ik5/audswitch/engine"

type (
	SourceID        = engine.SourceID
	BufferID        = engine.BufferID
	SampleFormat    = engine.SampleFormat
	Transform       = engine.Transform
	Vec3            = engine.Vec3
	Mat3            = engine.Mat3
	DirectivityType = engine.DirectivityType
	BufferInfo      = engine.BufferInfo
)

const (
	InvalidSource = engine.InvalidSource
	InvalidBuffer = engine.InvalidBuffer

	FormatU8  = engine.FormatU8
	FormatS16 = engine.FormatS16
	FormatF32 = engine.FormatF32

	Cardioid            = engine.Cardioid
	SuperCardioid       = engine.SuperCardioid
	HalfRectifiedDipole = engine.HalfRectifiedDipole
	Dipole              = engine.Dipole
)

// Switcher is the engine-independent audio surface applications program
// against. Adapter is the production implementation and Nop a stand-in
// that fails every call.
//
// Nothing is reported through panics or errors after Init: handles are 0
// on failure, setters that can be rejected return false, and getters
// return ok=false when no value is available, which is distinct from a
// zero value.
type Switcher interface {
	Init(cfg Config) error
	Finish()
	Close() error
	IsInitialized() bool

	CreateSource() SourceID
	DestroySource(src SourceID)
	CreateBuffer() BufferID
	DestroyBuffer(buf BufferID)

	PlaySource(src SourceID)
	PauseSource(src SourceID)
	StopSource(src SourceID)
	IsSourcePlaying(src SourceID) (bool, bool)
	IsSourcePaused(src SourceID) (bool, bool)

	SetSourceVolume(src SourceID, vol float32)
	SourceVolume(src SourceID) (float32, bool)
	// SetSourcePitch sets the playback rate multiplier. Values <= 0 are
	// ignored and the previous pitch stays in effect.
	SetSourcePitch(src SourceID, pitch float32)
	SourcePitch(src SourceID) (float32, bool)
	SetSourceLooping(src SourceID, loop bool)
	SourceLooping(src SourceID) (bool, bool)
	// SetSourcePanning sets the stereo position in [-1,1]; nil restores
	// the engine default.
	SetSourcePanning(src SourceID, pan *float32)
	SourcePanning(src SourceID) (float32, bool)
	SetSourceStandardParams(src SourceID)

	SetBufferData8U(buf BufferID, samples []uint8, channels, sampleRate int) bool
	SetBufferData16S(buf BufferID, samples []int16, channels, sampleRate int) bool
	SetBufferData32F(buf BufferID, samples []float32, channels, sampleRate int) bool
	BufferInfo(buf BufferID) (BufferInfo, bool)

	AttachBufferToSource(src SourceID, buf BufferID)
	DetachBufferFromSource(src SourceID)
	SourceBuffer(src SourceID) (BufferID, bool)

	// Init3DScene enables the per-channel 3D state below. Output channel c
	// is rendered from source channel c heard at listener channel c;
	// channels never set follow channel 0.
	Init3DScene()
	EnableSource3DAudio(src SourceID, enable bool) bool
	IsSource3DAudioEnabled(src SourceID) (bool, bool)
	SetSource3DStateChannel(src SourceID, channel int, t Transform) bool
	Source3DStateChannel(src SourceID, channel int) (Transform, bool)
	SetListener3DStateChannel(channel int, t Transform) bool
	Listener3DStateChannel(channel int) (Transform, bool)
	SetSourceSpeedOfSound(src SourceID, speed float32) bool
	SourceSpeedOfSound(src SourceID) (float32, bool)

	SetSourceAttenuationMinDistance(src SourceID, d float32) bool
	SourceAttenuationMinDistance(src SourceID) (float32, bool)
	SetSourceAttenuationMaxDistance(src SourceID, d float32) bool
	SourceAttenuationMaxDistance(src SourceID) (float32, bool)
	SetSourceAttenuationConstantFalloff(src SourceID, k float32) bool
	SourceAttenuationConstantFalloff(src SourceID) (float32, bool)
	SetSourceAttenuationLinearFalloff(src SourceID, k float32) bool
	SourceAttenuationLinearFalloff(src SourceID) (float32, bool)
	SetSourceAttenuationQuadraticFalloff(src SourceID, k float32) bool
	SourceAttenuationQuadraticFalloff(src SourceID) (float32, bool)

	SetSourceDirectivityAlpha(src SourceID, alpha float32) bool
	SourceDirectivityAlpha(src SourceID) (float32, bool)
	SetSourceDirectivitySharpness(src SourceID, sharpness float32) bool
	SourceDirectivitySharpness(src SourceID) (float32, bool)
	// SetSourceDirectivityType takes the raw pattern index; values outside
	// [0,3] are rejected without reaching the engine.
	SetSourceDirectivityType(src SourceID, typ int) bool
	SourceDirectivityType(src SourceID) (DirectivityType, bool)
	SetSourceRearAttenuation(src SourceID, rear float32) bool
	SourceRearAttenuation(src SourceID) (float32, bool)
	SetListenerRearAttenuation(rear float32) bool
	ListenerRearAttenuation() (float32, bool)

	// CheckError returns the oldest asynchronous engine fault and clears
	// it, or "" when there is none.
	CheckError() string
}

var (
	_ Switcher = (*Adapter)(nil)
	_ Switcher = Nop{}
)
