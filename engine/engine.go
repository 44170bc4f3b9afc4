// SPDX-License-Identifier: EPL-2.0

package engine

// Engine is the audio engine an adapter drives. Implementations own the
// actual resources, mixing and 3D math; callers only see handles and
// parameters.
//
// Setters that can be rejected return false. Getters use the comma-ok form:
// ok is false when the engine is stopped, the handle is unknown, or the
// value cannot be produced.
type Engine interface {
	// Startup brings the engine up with cfg. A non-nil error means the
	// engine is not usable and Shutdown need not be called.
	Startup(cfg Config) error
	// Shutdown releases every resource. It is safe to call more than once.
	Shutdown()
	// Channels is the output channel count, 0 while stopped.
	Channels() int
	// Err returns and clears the oldest fault raised outside of a call,
	// such as an output device failure.
	Err() error

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
	SetSourcePitch(src SourceID, pitch float32)
	SourcePitch(src SourceID) (float32, bool)
	SetSourceLooping(src SourceID, loop bool)
	SourceLooping(src SourceID) (bool, bool)
	SetSourcePanning(src SourceID, pan float32)
	ResetSourcePanning(src SourceID)
	SourcePanning(src SourceID) (float32, bool)

	SetBufferData8U(buf BufferID, samples []uint8, channels, sampleRate int) bool
	SetBufferData16S(buf BufferID, samples []int16, channels, sampleRate int) bool
	SetBufferData32F(buf BufferID, samples []float32, channels, sampleRate int) bool
	BufferInfo(buf BufferID) (BufferInfo, bool)

	AttachBufferToSource(src SourceID, buf BufferID)
	DetachBufferFromSource(src SourceID)
	SourceBuffer(src SourceID) (BufferID, bool)

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
	SetSourceDirectivityType(src SourceID, typ DirectivityType) bool
	SourceDirectivityType(src SourceID) (DirectivityType, bool)
	SetSourceRearAttenuation(src SourceID, rear float32) bool
	SourceRearAttenuation(src SourceID) (float32, bool)
	SetListenerRearAttenuation(rear float32) bool
	ListenerRearAttenuation() (float32, bool)
}

var (
	_ Engine = (*Soft)(nil)
	_ Device = (*NullDevice)(nil)
)
