// SPDX-License-Identifier: EPL-2.0

package audswitch

// Nop is a Switcher with no engine behind it. Init always fails and every
// other call returns its sentinel, which makes it a stand-in for builds
// without audio and a fixture for failure paths.
type Nop struct{}

func (Nop) Init(Config) error   { return ErrEngineStartup }
func (Nop) Finish()             {}
func (Nop) Close() error        { return nil }
func (Nop) IsInitialized() bool { return false }

func (Nop) CreateSource() SourceID { return InvalidSource }
func (Nop) DestroySource(SourceID) {}
func (Nop) CreateBuffer() BufferID { return InvalidBuffer }
func (Nop) DestroyBuffer(BufferID) {}

func (Nop) PlaySource(SourceID)                     {}
func (Nop) PauseSource(SourceID)                    {}
func (Nop) StopSource(SourceID)                     {}
func (Nop) IsSourcePlaying(SourceID) (bool, bool)   { return false, false }
func (Nop) IsSourcePaused(SourceID) (bool, bool)    { return false, false }
func (Nop) SetSourceVolume(SourceID, float32)       {}
func (Nop) SourceVolume(SourceID) (float32, bool)   { return 0, false }
func (Nop) SetSourcePitch(SourceID, float32)        {}
func (Nop) SourcePitch(SourceID) (float32, bool)    { return 0, false }
func (Nop) SetSourceLooping(SourceID, bool)         {}
func (Nop) SourceLooping(SourceID) (bool, bool)     { return false, false }
func (Nop) SetSourcePanning(SourceID, *float32)     {}
func (Nop) SourcePanning(SourceID) (float32, bool)  { return 0, false }
func (Nop) SetSourceStandardParams(SourceID)        {}
func (Nop) AttachBufferToSource(SourceID, BufferID) {}
func (Nop) DetachBufferFromSource(SourceID)         {}
func (Nop) SourceBuffer(SourceID) (BufferID, bool)  { return InvalidBuffer, false }

func (Nop) SetBufferData8U(BufferID, []uint8, int, int) bool    { return false }
func (Nop) SetBufferData16S(BufferID, []int16, int, int) bool   { return false }
func (Nop) SetBufferData32F(BufferID, []float32, int, int) bool { return false }
func (Nop) BufferInfo(BufferID) (BufferInfo, bool)              { return BufferInfo{}, false }

func (Nop) Init3DScene()                                          {}
func (Nop) EnableSource3DAudio(SourceID, bool) bool               { return false }
func (Nop) IsSource3DAudioEnabled(SourceID) (bool, bool)          { return false, false }
func (Nop) SetSource3DStateChannel(SourceID, int, Transform) bool { return false }
func (Nop) Source3DStateChannel(SourceID, int) (Transform, bool)  { return Transform{}, false }
func (Nop) SetListener3DStateChannel(int, Transform) bool         { return false }
func (Nop) Listener3DStateChannel(int) (Transform, bool)          { return Transform{}, false }
func (Nop) SetSourceSpeedOfSound(SourceID, float32) bool          { return false }
func (Nop) SourceSpeedOfSound(SourceID) (float32, bool)           { return 0, false }

func (Nop) SetSourceAttenuationMinDistance(SourceID, float32) bool      { return false }
func (Nop) SourceAttenuationMinDistance(SourceID) (float32, bool)       { return 0, false }
func (Nop) SetSourceAttenuationMaxDistance(SourceID, float32) bool      { return false }
func (Nop) SourceAttenuationMaxDistance(SourceID) (float32, bool)       { return 0, false }
func (Nop) SetSourceAttenuationConstantFalloff(SourceID, float32) bool  { return false }
func (Nop) SourceAttenuationConstantFalloff(SourceID) (float32, bool)   { return 0, false }
func (Nop) SetSourceAttenuationLinearFalloff(SourceID, float32) bool    { return false }
func (Nop) SourceAttenuationLinearFalloff(SourceID) (float32, bool)     { return 0, false }
func (Nop) SetSourceAttenuationQuadraticFalloff(SourceID, float32) bool { return false }
func (Nop) SourceAttenuationQuadraticFalloff(SourceID) (float32, bool)  { return 0, false }

func (Nop) SetSourceDirectivityAlpha(SourceID, float32) bool       { return false }
func (Nop) SourceDirectivityAlpha(SourceID) (float32, bool)        { return 0, false }
func (Nop) SetSourceDirectivitySharpness(SourceID, float32) bool   { return false }
func (Nop) SourceDirectivitySharpness(SourceID) (float32, bool)    { return 0, false }
func (Nop) SetSourceDirectivityType(SourceID, int) bool            { return false }
func (Nop) SourceDirectivityType(SourceID) (DirectivityType, bool) { return Cardioid, false }
func (Nop) SetSourceRearAttenuation(SourceID, float32) bool        { return false }
func (Nop) SourceRearAttenuation(SourceID) (float32, bool)         { return 0, false }
func (Nop) SetListenerRearAttenuation(float32) bool                { return false }
func (Nop) ListenerRearAttenuation() (float32, bool)               { return 0, false }

func (Nop) CheckError() string { return "" }
