// SPDX-License-Identifier: EPL-2.0

package audswitch

import "log/slog"

func (a *Adapter) Init3DScene() {
	if a.eng != nil {
		a.eng.Init3DScene()
	}
}

// EnableSource3DAudio toggles whether the source's spatial state affects
// how it is rendered.
func (a *Adapter) EnableSource3DAudio(src SourceID, enable bool) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.EnableSource3DAudio(src, enable)
}

func (a *Adapter) IsSource3DAudioEnabled(src SourceID) (bool, bool) {
	if a.eng == nil {
		return false, false
	}
	return a.eng.IsSource3DAudioEnabled(src)
}

func (a *Adapter) SetSource3DStateChannel(src SourceID, channel int, t Transform) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetSource3DStateChannel(src, channel, t)
}

func (a *Adapter) Source3DStateChannel(src SourceID, channel int) (Transform, bool) {
	if a.eng == nil {
		return Transform{}, false
	}
	return a.eng.Source3DStateChannel(src, channel)
}

func (a *Adapter) SetListener3DStateChannel(channel int, t Transform) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetListener3DStateChannel(channel, t)
}

func (a *Adapter) Listener3DStateChannel(channel int) (Transform, bool) {
	if a.eng == nil {
		return Transform{}, false
	}
	return a.eng.Listener3DStateChannel(channel)
}

func (a *Adapter) SetSourceSpeedOfSound(src SourceID, speed float32) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetSourceSpeedOfSound(src, speed)
}

func (a *Adapter) SourceSpeedOfSound(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourceSpeedOfSound(src)
}

func (a *Adapter) SetSourceAttenuationMinDistance(src SourceID, d float32) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetSourceAttenuationMinDistance(src, d)
}

func (a *Adapter) SourceAttenuationMinDistance(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourceAttenuationMinDistance(src)
}

func (a *Adapter) SetSourceAttenuationMaxDistance(src SourceID, d float32) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetSourceAttenuationMaxDistance(src, d)
}

func (a *Adapter) SourceAttenuationMaxDistance(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourceAttenuationMaxDistance(src)
}

func (a *Adapter) SetSourceAttenuationConstantFalloff(src SourceID, k float32) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetSourceAttenuationConstantFalloff(src, k)
}

func (a *Adapter) SourceAttenuationConstantFalloff(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourceAttenuationConstantFalloff(src)
}

func (a *Adapter) SetSourceAttenuationLinearFalloff(src SourceID, k float32) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetSourceAttenuationLinearFalloff(src, k)
}

func (a *Adapter) SourceAttenuationLinearFalloff(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourceAttenuationLinearFalloff(src)
}

func (a *Adapter) SetSourceAttenuationQuadraticFalloff(src SourceID, k float32) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetSourceAttenuationQuadraticFalloff(src, k)
}

func (a *Adapter) SourceAttenuationQuadraticFalloff(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourceAttenuationQuadraticFalloff(src)
}

func (a *Adapter) SetSourceDirectivityAlpha(src SourceID, alpha float32) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetSourceDirectivityAlpha(src, alpha)
}

func (a *Adapter) SourceDirectivityAlpha(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourceDirectivityAlpha(src)
}

func (a *Adapter) SetSourceDirectivitySharpness(src SourceID, sharpness float32) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetSourceDirectivitySharpness(src, sharpness)
}

func (a *Adapter) SourceDirectivitySharpness(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourceDirectivitySharpness(src)
}

func (a *Adapter) SetSourceDirectivityType(src SourceID, typ int) bool {
	if a.eng == nil {
		return false
	}
	t, err := ParseDirectivityType(typ)
	if err != nil {
		a.logger.Debug("directivity type rejected",
			slog.Uint64("source", uint64(src)),
			slog.Any("error", err))
		return false
	}
	return a.eng.SetSourceDirectivityType(src, t)
}

func (a *Adapter) SourceDirectivityType(src SourceID) (DirectivityType, bool) {
	if a.eng == nil {
		return Cardioid, false
	}
	return a.eng.SourceDirectivityType(src)
}

func (a *Adapter) SetSourceRearAttenuation(src SourceID, rear float32) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetSourceRearAttenuation(src, rear)
}

func (a *Adapter) SourceRearAttenuation(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourceRearAttenuation(src)
}

func (a *Adapter) SetListenerRearAttenuation(rear float32) bool {
	if a.eng == nil {
		return false
	}
	return a.eng.SetListenerRearAttenuation(rear)
}

func (a *Adapter) ListenerRearAttenuation() (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.ListenerRearAttenuation()
}
