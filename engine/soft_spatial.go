// SPDX-License-Identifier: EPL-2.0

package engine

func validChannel(ch int) bool {
	return ch >= 0 && ch < MaxChannels
}

func unit(v float32) bool {
	return v >= 0 && v <= 1
}

// Init3DScene enables per-channel spatial state. Output channel c renders
// from source channel c at listener channel c. Until it runs, source and
// listener channel setters and getters fail.
func (s *Soft) Init3DScene() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		s.scene = true
	}
}

func (s *Soft) EnableSource3DAudio(id SourceID, enable bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return false
	}
	src.spatial = enable
	return true
}

func (s *Soft) IsSource3DAudioEnabled(id SourceID) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return false, false
	}
	return src.spatial, true
}

func (s *Soft) SetSource3DStateChannel(id SourceID, ch int, t Transform) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok || !s.scene || !validChannel(ch) {
		return false
	}
	src.channels[ch] = t
	return true
}

// Source3DStateChannel returns the identity transform for channels that
// were never set.
func (s *Soft) Source3DStateChannel(id SourceID, ch int) (Transform, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok || !s.scene || !validChannel(ch) {
		return Transform{}, false
	}
	t, ok := src.channels[ch]
	if !ok {
		return IdentityTransform(), true
	}
	return t, true
}

func (s *Soft) SetListener3DStateChannel(ch int, t Transform) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || !s.scene || !validChannel(ch) {
		return false
	}
	s.listener[ch] = t
	return true
}

func (s *Soft) Listener3DStateChannel(ch int) (Transform, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || !s.scene || !validChannel(ch) {
		return Transform{}, false
	}
	t, ok := s.listener[ch]
	if !ok {
		return IdentityTransform(), true
	}
	return t, true
}

// setSourceParam applies set to source id when accept(v) holds.
func (s *Soft) setSourceParam(id SourceID, v float32, accept func(float32) bool, set func(*source, float32)) bool {
	if accept != nil && !accept(v) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return false
	}
	set(src, v)
	return true
}

func (s *Soft) sourceParam(id SourceID, get func(*source) float32) (float32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return 0, false
	}
	return get(src), true
}

func positive(v float32) bool    { return v > 0 }
func nonNegative(v float32) bool { return v >= 0 }

func (s *Soft) SetSourceSpeedOfSound(id SourceID, speed float32) bool {
	return s.setSourceParam(id, speed, positive, func(src *source, v float32) { src.speedOfSound = v })
}

func (s *Soft) SourceSpeedOfSound(id SourceID) (float32, bool) {
	return s.sourceParam(id, func(src *source) float32 { return src.speedOfSound })
}

func (s *Soft) SetSourceAttenuationMinDistance(id SourceID, d float32) bool {
	return s.setSourceParam(id, d, nonNegative, func(src *source, v float32) { src.atten.minDistance = v })
}

func (s *Soft) SourceAttenuationMinDistance(id SourceID) (float32, bool) {
	return s.sourceParam(id, func(src *source) float32 { return src.atten.minDistance })
}

func (s *Soft) SetSourceAttenuationMaxDistance(id SourceID, d float32) bool {
	return s.setSourceParam(id, d, nonNegative, func(src *source, v float32) { src.atten.maxDistance = v })
}

func (s *Soft) SourceAttenuationMaxDistance(id SourceID) (float32, bool) {
	return s.sourceParam(id, func(src *source) float32 { return src.atten.maxDistance })
}

func (s *Soft) SetSourceAttenuationConstantFalloff(id SourceID, k float32) bool {
	return s.setSourceParam(id, k, nonNegative, func(src *source, v float32) { src.atten.constant = v })
}

func (s *Soft) SourceAttenuationConstantFalloff(id SourceID) (float32, bool) {
	return s.sourceParam(id, func(src *source) float32 { return src.atten.constant })
}

func (s *Soft) SetSourceAttenuationLinearFalloff(id SourceID, k float32) bool {
	return s.setSourceParam(id, k, nonNegative, func(src *source, v float32) { src.atten.linear = v })
}

func (s *Soft) SourceAttenuationLinearFalloff(id SourceID) (float32, bool) {
	return s.sourceParam(id, func(src *source) float32 { return src.atten.linear })
}

func (s *Soft) SetSourceAttenuationQuadraticFalloff(id SourceID, k float32) bool {
	return s.setSourceParam(id, k, nonNegative, func(src *source, v float32) { src.atten.quadratic = v })
}

func (s *Soft) SourceAttenuationQuadraticFalloff(id SourceID) (float32, bool) {
	return s.sourceParam(id, func(src *source) float32 { return src.atten.quadratic })
}

func (s *Soft) SetSourceDirectivityAlpha(id SourceID, alpha float32) bool {
	return s.setSourceParam(id, alpha, unit, func(src *source, v float32) { src.dir.alpha = v })
}

func (s *Soft) SourceDirectivityAlpha(id SourceID) (float32, bool) {
	return s.sourceParam(id, func(src *source) float32 { return src.dir.alpha })
}

func (s *Soft) SetSourceDirectivitySharpness(id SourceID, sharpness float32) bool {
	accept := func(v float32) bool { return v >= 1 && v <= 8 }
	return s.setSourceParam(id, sharpness, accept, func(src *source, v float32) { src.dir.sharpness = v })
}

func (s *Soft) SourceDirectivitySharpness(id SourceID) (float32, bool) {
	return s.sourceParam(id, func(src *source) float32 { return src.dir.sharpness })
}

func (s *Soft) SetSourceDirectivityType(id SourceID, typ DirectivityType) bool {
	if !typ.Valid() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return false
	}
	src.dir.typ = typ
	return true
}

func (s *Soft) SourceDirectivityType(id SourceID) (DirectivityType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return Cardioid, false
	}
	return src.dir.typ, true
}

func (s *Soft) SetSourceRearAttenuation(id SourceID, rear float32) bool {
	return s.setSourceParam(id, rear, unit, func(src *source, v float32) { src.dir.rear = v })
}

func (s *Soft) SourceRearAttenuation(id SourceID) (float32, bool) {
	return s.sourceParam(id, func(src *source) float32 { return src.dir.rear })
}

func (s *Soft) SetListenerRearAttenuation(rear float32) bool {
	if !unit(rear) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return false
	}
	s.listenerRear = rear
	return true
}

func (s *Soft) ListenerRearAttenuation() (float32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return 0, false
	}
	return s.listenerRear, true
}
