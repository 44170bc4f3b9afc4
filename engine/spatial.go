// SPDX-License-Identifier: EPL-2.0

package engine

import "math"

func (v Vec3) sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vec3) scale(k float32) Vec3 {
	return Vec3{v[0] * k, v[1] * k, v[2] * k}
}

func (v Vec3) dot(o Vec3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Length is the euclidean norm of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.dot(v))))
}

func (v Vec3) normalized() (Vec3, bool) {
	l := v.Length()
	if l == 0 {
		return Vec3{}, false
	}
	return v.scale(1 / l), true
}

func clamp32(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}

// DistanceGain is 1 / (constant + linear*d + quadratic*d²) with d clamped
// into [minDistance, maxDistance]. A non-positive denominator yields unity.
func DistanceGain(d, minDistance, maxDistance, constant, linear, quadratic float32) float32 {
	d = max(d, minDistance)
	if maxDistance >= minDistance {
		d = min(d, maxDistance)
	}
	denom := constant + linear*d + quadratic*d*d
	if denom <= 0 {
		return 1
	}
	return 1 / denom
}

// PatternGain evaluates the polar pattern at cosTheta, the cosine of the
// angle between the emission axis and the listener direction.
func PatternGain(typ DirectivityType, cosTheta float32) float32 {
	c := clamp32(cosTheta, -1, 1)
	switch typ {
	case SuperCardioid:
		return max(0, 0.37+0.63*c)
	case HalfRectifiedDipole:
		return max(0, c)
	case Dipole:
		return float32(math.Abs(float64(c)))
	default:
		return 0.5 + 0.5*c
	}
}

// DirectivityGain blends omnidirectional and patterned emission by alpha and
// narrows the lobe with sharpness.
func DirectivityGain(typ DirectivityType, alpha, sharpness, cosTheta float32) float32 {
	p := float64(PatternGain(typ, cosTheta))
	return (1 - alpha) + alpha*float32(math.Pow(p, float64(sharpness)))
}

// RearGain attenuates sound arriving from behind. rear=1 leaves it alone,
// rear=0 silences a direction exactly opposite the facing axis.
func RearGain(rear, cosTheta float32) float32 {
	if cosTheta >= 0 {
		return 1
	}
	return 1 - (1-rear)*clamp32(-cosTheta, 0, 1)
}

// DopplerFactor is the pitch multiplier heard by the listener for the given
// positions and velocities. Relative speeds are kept below the speed of
// sound.
func DopplerFactor(speedOfSound float32, srcPos, srcVel, lisPos, lisVel Vec3) float32 {
	if speedOfSound <= 0 {
		return 1
	}
	dir, ok := lisPos.sub(srcPos).normalized()
	if !ok {
		return 1
	}
	limit := speedOfSound * 0.99
	towardListener := clamp32(srcVel.dot(dir), -limit, limit)
	towardSource := clamp32(-lisVel.dot(dir), -limit, limit)
	return (speedOfSound + towardSource) / (speedOfSound - towardListener)
}

// channelState returns channel ch of m, falling back to channel 0 and
// then to the identity transform.
func channelState(m map[int]Transform, ch int) Transform {
	if t, ok := m[ch]; ok {
		return t
	}
	if t, ok := m[0]; ok {
		return t
	}
	return IdentityTransform()
}

// spatialize returns one gain per output channel and the pitch factor for
// src. Output channel c is heard from source channel c at listener channel
// c; Doppler follows channel 0. The caller holds s.mu.
func (s *Soft) spatialize(src *source, outCh int) ([MaxChannels]float32, float32) {
	var gains [MaxChannels]float32
	if !s.scene || !src.spatial {
		for c := range gains {
			gains[c] = 1
		}
		return gains, 1
	}

	for c := range min(outCh, MaxChannels) {
		gains[c] = s.channelGain(src, channelState(src.channels, c), channelState(s.listener, c))
	}

	st := channelState(src.channels, 0)
	lt := channelState(s.listener, 0)
	doppler := DopplerFactor(src.speedOfSound, st.Position, st.Velocity, lt.Position, lt.Velocity)
	return gains, doppler
}

func (s *Soft) channelGain(src *source, st, lt Transform) float32 {
	toListener := lt.Position.sub(st.Position)
	a := src.atten
	gain := DistanceGain(toListener.Length(), a.minDistance, a.maxDistance, a.constant, a.linear, a.quadratic)

	if dir, ok := toListener.normalized(); ok {
		emit := st.Rotation.Row(2).dot(dir)
		gain *= DirectivityGain(src.dir.typ, src.dir.alpha, src.dir.sharpness, emit)
		gain *= RearGain(src.dir.rear, emit)

		facing := lt.Rotation.Row(2).dot(dir.scale(-1))
		gain *= RearGain(s.listenerRear, facing)
	}
	return gain
}
