// SPDX-License-Identifier: EPL-2.0

// Package utils holds sample-level helpers shared by the pipeline and the
// engine.
package utils

// Float32ToInt16 converts a sample in [-1,1] to signed 16-bit PCM,
// clamping out-of-range input.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// Float32ToUint8 converts a sample in [-1,1] to unsigned 8-bit PCM centred
// on 128.
func Float32ToUint8(x float32) uint8 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return uint8(int(x*127.0) + 128)
}

// Int16ToFloat32 maps signed 16-bit PCM onto [-1,1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Uint8ToFloat32 maps unsigned 8-bit PCM onto [-1,1).
func Uint8ToFloat32(v uint8) float32 {
	return (float32(v) - 128.0) / 128.0
}
