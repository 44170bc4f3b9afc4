// SPDX-License-Identifier: EPL-2.0

//go:build noaudio

package engine

var _ Device = (*OtoDevice)(nil)

// OtoDevice is a placeholder for builds without audio output. Open always
// fails with ErrNoAudio; headless engines never call it.
type OtoDevice struct{}

// NewOtoDevice returns a Device whose Open reports ErrNoAudio.
func NewOtoDevice() Device {
	return &OtoDevice{}
}

func (*OtoDevice) Open(int, int, Renderer) error { return ErrNoAudio }
func (*OtoDevice) Close() error                  { return nil }
func (*OtoDevice) Err() error                    { return nil }
