// SPDX-License-Identifier: EPL-2.0

package engine

import "sync"

// Device is an audio output that pulls frames from a Renderer.
type Device interface {
	// Open starts pulling interleaved frames of the given layout from r.
	Open(sampleRate, channels int, r Renderer) error
	// Close stops pulling and releases the output.
	Close() error
	// Err reports a playback failure once; later calls return nil until a
	// new failure happens.
	Err() error
}

// NullDevice never touches hardware. Frames are only rendered when Pull is
// called, which makes it the device of choice for tests.
type NullDevice struct {
	mu       sync.Mutex
	renderer Renderer
	channels int
	rate     int
	fault    error
}

// NewNullDevice returns a Device that renders on demand.
func NewNullDevice() *NullDevice {
	return &NullDevice{}
}

func (d *NullDevice) Open(sampleRate, channels int, r Renderer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.renderer = r
	d.rate = sampleRate
	d.channels = channels
	return nil
}

func (d *NullDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.renderer = nil
	return nil
}

func (d *NullDevice) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.fault
	d.fault = nil
	return err
}

// Fail queues err to be reported by the next Err call.
func (d *NullDevice) Fail(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fault = err
}

// Pull renders frames into a new slice. It returns nil once the device is closed.
func (d *NullDevice) Pull(frames int) []float32 {
	d.mu.Lock()
	r, ch := d.renderer, d.channels
	d.mu.Unlock()

	if r == nil {
		return nil
	}
	out := make([]float32, frames*ch)
	r.Render(out)
	return out
}
