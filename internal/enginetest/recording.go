// SPDX-License-Identifier: EPL-2.0

// Package enginetest provides engine doubles for adapter tests.
package enginetest

import (
	"sync"

	"github.com/ik5/audswitch/engine"
)

// Upload is one SetBufferData call as the engine received it.
type Upload struct {
	Buffer     engine.BufferID
	Format     engine.SampleFormat
	Channels   int
	SampleRate int
	U8         []uint8
	S16        []int16
	F32        []float32
}

// Factory builds RecordingEngines and remembers each one, so tests can
// count constructions and inspect the engine an adapter is using.
type Factory struct {
	mu sync.Mutex
	// StartupErr, when set, makes every engine built afterwards fail
	// Startup with it.
	StartupErr error
	engines    []*RecordingEngine
}

// New satisfies the adapter's engine factory signature.
func (f *Factory) New() engine.Engine {
	f.mu.Lock()
	defer f.mu.Unlock()

	e := &RecordingEngine{
		Soft:       engine.NewSoft(),
		startupErr: f.StartupErr,
	}
	f.engines = append(f.engines, e)
	return e
}

// Built is the number of engines constructed so far.
func (f *Factory) Built() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.engines)
}

// Last returns the most recently built engine, or nil.
func (f *Factory) Last() *RecordingEngine {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.engines) == 0 {
		return nil
	}
	return f.engines[len(f.engines)-1]
}

// RecordingEngine is an engine.Soft that logs uploads and lifecycle calls.
type RecordingEngine struct {
	*engine.Soft

	mu         sync.Mutex
	startupErr error
	startups   int
	shutdowns  int
	uploads    []Upload
	faults     []error
	directives []engine.DirectivityType
}

func (e *RecordingEngine) Startup(cfg engine.Config) error {
	e.mu.Lock()
	e.startups++
	err := e.startupErr
	e.mu.Unlock()

	if err != nil {
		return err
	}
	return e.Soft.Startup(cfg)
}

func (e *RecordingEngine) Shutdown() {
	e.mu.Lock()
	e.shutdowns++
	e.mu.Unlock()

	e.Soft.Shutdown()
}

// Err reports injected faults before the engine's own.
func (e *RecordingEngine) Err() error {
	e.mu.Lock()
	if len(e.faults) > 0 {
		err := e.faults[0]
		e.faults = e.faults[1:]
		e.mu.Unlock()
		return err
	}
	e.mu.Unlock()

	return e.Soft.Err()
}

// Inject queues err for a later Err call.
func (e *RecordingEngine) Inject(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.faults = append(e.faults, err)
}

func (e *RecordingEngine) record(u Upload) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.uploads = append(e.uploads, u)
}

func (e *RecordingEngine) SetBufferData8U(buf engine.BufferID, samples []uint8, channels, sampleRate int) bool {
	e.record(Upload{Buffer: buf, Format: engine.FormatU8, Channels: channels, SampleRate: sampleRate,
		U8: append([]uint8(nil), samples...)})
	return e.Soft.SetBufferData8U(buf, samples, channels, sampleRate)
}

func (e *RecordingEngine) SetBufferData16S(buf engine.BufferID, samples []int16, channels, sampleRate int) bool {
	e.record(Upload{Buffer: buf, Format: engine.FormatS16, Channels: channels, SampleRate: sampleRate,
		S16: append([]int16(nil), samples...)})
	return e.Soft.SetBufferData16S(buf, samples, channels, sampleRate)
}

func (e *RecordingEngine) SetBufferData32F(buf engine.BufferID, samples []float32, channels, sampleRate int) bool {
	e.record(Upload{Buffer: buf, Format: engine.FormatF32, Channels: channels, SampleRate: sampleRate,
		F32: append([]float32(nil), samples...)})
	return e.Soft.SetBufferData32F(buf, samples, channels, sampleRate)
}

// SetSourceDirectivityType records typ as received, valid or not.
func (e *RecordingEngine) SetSourceDirectivityType(src engine.SourceID, typ engine.DirectivityType) bool {
	e.mu.Lock()
	e.directives = append(e.directives, typ)
	e.mu.Unlock()

	return e.Soft.SetSourceDirectivityType(src, typ)
}

// DirectivityTypes returns every directivity type that reached the engine.
func (e *RecordingEngine) DirectivityTypes() []engine.DirectivityType {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]engine.DirectivityType(nil), e.directives...)
}

// Uploads returns a copy of every recorded upload in call order.
func (e *RecordingEngine) Uploads() []Upload {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Upload(nil), e.uploads...)
}

// Calls reports how many times Startup and Shutdown ran.
func (e *RecordingEngine) Calls() (startups, shutdowns int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startups, e.shutdowns
}
