// SPDX-License-Identifier: EPL-2.0

package audswitch

import (
	"fmt"
	"log/slog"

	"github.com/ik5/audswitch/engine"
)

// EngineFactory builds a fresh, stopped engine for Init.
type EngineFactory func() engine.Engine

// Adapter drives one engine through the Switcher surface. Every call is
// guarded by the lifecycle: before Init and after Finish operations are
// no-ops returning their sentinel.
//
// Adapter does no locking of its own; callers serialize access.
type Adapter struct {
	newEngine EngineFactory
	eng       engine.Engine
	cfg       Config
	logger    *slog.Logger
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithEngineFactory replaces the default software engine.
func WithEngineFactory(f EngineFactory) AdapterOption {
	return func(a *Adapter) {
		if f != nil {
			a.newEngine = f
		}
	}
}

// WithLogger sets the logger for lifecycle events. It is also handed to
// the default software engine.
func WithLogger(l *slog.Logger) AdapterOption {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

func NewAdapter(opts ...AdapterOption) *Adapter {
	a := &Adapter{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.newEngine == nil {
		logger := a.logger
		a.newEngine = func() engine.Engine {
			return engine.NewSoft(engine.WithLogger(logger))
		}
	}
	return a
}

// Init constructs and starts the engine. Calling it again while
// initialized does nothing. When startup fails the adapter stays
// uninitialized and the returned error wraps ErrEngineStartup.
func (a *Adapter) Init(cfg Config) error {
	if a.eng != nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	eng := a.newEngine()
	if err := eng.Startup(cfg.engineConfig()); err != nil {
		a.logger.Warn("engine startup failed", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrEngineStartup, err)
	}

	a.eng = eng
	a.cfg = cfg
	a.logger.Debug("switcher initialized",
		slog.Int("sample_rate", cfg.SampleRate),
		slog.Int("channels", cfg.Channels),
		slog.Bool("audio_enabled", cfg.AudioEnabled))
	return nil
}

// Finish shuts the engine down and releases it. It is safe to call at
// any time, any number of times.
func (a *Adapter) Finish() {
	if a.eng == nil {
		return
	}
	eng := a.eng
	a.eng = nil
	eng.Shutdown()
	a.logger.Debug("switcher finished")
}

// Close calls Finish, so a deferred Close releases the engine on every
// return path.
func (a *Adapter) Close() error {
	a.Finish()
	return nil
}

func (a *Adapter) IsInitialized() bool {
	return a.eng != nil
}

func (a *Adapter) CreateSource() SourceID {
	if a.eng == nil {
		return InvalidSource
	}
	return a.eng.CreateSource()
}

func (a *Adapter) DestroySource(src SourceID) {
	if a.eng != nil {
		a.eng.DestroySource(src)
	}
}

func (a *Adapter) CreateBuffer() BufferID {
	if a.eng == nil {
		return InvalidBuffer
	}
	return a.eng.CreateBuffer()
}

func (a *Adapter) DestroyBuffer(buf BufferID) {
	if a.eng != nil {
		a.eng.DestroyBuffer(buf)
	}
}

func (a *Adapter) PlaySource(src SourceID) {
	if a.eng != nil {
		a.eng.PlaySource(src)
	}
}

func (a *Adapter) PauseSource(src SourceID) {
	if a.eng != nil {
		a.eng.PauseSource(src)
	}
}

func (a *Adapter) StopSource(src SourceID) {
	if a.eng != nil {
		a.eng.StopSource(src)
	}
}

func (a *Adapter) IsSourcePlaying(src SourceID) (bool, bool) {
	if a.eng == nil {
		return false, false
	}
	return a.eng.IsSourcePlaying(src)
}

func (a *Adapter) IsSourcePaused(src SourceID) (bool, bool) {
	if a.eng == nil {
		return false, false
	}
	return a.eng.IsSourcePaused(src)
}

func (a *Adapter) SetSourceVolume(src SourceID, vol float32) {
	if a.eng != nil {
		a.eng.SetSourceVolume(src, vol)
	}
}

func (a *Adapter) SourceVolume(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourceVolume(src)
}

func (a *Adapter) SetSourcePitch(src SourceID, pitch float32) {
	if a.eng != nil {
		a.eng.SetSourcePitch(src, pitch)
	}
}

func (a *Adapter) SourcePitch(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourcePitch(src)
}

func (a *Adapter) SetSourceLooping(src SourceID, loop bool) {
	if a.eng != nil {
		a.eng.SetSourceLooping(src, loop)
	}
}

func (a *Adapter) SourceLooping(src SourceID) (bool, bool) {
	if a.eng == nil {
		return false, false
	}
	return a.eng.SourceLooping(src)
}

func (a *Adapter) SetSourcePanning(src SourceID, pan *float32) {
	if a.eng == nil {
		return
	}
	if pan == nil {
		a.eng.ResetSourcePanning(src)
		return
	}
	a.eng.SetSourcePanning(src, *pan)
}

func (a *Adapter) SourcePanning(src SourceID) (float32, bool) {
	if a.eng == nil {
		return 0, false
	}
	return a.eng.SourcePanning(src)
}

// SetSourceStandardParams resets pitch and volume to 1 and turns looping off.
func (a *Adapter) SetSourceStandardParams(src SourceID) {
	if a.eng == nil {
		return
	}
	a.eng.SetSourcePitch(src, 1)
	a.eng.SetSourceVolume(src, 1)
	a.eng.SetSourceLooping(src, false)
}

func (a *Adapter) AttachBufferToSource(src SourceID, buf BufferID) {
	if a.eng != nil {
		a.eng.AttachBufferToSource(src, buf)
	}
}

func (a *Adapter) DetachBufferFromSource(src SourceID) {
	if a.eng != nil {
		a.eng.DetachBufferFromSource(src)
	}
}

func (a *Adapter) SourceBuffer(src SourceID) (BufferID, bool) {
	if a.eng == nil {
		return InvalidBuffer, false
	}
	return a.eng.SourceBuffer(src)
}

func (a *Adapter) CheckError() string {
	if a.eng == nil {
		return ""
	}
	if err := a.eng.Err(); err != nil {
		return err.Error()
	}
	return ""
}
