// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"log/slog"
	"sync"

	goaudio "github.com/go-audio/audio"
)

// Physical and rendering defaults for freshly created sources.
const (
	DefaultSpeedOfSound    float32 = 343.0
	DefaultMinDistance     float32 = 1.0
	DefaultMaxDistance     float32 = 1000.0
	DefaultConstantFalloff float32 = 1.0
)

type playState int

const (
	stateStopped playState = iota
	statePlaying
	statePaused
)

type attenuation struct {
	minDistance float32
	maxDistance float32
	constant    float32
	linear      float32
	quadratic   float32
}

type directivity struct {
	alpha     float32
	sharpness float32
	typ       DirectivityType
	rear      float32
}

type source struct {
	volume  float32
	pitch   float32
	looping bool
	panSet  bool
	pan     float32

	state  playState
	cursor float64
	buffer BufferID

	spatial      bool
	channels     map[int]Transform
	speedOfSound float32
	atten        attenuation
	dir          directivity
}

func newSource() *source {
	return &source{
		volume:       1,
		pitch:        1,
		channels:     make(map[int]Transform),
		speedOfSound: DefaultSpeedOfSound,
		atten: attenuation{
			minDistance: DefaultMinDistance,
			maxDistance: DefaultMaxDistance,
			constant:    DefaultConstantFalloff,
		},
		dir: directivity{
			sharpness: 1,
			typ:       Cardioid,
			rear:      1,
		},
	}
}

type buffer struct {
	format SampleFormat
	pcm    *goaudio.Float32Buffer
}

func (b *buffer) frames() int {
	if b.pcm == nil {
		return 0
	}
	return b.pcm.NumFrames()
}

// Soft is a pure Go engine. It keeps all state in memory and, when audio is
// enabled, renders playing sources into an output Device.
//
// Soft is safe for concurrent use; the device pulls samples from its own
// goroutine.
type Soft struct {
	mu sync.Mutex

	cfg     Config
	started bool

	nextSource uint32
	nextBuffer uint32
	sources    map[SourceID]*source
	buffers    map[BufferID]*buffer

	scene        bool
	listener     map[int]Transform
	listenerRear float32

	newDevice func() Device
	device    Device
	faults    []error

	logger *slog.Logger
}

// Option configures a Soft engine.
type Option func(*Soft)

// WithLogger sets the logger used for lifecycle and device events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Soft) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDevice overrides how the output device is created when audio is enabled.
func WithDevice(newDevice func() Device) Option {
	return func(s *Soft) {
		if newDevice != nil {
			s.newDevice = newDevice
		}
	}
}

// NewSoft creates a stopped engine. Call Startup before use.
func NewSoft(opts ...Option) *Soft {
	s := &Soft{
		newDevice: NewOtoDevice,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Soft) Startup(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.cfg = cfg
	s.sources = make(map[SourceID]*source)
	s.buffers = make(map[BufferID]*buffer)
	s.listener = make(map[int]Transform)
	s.listenerRear = 1
	s.scene = false
	s.faults = nil
	s.started = true
	s.mu.Unlock()

	if !cfg.AudioEnabled {
		s.logger.Debug("engine started headless",
			slog.Int("sample_rate", cfg.SampleRate),
			slog.Int("channels", cfg.Channels))
		return nil
	}

	dev := s.newDevice()
	if err := dev.Open(cfg.SampleRate, cfg.Channels, s); err != nil {
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		return fmt.Errorf("opening output device: %w", err)
	}

	s.mu.Lock()
	s.device = dev
	s.mu.Unlock()

	s.logger.Debug("engine started",
		slog.Int("sample_rate", cfg.SampleRate),
		slog.Int("channels", cfg.Channels))
	return nil
}

func (s *Soft) Shutdown() {
	s.mu.Lock()
	dev := s.device
	s.device = nil
	wasStarted := s.started
	s.started = false
	s.sources = nil
	s.buffers = nil
	s.listener = nil
	s.scene = false
	s.mu.Unlock()

	// Closed outside the lock: the device may be blocked in Render.
	if dev != nil {
		if err := dev.Close(); err != nil {
			s.logger.Warn("closing output device", slog.Any("error", err))
		}
	}
	if wasStarted {
		s.logger.Debug("engine stopped")
	}
}

func (s *Soft) Channels() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return 0
	}
	return s.cfg.Channels
}

func (s *Soft) Err() error {
	s.mu.Lock()
	dev := s.device
	s.mu.Unlock()

	if dev != nil {
		if err := dev.Err(); err != nil {
			s.pushFault(fmt.Errorf("output device: %w", err))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.faults) == 0 {
		return nil
	}
	err := s.faults[0]
	s.faults = s.faults[1:]
	return err
}

func (s *Soft) pushFault(err error) {
	s.logger.Warn("engine fault", slog.Any("error", err))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = append(s.faults, err)
}

// src returns the live source for id; the caller holds s.mu.
func (s *Soft) src(id SourceID) (*source, bool) {
	if !s.started {
		return nil, false
	}
	src, ok := s.sources[id]
	return src, ok
}

// buf returns the live buffer for id; the caller holds s.mu.
func (s *Soft) buf(id BufferID) (*buffer, bool) {
	if !s.started {
		return nil, false
	}
	b, ok := s.buffers[id]
	return b, ok
}

func (s *Soft) CreateSource() SourceID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return InvalidSource
	}
	s.nextSource++
	if s.nextSource == 0 {
		s.nextSource++
	}
	id := SourceID(s.nextSource)
	s.sources[id] = newSource()
	return id
}

func (s *Soft) DestroySource(id SourceID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		delete(s.sources, id)
	}
}

func (s *Soft) CreateBuffer() BufferID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return InvalidBuffer
	}
	s.nextBuffer++
	if s.nextBuffer == 0 {
		s.nextBuffer++
	}
	id := BufferID(s.nextBuffer)
	s.buffers[id] = &buffer{}
	return id
}

func (s *Soft) DestroyBuffer(id BufferID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	delete(s.buffers, id)
	// Sources still pointing at the buffer fall silent.
	for _, src := range s.sources {
		if src.buffer == id {
			src.buffer = InvalidBuffer
			src.state = stateStopped
			src.cursor = 0
		}
	}
}

func (s *Soft) PlaySource(id SourceID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return
	}
	b, ok := s.buf(src.buffer)
	if !ok || b.frames() == 0 {
		// Nothing to hear; stay stopped.
		src.state = stateStopped
		src.cursor = 0
		return
	}
	if src.state != statePaused {
		src.cursor = 0
	}
	src.state = statePlaying
}

func (s *Soft) PauseSource(id SourceID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.src(id); ok && src.state == statePlaying {
		src.state = statePaused
	}
}

func (s *Soft) StopSource(id SourceID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.src(id); ok {
		src.state = stateStopped
		src.cursor = 0
	}
}

func (s *Soft) IsSourcePlaying(id SourceID) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return false, false
	}
	return src.state == statePlaying, true
}

func (s *Soft) IsSourcePaused(id SourceID) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return false, false
	}
	return src.state == statePaused, true
}

func (s *Soft) SetSourceVolume(id SourceID, vol float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.src(id); ok {
		src.volume = vol
	}
}

func (s *Soft) SourceVolume(id SourceID) (float32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return 0, false
	}
	return src.volume, true
}

// SetSourcePitch ignores non-positive multipliers.
func (s *Soft) SetSourcePitch(id SourceID, pitch float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.src(id); ok && pitch > 0 {
		src.pitch = pitch
	}
}

func (s *Soft) SourcePitch(id SourceID) (float32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return 0, false
	}
	return src.pitch, true
}

func (s *Soft) SetSourceLooping(id SourceID, loop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.src(id); ok {
		src.looping = loop
	}
}

func (s *Soft) SourceLooping(id SourceID) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return false, false
	}
	return src.looping, true
}

func (s *Soft) SetSourcePanning(id SourceID, pan float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.src(id); ok {
		src.pan = pan
		src.panSet = true
	}
}

func (s *Soft) ResetSourcePanning(id SourceID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.src(id); ok {
		src.pan = 0
		src.panSet = false
	}
}

// SourcePanning reports ok=false when panning was never set.
func (s *Soft) SourcePanning(id SourceID) (float32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok || !src.panSet {
		return 0, false
	}
	return src.pan, true
}

func (s *Soft) AttachBufferToSource(id SourceID, bufID BufferID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok {
		return
	}
	if _, ok := s.buf(bufID); !ok {
		return
	}
	src.state = stateStopped
	src.cursor = 0
	src.buffer = bufID
}

func (s *Soft) DetachBufferFromSource(id SourceID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.src(id); ok {
		src.state = stateStopped
		src.cursor = 0
		src.buffer = InvalidBuffer
	}
}

// SourceBuffer reports ok=false when nothing is attached.
func (s *Soft) SourceBuffer(id SourceID) (BufferID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.src(id)
	if !ok || src.buffer == InvalidBuffer {
		return InvalidBuffer, false
	}
	return src.buffer, true
}
