// SPDX-License-Identifier: EPL-2.0

//go:build !noaudio

package engine

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// oto allows a single context per process, so every OtoDevice shares it.
var (
	otoMu       sync.Mutex
	otoCtx      *oto.Context
	otoRate     int
	otoChannels int
)

func sharedOtoContext(sampleRate, channels int) (*oto.Context, error) {
	otoMu.Lock()
	defer otoMu.Unlock()

	if otoCtx != nil {
		if otoRate != sampleRate || otoChannels != channels {
			return nil, fmt.Errorf("%w: have %dHz/%dch, want %dHz/%dch",
				ErrDeviceFormat, otoRate, otoChannels, sampleRate, channels)
		}
		if err := otoCtx.Resume(); err != nil {
			return nil, fmt.Errorf("resuming oto context: %w", err)
		}
		return otoCtx, nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("creating oto context: %w", err)
	}
	<-ready

	otoCtx = ctx
	otoRate = sampleRate
	otoChannels = channels
	return ctx, nil
}

var _ Device = (*OtoDevice)(nil)

// OtoDevice plays through the system output using oto. Build with the
// noaudio tag to leave oto, and with it cgo and the system audio
// libraries, out of the binary.
type OtoDevice struct {
	mu       sync.Mutex
	player   *oto.Player
	reported error
}

// NewOtoDevice returns a Device backed by the shared oto context.
func NewOtoDevice() Device {
	return &OtoDevice{}
}

func (d *OtoDevice) Open(sampleRate, channels int, r Renderer) error {
	ctx, err := sharedOtoContext(sampleRate, channels)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.player = ctx.NewPlayer(&renderStream{r: r, channels: channels})
	d.player.Play()
	d.reported = nil
	return nil
}

func (d *OtoDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.player == nil {
		return nil
	}
	err := d.player.Close()
	d.player = nil
	if err != nil {
		return fmt.Errorf("closing oto player: %w", err)
	}
	return nil
}

func (d *OtoDevice) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.player == nil {
		return nil
	}
	err := d.player.Err()
	if err == nil || err == d.reported {
		return nil
	}
	d.reported = err
	return err
}
