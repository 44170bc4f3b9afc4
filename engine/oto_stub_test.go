// SPDX-License-Identifier: EPL-2.0

//go:build noaudio

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtoDevice_NoAudioBuild(t *testing.T) {
	t.Parallel()

	dev := NewOtoDevice()
	assert.ErrorIs(t, dev.Open(48000, 2, nil), ErrNoAudio)
	assert.NoError(t, dev.Close())
	assert.NoError(t, dev.Err())

	s := NewSoft()
	cfg := headless()
	cfg.AudioEnabled = true
	err := s.Startup(cfg)
	require.ErrorIs(t, err, ErrNoAudio)
	assert.Zero(t, s.Channels(), "failed startup leaves the engine stopped")

	cfg.AudioEnabled = false
	require.NoError(t, s.Startup(cfg))
	t.Cleanup(s.Shutdown)
	assert.Equal(t, cfg.Channels, s.Channels())
}
