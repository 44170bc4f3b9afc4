// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"strings"
	"sync"
)

// Source is a stream of interleaved PCM samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with
	// err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the read size, in samples, the source works best with.
	BufSize() int
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys such as "wav" or "ogg" to decoders. Keys are
// case-insensitive and a leading dot is ignored, so file extensions can be
// used directly.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

// Register adds or replaces the decoder for format.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
