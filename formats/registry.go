// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audswitch/audio"
)

// NewRegistry returns a registry with every built-in decoder registered
// under its common file extensions.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", WAVDecoder{})
	r.Register("wave", WAVDecoder{})
	r.Register("aiff", AIFFDecoder{})
	r.Register("aif", AIFFDecoder{})
	r.Register("mp3", MP3Decoder{})
	r.Register("ogg", VorbisDecoder{})
	r.Register("oga", VorbisDecoder{})
	return r
}

var defaultRegistry = NewRegistry()

// fileSource closes the underlying file together with the decoded source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	srcErr := s.Source.Close()
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", s.f.Name(), err)
	}
	return srcErr
}

// Open decodes the file at path, choosing the decoder by extension.
func Open(path string) (audio.Source, error) {
	return OpenWith(defaultRegistry, path)
}

// OpenWith is Open with a caller supplied registry.
func OpenWith(reg *audio.Registry, path string) (audio.Source, error) {
	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return &fileSource{Source: src, f: f}, nil
}
