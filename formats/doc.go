// SPDX-License-Identifier: EPL-2.0

// Package formats decodes audio files into audio.Source streams ready to
// be uploaded into engine buffers, and writes buffers back out as WAV.
//
// Supported inputs:
//   - WAV, 8/16/24/32-bit integer PCM (github.com/go-audio/wav)
//   - AIFF, 8/16/24/32-bit integer PCM (github.com/go-audio/aiff)
//   - MP3 (github.com/hajimehoshi/go-mp3), always stereo
//   - Ogg Vorbis (github.com/jfreymuth/oggvorbis)
//
// The quickest path from a file to a source is Open, which picks the
// decoder from the file extension:
//
//	src, err := formats.Open("door.ogg")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// NewRegistry returns an audio.Registry with every decoder registered
// under its usual extensions, for callers that decode from other readers.
package formats
