// SPDX-License-Identifier: EPL-2.0

package audswitch

import "errors"

var (
	ErrEngineStartup          = errors.New("audio engine failed to start")
	ErrNotInitialized         = errors.New("switcher is not initialized")
	ErrInvalidDirectivityType = errors.New("directivity type must be in [0,3]")
	ErrUploadFailed           = errors.New("engine rejected buffer data")
	ErrUnsupportedFormat      = errors.New("unsupported sample format")
)
