// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"strings"
)

// Impulse response assets
const (
	DefaultIRDir       = "ir"   // Directory searched for impulse responses
	ImpulseResponseExt = ".wav" // Only WAV assets are listed and loaded
)

// Audio settings
const (
	ReadBufferSize = 4096 // Samples requested per Source.ReadSamples call
	OutputBitDepth = 16   // Bit depth of rendered WAV files
)

// Environment variables
const (
	EnvIRDir    = "AUDFX_IR_DIR"
	EnvLogLevel = "AUDFX_LOG_LEVEL"
)

// IRDir returns the impulse response directory, honouring EnvIRDir.
func IRDir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvIRDir)); dir != "" {
		return dir
	}

	return DefaultIRDir
}
