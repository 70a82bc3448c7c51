// SPDX-License-Identifier: EPL-2.0

// Package ir loads the impulse responses used by convolution reverb.
//
// An impulse response is a WAV file in the loader's directory; its name is
// the file name without the .wav extension. Multi-channel files are
// averaged to mono. Nothing is cached.
package ir
