// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams using github.com/mewkiz/flac.
//
// Frames are parsed lazily as samples are requested. Each frame's subframes
// are interleaved and scaled by the frame's bit depth, so streams of 4 to 32
// bits per sample all land in [-1, 1].
package flac
