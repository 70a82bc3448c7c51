// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio using
// github.com/hajimehoshi/go-mp3. The decoder always yields interleaved
// stereo; wrap it in audio.NewMonoMixer (or use audio.ReadAll) to get the
// mono signal the effects expect.
package mp3
