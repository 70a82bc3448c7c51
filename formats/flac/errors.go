// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC stream layout")
	ErrChannelMismatch       = errors.New("FLAC frame channel count differs from stream info")
)
