// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEffect        = errors.New("unknown effect")
	ErrUnknownParam         = errors.New("unknown parameter")
	ErrInvalidParam         = errors.New("parameter must be a finite number")
	ErrSampleRateMismatch   = errors.New("sample rate mismatch")
	ErrEmptyImpulseResponse = errors.New("impulse response has no samples")
	ErrMissingImpulseLoader = errors.New("reverb requires an impulse response loader")
	ErrMissingImpulseName   = errors.New("reverb requires an impulse response name")
)

// SampleRateMismatchError is returned when an impulse response was recorded
// at a different rate than the signal it is applied to.
type SampleRateMismatchError struct {
	Input           int
	ImpulseResponse int
}

func (e *SampleRateMismatchError) Error() string {
	return fmt.Sprintf("%s: input is %d Hz, impulse response is %d Hz",
		ErrSampleRateMismatch, e.Input, e.ImpulseResponse)
}

func (e *SampleRateMismatchError) Is(target error) bool {
	return target == ErrSampleRateMismatch
}
