// SPDX-License-Identifier: EPL-2.0

package ir

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAsset = errors.New("impulse response not found")
	ErrInvalidName  = errors.New("invalid impulse response name")
)

// MissingAssetError reports an impulse response that could not be opened.
type MissingAssetError struct {
	Name string
	Path string
	Err  error
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("%s: %q (%s): %v", ErrMissingAsset, e.Name, e.Path, e.Err)
}

func (e *MissingAssetError) Is(target error) bool {
	return target == ErrMissingAsset
}

func (e *MissingAssetError) Unwrap() error { return e.Err }
