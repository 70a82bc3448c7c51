// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"strings"
)

// Effect is one of the closed set of transformations the engine can apply.
// The zero value is not a valid effect.
type Effect int

const (
	EffectFilter Effect = iota + 1
	EffectOverdrive
	EffectPhaser
	EffectFlanger
	EffectChorus
	EffectDelay
	EffectEcho
	EffectReverb
	EffectReverse
)

var effectNames = map[Effect]string{
	EffectFilter:    "filter",
	EffectOverdrive: "overdrive",
	EffectPhaser:    "phaser",
	EffectFlanger:   "flanger",
	EffectChorus:    "chorus",
	EffectDelay:     "delay",
	EffectEcho:      "echo",
	EffectReverb:    "reverb",
	EffectReverse:   "reverse",
}

func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}

	return fmt.Sprintf("Effect(%d)", int(e))
}

// Valid reports whether e is a member of the enumeration.
func (e Effect) Valid() bool {
	_, ok := effectNames[e]
	return ok
}

// ParseEffect maps a case-insensitive name to its Effect.
func ParseEffect(name string) (Effect, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for e, s := range effectNames {
		if s == n {
			return e, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// All lists every effect in catalog order.
func All() []Effect {
	return []Effect{
		EffectFilter,
		EffectOverdrive,
		EffectPhaser,
		EffectFlanger,
		EffectChorus,
		EffectDelay,
		EffectEcho,
		EffectReverb,
		EffectReverse,
	}
}
