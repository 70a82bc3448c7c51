// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"
	"slices"
)

// ParamSpec describes one numeric knob of an effect.
type ParamSpec struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
	Integer bool
}

// Params carries knob values by name.
type Params map[string]float64

// Adjustment records a value that Resolve had to change.
type Adjustment struct {
	Name  string
	Given float64
	Used  float64
}

const (
	ParamDelayTime   = "delay_time"
	ParamFeedback    = "feedback"
	ParamRepetitions = "repetitions"
	ParamWetDryMix   = "wet_dry_mix"
	ParamLowpass     = "lowpass_freq"
	ParamHighpass    = "highpass_freq"
	ParamDrive       = "drive"
	ParamTone        = "tone"
	ParamRate        = "rate"
	ParamDepth       = "depth"
	ParamStages      = "stages"
	ParamVoices      = "voices"
)

var schemas = map[Effect][]ParamSpec{
	EffectReverse: nil,
	EffectDelay: {
		{Name: ParamDelayTime, Min: 0.001, Max: 5, Default: 0.3},
		{Name: ParamFeedback, Min: 0, Max: 1, Default: 0.3},
	},
	EffectEcho: {
		{Name: ParamDelayTime, Min: 0.001, Max: 5, Default: 0.3},
		{Name: ParamFeedback, Min: 0, Max: 1, Default: 0.5},
		{Name: ParamRepetitions, Min: 1, Max: 20, Default: 3, Integer: true},
	},
	EffectReverb: {
		{Name: ParamWetDryMix, Min: 0, Max: 1, Default: 0.5},
	},
	EffectFilter: {
		{Name: ParamLowpass, Min: 20, Max: 22050, Default: 5000},
		{Name: ParamHighpass, Min: 20, Max: 22050, Default: 200},
	},
	EffectOverdrive: {
		{Name: ParamDrive, Min: 1, Max: 50, Default: 5},
		{Name: ParamTone, Min: 0, Max: 1, Default: 0.5},
	},
	EffectPhaser: {
		{Name: ParamRate, Min: 0.01, Max: 10, Default: 0.5},
		{Name: ParamDepth, Min: 0, Max: 1, Default: 0.7},
		{Name: ParamStages, Min: 1, Max: 12, Default: 4, Integer: true},
		{Name: ParamFeedback, Min: 0, Max: 0.95, Default: 0.5},
		{Name: ParamWetDryMix, Min: 0, Max: 1, Default: 0.5},
	},
	EffectFlanger: {
		{Name: ParamRate, Min: 0.01, Max: 10, Default: 0.25},
		{Name: ParamDepth, Min: 0, Max: 0.02, Default: 0.003},
		{Name: ParamFeedback, Min: 0, Max: 0.95, Default: 0.5},
		{Name: ParamWetDryMix, Min: 0, Max: 1, Default: 0.5},
	},
	EffectChorus: {
		{Name: ParamVoices, Min: 1, Max: 8, Default: 3, Integer: true},
		{Name: ParamRate, Min: 0.01, Max: 10, Default: 1.5},
		{Name: ParamDepth, Min: 0, Max: 0.05, Default: 0.005},
		{Name: ParamWetDryMix, Min: 0, Max: 1, Default: 0.5},
	},
}

// Schema returns a copy of the knobs e accepts, in display order.
func (e Effect) Schema() []ParamSpec {
	return slices.Clone(schemas[e])
}

// Defaults returns every knob of e at its default value.
func (e Effect) Defaults() Params {
	p := make(Params, len(schemas[e]))
	for _, s := range schemas[e] {
		p[s.Name] = s.Default
	}

	return p
}

// Resolve fills missing knobs with defaults, clamps values into range and
// rounds integer knobs. Unknown names and non-finite values are errors.
func Resolve(e Effect, in Params) (Params, []Adjustment, error) {
	spec, ok := schemas[e]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownEffect, e)
	}

	for name := range in {
		if !slices.ContainsFunc(spec, func(s ParamSpec) bool { return s.Name == name }) {
			return nil, nil, fmt.Errorf("%w: %s has no %q", ErrUnknownParam, e, name)
		}
	}

	out := make(Params, len(spec))
	var adjusted []Adjustment

	for _, s := range spec {
		v, given := in[s.Name]
		if !given {
			out[s.Name] = s.Default
			continue
		}

		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, fmt.Errorf("%w: %s=%v", ErrInvalidParam, s.Name, v)
		}

		used := min(max(v, s.Min), s.Max)
		if s.Integer {
			used = math.Round(used)
		}

		if used != v {
			adjusted = append(adjusted, Adjustment{Name: s.Name, Given: v, Used: used})
		}
		out[s.Name] = used
	}

	return out, adjusted, nil
}
