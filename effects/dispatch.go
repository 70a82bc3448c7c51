// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"

	"github.com/ik5/audfx/audio"
	"github.com/sirupsen/logrus"
)

// ImpulseLoader resolves an impulse response by name.
type ImpulseLoader interface {
	Load(name string) (*audio.Buffer, error)
}

// Request selects one effect and its knobs.
type Request struct {
	Effect Effect
	Params Params

	// ImpulseResponse names the asset Reverb convolves with.
	ImpulseResponse string

	// Normalize rescales the result to unit peak.
	Normalize bool
}

type handler func(d *Dispatcher, in *audio.Buffer, p Params, req Request) ([]float64, error)

var handlers = map[Effect]handler{
	EffectReverse: func(_ *Dispatcher, in *audio.Buffer, _ Params, _ Request) ([]float64, error) {
		return Reverse(in.Samples), nil
	},
	EffectDelay: func(_ *Dispatcher, in *audio.Buffer, p Params, _ Request) ([]float64, error) {
		return Delay(in.Samples, in.SampleRate, p[ParamDelayTime], p[ParamFeedback]), nil
	},
	EffectEcho: func(_ *Dispatcher, in *audio.Buffer, p Params, _ Request) ([]float64, error) {
		return Echo(in.Samples, in.SampleRate, p[ParamDelayTime], p[ParamFeedback], int(p[ParamRepetitions])), nil
	},
	EffectReverb: (*Dispatcher).reverb,
	EffectFilter: func(_ *Dispatcher, in *audio.Buffer, p Params, _ Request) ([]float64, error) {
		return Filter(in.Samples, in.SampleRate, p[ParamLowpass], p[ParamHighpass]), nil
	},
	EffectOverdrive: func(_ *Dispatcher, in *audio.Buffer, p Params, _ Request) ([]float64, error) {
		return Overdrive(in.Samples, in.SampleRate, p[ParamDrive], p[ParamTone]), nil
	},
	EffectPhaser: func(_ *Dispatcher, in *audio.Buffer, p Params, _ Request) ([]float64, error) {
		return Phaser(in.Samples, in.SampleRate, p[ParamRate], p[ParamDepth], int(p[ParamStages]),
			p[ParamFeedback], p[ParamWetDryMix]), nil
	},
	EffectFlanger: func(_ *Dispatcher, in *audio.Buffer, p Params, _ Request) ([]float64, error) {
		return Flanger(in.Samples, in.SampleRate, p[ParamRate], p[ParamDepth],
			p[ParamFeedback], p[ParamWetDryMix]), nil
	},
	EffectChorus: func(_ *Dispatcher, in *audio.Buffer, p Params, _ Request) ([]float64, error) {
		return Chorus(in.Samples, in.SampleRate, int(p[ParamVoices]), p[ParamRate], p[ParamDepth],
			p[ParamWetDryMix]), nil
	},
}

// Dispatcher routes a Request to its effect function.
type Dispatcher struct {
	impulses ImpulseLoader
	logger   logrus.FieldLogger
}

type Option func(*Dispatcher)

// WithLogger replaces the standard logrus logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithImpulseLoader enables Reverb.
func WithImpulseLoader(l ImpulseLoader) Option {
	return func(d *Dispatcher) { d.impulses = l }
}

func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Apply runs req against in and returns a new buffer at the same rate.
// in is never modified.
func (d *Dispatcher) Apply(in *audio.Buffer, req Request) (*audio.Buffer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	h, ok := handlers[req.Effect]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, req.Effect)
	}

	log := d.logger.WithFields(logrus.Fields{
		"effect":      req.Effect.String(),
		"samples":     in.Len(),
		"sample_rate": in.SampleRate,
	})

	params, adjusted, err := Resolve(req.Effect, req.Params)
	if err != nil {
		log.WithError(err).Error("Rejected effect parameters")
		return nil, err
	}

	for _, a := range adjusted {
		log.WithFields(logrus.Fields{
			"param": a.Name,
			"given": a.Given,
			"used":  a.Used,
		}).Warn("Parameter adjusted into range")
	}

	if req.Effect == EffectFilter && !FilterConfigValid(in.SampleRate, params[ParamLowpass], params[ParamHighpass]) {
		log.WithFields(logrus.Fields{
			ParamLowpass:  params[ParamLowpass],
			ParamHighpass: params[ParamHighpass],
		}).Warn("Highpass cutoff is not below lowpass cutoff, output is silent")
	}

	out, err := h(d, in, params, req)
	if err != nil {
		log.WithError(err).Error("Effect failed")
		return nil, fmt.Errorf("%s: %w", req.Effect, err)
	}

	if req.Normalize {
		out = Normalize(out)
	}

	log.WithFields(logrus.Fields{
		"params":      map[string]float64(params),
		"out_samples": len(out),
		"normalized":  req.Normalize,
	}).Debug("Applied effect")

	return &audio.Buffer{Samples: out, SampleRate: in.SampleRate}, nil
}

func (d *Dispatcher) reverb(in *audio.Buffer, p Params, req Request) ([]float64, error) {
	if d.impulses == nil {
		return nil, ErrMissingImpulseLoader
	}
	if req.ImpulseResponse == "" {
		return nil, ErrMissingImpulseName
	}

	ir, err := d.impulses.Load(req.ImpulseResponse)
	if err != nil {
		return nil, err
	}

	d.logger.WithFields(logrus.Fields{
		"impulse_response": req.ImpulseResponse,
		"ir_samples":       ir.Len(),
		"ir_sample_rate":   ir.SampleRate,
	}).Debug("Loaded impulse response")

	return Reverb(in.Samples, in.SampleRate, ir.Samples, ir.SampleRate, p[ParamWetDryMix])
}
