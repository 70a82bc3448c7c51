// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audfx/utils"
)

// Resampler streams from src to a target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass runs on the input when downsampling.
//
// The effect engine never resamples on its own; a Resampler is only put in
// front of a source when the caller explicitly asks for a different rate.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int64
	channels int

	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames [4][]float64
	have   [4]bool
	base   int64 // source frame index held in frames[1]
	out    int64 // output frames produced so far
	primed bool

	readBuf []float64
	head    int
	filled  int
	eof     bool

	lowpass bool
	alpha   float64
	state   []float64
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		dstRate:  int64(max(dstRate, 1)),
		channels: channels,
		readBuf:  make([]float64, 1024*channels),
		lowpass:  src.SampleRate() > dstRate,
		alpha:    0.5,
		state:    make([]float64, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float64, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next source frame into dst. It returns false once
// the source is exhausted.
func (r *Resampler) nextFrame(dst []float64, first bool) (bool, error) {
	empty := 0
	for r.head >= r.filled {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.readBuf)
		r.head, r.filled = 0, n-n%r.channels

		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if r.filled == 0 && !r.eof {
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(dst, r.readBuf[r.head:r.head+r.channels])
	r.head += r.channels

	if r.lowpass {
		if first {
			copy(r.state, dst)
		}
		for c := range r.channels {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}

	return true, nil
}

// shift rotates the frame window one step forward.
func (r *Resampler) shift() error {
	r.frames[0], r.frames[1], r.frames[2], r.frames[3] = r.frames[1], r.frames[2], r.frames[3], r.frames[0]
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	ok, err := r.nextFrame(r.frames[3], false)
	if err != nil {
		return err
	}
	if !ok {
		copy(r.frames[3], r.frames[2])
	}
	r.have[3] = ok

	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.nextFrame(r.frames[1], true)
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	copy(r.frames[0], r.frames[1])
	r.have[0], r.have[1] = true, true

	for i := 2; i < 4; i++ {
		ok, err := r.nextFrame(r.frames[i], false)
		if err != nil {
			return err
		}
		if !ok {
			copy(r.frames[i], r.frames[i-1])
		}
		r.have[i] = ok
	}

	r.primed = true

	return nil
}

// ReadSamples produces interleaved samples at the target rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float64) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		// Source position of this output frame, kept exact as a rational.
		num := r.out * r.srcRate
		target := num / r.dstRate
		for r.base < target {
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
			r.base++
		}

		if !r.have[1] {
			return written * r.channels, io.EOF
		}

		x := float64(num%r.dstRate) / float64(r.dstRate)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range r.channels {
			out[c] = utils.CubicInterpolate(r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], x)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}
