// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/shru/utils"
)

// Resampler streams src at another sample rate using cubic interpolation.
// Channel count is preserved. When downsampling, source frames pass through
// a one-pole low-pass before interpolation.
type Resampler struct {
	src      Source
	dstRate  float64
	step     float64 // source frames per output frame
	channels int

	// window[k] holds source frame idx-1+k, clamped to the frames read so far
	window [4][]float32
	idx    int
	loaded int
	pos    float64 // fraction between window[1] and window[2]

	primed  bool
	srcDone bool
	frame   []float32

	filter      bool
	filterAlpha float32
	filterState []float32
}

// NewResampler converts src to dstRate. A non-positive or non-finite
// dstRate makes ReadSamples fail with ErrInvalidSampleRate.
func NewResampler(src Source, dstRate float64) *Resampler {
	channels := src.Channels()
	step := src.SampleRate() / dstRate

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		step:        step,
		channels:    channels,
		frame:       make([]float32, channels),
		filter:      step > 1,
		filterState: make([]float32, channels),
	}

	if r.filter {
		// smoothing grows with the decimation factor
		r.filterAlpha = float32(1 / step)
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() float64 { return r.dstRate }
func (r *Resampler) Channels() int       { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// next reads one source frame into r.frame. ok is false once src is exhausted.
func (r *Resampler) next() (ok bool, err error) {
	if r.srcDone {
		return false, nil
	}

	got := 0
	for got < r.channels {
		n, err := r.src.ReadSamples(r.frame[got:])
		got += n

		if err == io.EOF || (err == nil && n == 0) {
			r.srcDone = true
			break
		}
		if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	if got < r.channels {
		return false, nil
	}

	if r.filter {
		if r.loaded == 0 {
			copy(r.filterState, r.frame)
		}
		for c := range r.channels {
			r.filterState[c] = r.filterAlpha*r.frame[c] + (1-r.filterAlpha)*r.filterState[c]
			r.frame[c] = r.filterState[c]
		}
	}

	r.loaded++

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.next()
	if err != nil || !ok {
		return err
	}

	copy(r.window[0], r.frame)
	copy(r.window[1], r.frame)

	for i := 2; i < 4; i++ {
		ok, err := r.next()
		if err != nil {
			return err
		}
		if ok {
			copy(r.window[i], r.frame)
		} else {
			copy(r.window[i], r.window[i-1])
		}
	}

	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	r.idx++
	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], r.window[0]

	ok, err := r.next()
	if err != nil {
		return err
	}
	if ok {
		copy(r.window[3], r.frame)
	} else {
		copy(r.window[3], r.window[2])
	}

	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !(r.dstRate > 0) || math.IsInf(r.step, 0) || !(r.step > 0) {
		return 0, ErrInvalidSampleRate
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		if r.idx >= r.loaded {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range r.channels {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}
		written++

		r.pos += r.step
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
	}

	return written * r.channels, nil
}
