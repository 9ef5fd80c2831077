// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Interleaver merges several sources into one multi-channel stream.
// Channels appear in source order. The stream ends with the shortest source.
type Interleaver struct {
	srcs       []Source
	sampleRate float64
	channels   int
	bufs       [][]float32
}

// NewInterleaver requires at least one source and equal sample rates.
func NewInterleaver(srcs ...Source) (*Interleaver, error) {
	if len(srcs) == 0 {
		return nil, ErrNoSources
	}

	rate := srcs[0].SampleRate()
	channels := 0
	for i, src := range srcs {
		if src.SampleRate() != rate {
			return nil, fmt.Errorf("source %d at %g Hz, want %g Hz: %w", i, src.SampleRate(), rate, ErrSourceMismatch)
		}
		channels += src.Channels()
	}

	return &Interleaver{
		srcs:       srcs,
		sampleRate: rate,
		channels:   channels,
		bufs:       make([][]float32, len(srcs)),
	}, nil
}

func (il *Interleaver) SampleRate() float64 { return il.sampleRate }
func (il *Interleaver) Channels() int       { return il.channels }

// Close closes every source and reports the first failure.
func (il *Interleaver) Close() error {
	var first error
	for _, src := range il.srcs {
		if err := src.Close(); err != nil && first == nil {
			first = fmt.Errorf("%w", err)
		}
	}

	return first
}

func (il *Interleaver) ReadSamples(dst []float32) (int, error) {
	if len(dst)%il.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / il.channels
	if frames == 0 {
		return 0, nil
	}

	eof := false
	for i, src := range il.srcs {
		need := frames * src.Channels()
		if cap(il.bufs[i]) < need {
			il.bufs[i] = make([]float32, need)
		}
		buf := il.bufs[i][:need]

		n, err := readFull(src, buf)
		if err == io.EOF {
			eof = true
		} else if err != nil {
			return 0, fmt.Errorf("%w", err)
		}

		frames = min(frames, n/src.Channels())
	}

	for f := range frames {
		out := dst[f*il.channels:]
		off := 0
		for i, src := range il.srcs {
			ch := src.Channels()
			copy(out[off:off+ch], il.bufs[i][f*ch:(f+1)*ch])
			off += ch
		}
	}

	if eof {
		return frames * il.channels, io.EOF
	}

	return frames * il.channels, nil
}
