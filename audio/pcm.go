// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/shru/utils"
)

// PCMRate rounds a recorder rate to the integral rate PCM containers store.
func PCMRate(sampleRate float64) (int, error) {
	rate := math.Round(sampleRate)
	if math.IsNaN(rate) || rate < 1 || rate > math.MaxInt32 {
		return 0, fmt.Errorf("%g Hz: %w", sampleRate, ErrInvalidSampleRate)
	}

	return int(rate), nil
}

// IntBuffer quantizes interleaved samples into a go-audio buffer.
// fullScale is the magnitude mapped to the largest PCM code. Zero scales to
// the peak of samples so quiet pressure traces still use the full range.
func IntBuffer(samples []float32, channels int, sampleRate float64, bitDepth int, fullScale float32) (*goaudio.IntBuffer, error) {
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}
	if channels < 1 || len(samples)%channels != 0 {
		return nil, ErrInvalidDstSize
	}

	rate, err := PCMRate(sampleRate)
	if err != nil {
		return nil, err
	}

	if fullScale <= 0 {
		fullScale = utils.Peak(samples)
	}

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = utils.Quantize(v, fullScale, bitDepth)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  rate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}, nil
}

// DrainPCM reads src to the end and quantizes it with IntBuffer.
func DrainPCM(src Source, bitDepth int, fullScale float32) (*goaudio.IntBuffer, error) {
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	samples, err := ReadAll(src)
	if err != nil {
		return nil, err
	}

	return IntBuffer(samples, src.Channels(), src.SampleRate(), bitDepth, fullScale)
}
