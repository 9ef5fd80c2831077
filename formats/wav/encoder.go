// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/shru/audio"
)

// pcmFormat is the WAVE format tag for linear PCM.
const pcmFormat = 1

// Encoder writes a Source as a linear PCM WAV file.
type Encoder struct {
	// BitDepth is 16 or 24. Zero selects 24.
	BitDepth int
	// FullScale is the sample magnitude written as the largest PCM code.
	// Zero scales each file to its own peak.
	FullScale float32
	// Comment is stored in the INFO chunk when set.
	Comment string
}

func (Encoder) Ext() string { return ".wav" }

func (e Encoder) Encode(w io.WriteSeeker, src audio.Source) error {
	depth := e.BitDepth
	if depth == 0 {
		depth = 24
	}

	buf, err := audio.DrainPCM(src, depth, e.FullScale)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	enc := wav.NewEncoder(w, buf.Format.SampleRate, depth, buf.Format.NumChannels, pcmFormat)
	if e.Comment != "" {
		enc.Metadata = &wav.Metadata{Comments: e.Comment}
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return nil
}
