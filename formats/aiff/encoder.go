// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/shru/audio"
)

// Encoder writes a Source as an uncompressed AIFF file.
type Encoder struct {
	// BitDepth is 16 or 24. Zero selects 24.
	BitDepth int
	// FullScale is the sample magnitude written as the largest PCM code.
	// Zero scales each file to its own peak.
	FullScale float32
}

func (Encoder) Ext() string { return ".aiff" }

func (e Encoder) Encode(w io.WriteSeeker, src audio.Source) error {
	depth := e.BitDepth
	if depth == 0 {
		depth = 24
	}

	buf, err := audio.DrainPCM(src, depth, e.FullScale)
	if err != nil {
		return fmt.Errorf("aiff: %w", err)
	}

	enc := aiff.NewEncoder(w, buf.Format.SampleRate, depth, buf.Format.NumChannels)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return nil
}
