// SPDX-License-Identifier: EPL-2.0

package dxx

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// BitDepth selects how sample codes are packed in a record.
type BitDepth int

const (
	// Depth16 is the 16-bit companded encoding: a 14-bit mantissa with a
	// 2-bit exponent folded into the low bits.
	Depth16 BitDepth = 16
	// Depth24 is the 24-bit linear two's-complement encoding.
	Depth24 BitDepth = 24
)

// ParseBitDepth accepts "16bit" and "24bit".
func ParseBitDepth(s string) (BitDepth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "16bit":
		return Depth16, nil
	case "24bit":
		return Depth24, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBitDepth, s)
}

func (d BitDepth) String() string {
	switch d {
	case Depth16, Depth24:
		return fmt.Sprintf("%dbit", int(d))
	}

	return fmt.Sprintf("BitDepth(%d)", int(d))
}

// BytesPerSample is the width of one sample code, or 0 for an unsupported depth.
func (d BitDepth) BytesPerSample() int {
	switch d {
	case Depth16:
		return 2
	case Depth24:
		return 3
	}

	return 0
}

// Validate reports ErrUnsupportedBitDepth for anything but Depth16 and Depth24.
func (d BitDepth) Validate() error {
	if d.BytesPerSample() == 0 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, int(d))
	}

	return nil
}

// codec turns one big-endian sample code into counts before calibration.
type codec struct {
	width     int
	fullScale float64 // ADC counts spanning the 2.5 V reference
	counts    func(b []byte) float64
}

func (d BitDepth) codec() (codec, error) {
	switch d {
	case Depth16:
		return codec{width: 2, fullScale: 8192, counts: counts16}, nil
	case Depth24:
		return codec{width: 3, fullScale: 1 << 23, counts: counts24}, nil
	}

	return codec{}, d.Validate()
}

func counts24(b []byte) float64 {
	// Place the 24 bits at the top of a word and shift back to sign-extend.
	raw := int32(uint32(b[0])<<24|uint32(b[1])<<16|uint32(b[2])<<8) >> 8
	return float64(raw)
}

func counts16(b []byte) float64 {
	raw := int16(binary.BigEndian.Uint16(b))

	v := float64(raw) / 4
	mantissa := math.Floor(v)
	frac := 4 * (v - mantissa)
	exponentGain := math.Pow(2, 3*frac)

	return v / exponentGain
}

// Calibration converts sample codes to pressure. Each slice holds either one
// value per channel or a single value shared by every channel.
type Calibration struct {
	SensitivityDB []float64
	Gain          []float64
}

// Validate checks the calibration against a channel count.
func (c Calibration) Validate(channels int) error {
	_, _, err := c.perChannel(channels)
	return err
}

func (c Calibration) perChannel(channels int) (sens, gain []float64, err error) {
	sensDB, err := broadcast("sensitivity", c.SensitivityDB, channels)
	if err != nil {
		return nil, nil, err
	}
	gain, err = broadcast("gain", c.Gain, channels)
	if err != nil {
		return nil, nil, err
	}

	sens = make([]float64, channels)
	for ch := range channels {
		if !(gain[ch] > 0) {
			return nil, nil, fmt.Errorf("%w: gain %v on channel %d", ErrInvalidCalibration, gain[ch], ch)
		}
		sens[ch] = math.Pow(10, sensDB[ch]/20)
	}

	return sens, gain, nil
}

func broadcast(name string, v []float64, channels int) ([]float64, error) {
	switch len(v) {
	case channels:
		return v, nil
	case 1:
		out := make([]float64, channels)
		for i := range out {
			out[i] = v[0]
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %d %s values for %d channels", ErrInvalidCalibration, len(v), name, channels)
}
