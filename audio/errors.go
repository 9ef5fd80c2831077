// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	// ErrNoSources is returned by NewInterleaver without inputs
	ErrNoSources = errors.New("no sources to interleave")
	// ErrSourceMismatch indicates interleaved sources with different rates or channel counts
	ErrSourceMismatch = errors.New("sources differ in sample rate or channel count")
	// ErrInvalidSampleRate indicates a rate that cannot be written to a PCM container
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	// ErrUnsupportedBitDepth indicates a PCM bit depth other than 16 or 24
	ErrUnsupportedBitDepth = errors.New("only 16 and 24-bit PCM supported")
)
