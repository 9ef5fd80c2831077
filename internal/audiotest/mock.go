// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic sample sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates frames from a waveform function.
// It satisfies audio.Source without importing it.
type MockSource struct {
	sampleRate float64
	channels   int
	frames     int // per channel
	generated  int
	waveform   func(frame, channel int) float32

	closed bool
}

// NewMockSource creates a source of frames frames per channel.
func NewMockSource(sampleRate float64, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate float64, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewSineSource generates a sine of the given frequency and peak on every channel.
func NewSineSource(sampleRate float64, channels, frames int, frequency, peak float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / sampleRate
		return float32(peak * math.Sin(2*math.Pi*frequency*t))
	})
}

func NewConstantSource(sampleRate float64, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func (m *MockSource) SampleRate() float64 { return m.sampleRate }
func (m *MockSource) Channels() int       { return m.channels }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	count := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range count {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += count
	if m.generated >= m.frames {
		return count * m.channels, io.EOF
	}

	return count * m.channels, nil
}
