// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Buffer is a Source over interleaved samples already in memory.
type Buffer struct {
	data       []float32
	channels   int
	sampleRate float64
	pos        int
}

// NewBuffer wraps data without copying it. len(data) should be a multiple of channels.
func NewBuffer(data []float32, channels int, sampleRate float64) *Buffer {
	return &Buffer{
		data:       data,
		channels:   channels,
		sampleRate: sampleRate,
	}
}

func (b *Buffer) SampleRate() float64 { return b.sampleRate }
func (b *Buffer) Channels() int       { return b.channels }
func (b *Buffer) Close() error        { return nil }

func (b *Buffer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%b.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}

	n := copy(dst, b.data[b.pos:])
	n -= n % b.channels
	b.pos += n

	if b.pos >= len(b.data) {
		return n, io.EOF
	}

	return n, nil
}
