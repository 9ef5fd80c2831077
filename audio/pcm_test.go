// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestIntBuffer_PeakNormalized(t *testing.T) {
	t.Parallel()

	buf, err := IntBuffer([]float32{0.5, -1, 0.25, 0}, 2, 50000, 16, 0)
	if err != nil {
		t.Fatalf("IntBuffer() error = %v", err)
	}

	if buf.Format.NumChannels != 2 || buf.Format.SampleRate != 50000 || buf.SourceBitDepth != 16 {
		t.Errorf("format = %+v, depth %d", *buf.Format, buf.SourceBitDepth)
	}

	want := []int{16384, -32767, 8192, 0}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

func TestIntBuffer_FixedScale(t *testing.T) {
	t.Parallel()

	buf, err := IntBuffer([]float32{0.5, 2}, 1, 1984.6, 24, 1)
	if err != nil {
		t.Fatalf("IntBuffer() error = %v", err)
	}
	if buf.Format.SampleRate != 1985 {
		t.Errorf("SampleRate = %d, want 1985", buf.Format.SampleRate)
	}
	if buf.Data[0] != 4194304 || buf.Data[1] != 8388607 {
		t.Errorf("Data = %v, want [4194304 8388607]", buf.Data)
	}
}

func TestIntBuffer_Errors(t *testing.T) {
	t.Parallel()

	if _, err := IntBuffer([]float32{0}, 1, 8000, 8, 0); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("8 bit: error = %v, want ErrUnsupportedBitDepth", err)
	}
	if _, err := IntBuffer([]float32{0}, 1, 0.4, 16, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("0.4 Hz: error = %v, want ErrInvalidSampleRate", err)
	}
	if _, err := IntBuffer([]float32{0, 0, 0}, 2, 8000, 16, 0); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ragged frames: error = %v, want ErrInvalidDstSize", err)
	}
}
