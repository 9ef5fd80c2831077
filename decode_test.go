// SPDX-License-Identifier: EPL-2.0

package shru

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ik5/shru/dxx"
	"github.com/ik5/shru/internal/dxxtest"
	"github.com/ik5/shru/trace"
)

func unityOptions() trace.Options {
	return trace.Options{
		Depth:       dxx.Depth24,
		Calibration: dxx.Calibration{SensitivityDB: []float64{0}, Gain: []float64{1}},
	}
}

func TestDecodeFile_EndToEnd(t *testing.T) {
	t.Parallel()

	s := dxxtest.DefaultSpec()
	s.SamplesPerRecord = 100
	s.RecordLength = 1200
	path := dxxtest.WriteTemp(t, dxxtest.Build(s, 2, func(_, sample, ch int) int32 { return int32(sample * (ch + 1)) }))

	res0, err := DecodeFile(context.Background(), path, unityOptions(), 0)
	if err != nil {
		t.Fatalf("DecodeFile(record 0) error = %v", err)
	}
	res1, err := DecodeFile(context.Background(), path, unityOptions(), 1)
	if err != nil {
		t.Fatalf("DecodeFile(record 1) error = %v", err)
	}

	if len(res0.Segments) != 2 || len(res1.Segments) != 2 {
		t.Fatalf("segments = %d, %d, want 2, 2", len(res0.Segments), len(res1.Segments))
	}

	diff := res1.Segments[0].StartTime.Sub(res0.Segments[0].StartTime)
	if diff != 2*time.Millisecond {
		t.Errorf("start difference = %v, want 2ms", diff)
	}
	if res0.Header.ChannelCount != 2 {
		t.Errorf("ChannelCount = %d, want 2", res0.Header.ChannelCount)
	}
}

func TestDecodeFile_AllRecords(t *testing.T) {
	t.Parallel()

	path := dxxtest.WriteTemp(t, dxxtest.Build(dxxtest.DefaultSpec(), 3, func(int, int, int) int32 { return 7 }))

	res, err := DecodeFile(context.Background(), path, unityOptions())
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if len(res.Segments) != 6 {
		t.Errorf("segments = %d, want 6", len(res.Segments))
	}
	if res.Err() != nil {
		t.Errorf("Result.Err() = %v", res.Err())
	}
}

func TestDecodeFile_Fatal(t *testing.T) {
	t.Parallel()

	good := dxxtest.WriteTemp(t, dxxtest.Build(dxxtest.DefaultSpec(), 1, func(int, int, int) int32 { return 0 }))
	short := dxxtest.WriteTemp(t, make([]byte, 512))

	tests := []struct {
		name string
		path string
		opts trace.Options
		want error
	}{
		{"bit depth checked first", "/nonexistent.D23", trace.Options{Depth: 0}, dxx.ErrUnsupportedBitDepth},
		{"short header", short, unityOptions(), dxx.ErrMalformedHeader},
		{"calibration", good, trace.Options{Depth: dxx.Depth16}, dxx.ErrInvalidCalibration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := DecodeFile(context.Background(), tt.path, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeFile() error = %v, want %v", err, tt.want)
			}
			if res != nil {
				t.Error("DecodeFile() returned a result with a fatal error")
			}
		})
	}
}
