// SPDX-License-Identifier: EPL-2.0

package shru

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/shru/audio"
	"github.com/ik5/shru/trace"
)

// ErrNoEncoder is returned by Export when ExportOptions.Encoder is nil.
var ErrNoEncoder = errors.New("no export encoder")

// ExportOptions select the container and shape of exported files.
type ExportOptions struct {
	Encoder audio.Encoder
	// Rate resamples every file to this rate. Zero keeps the recorder rate.
	Rate float64
	// Interleave writes the channels of a record to one file instead of one file per channel.
	Interleave bool
}

// Export writes segments below dir and returns the paths it created, in order.
// Files follow Segment.Path, or Segment.RecordPath when interleaving.
// It stops at the first write error.
func Export(ctx context.Context, segments []trace.Segment, dir string, opts ExportOptions) ([]string, error) {
	if opts.Encoder == nil {
		return nil, ErrNoEncoder
	}

	var paths []string
	for _, group := range groups(segments, opts.Interleave) {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		first := &group[0]
		rel := first.Path(opts.Encoder.Ext())
		if opts.Interleave {
			rel = first.RecordPath(opts.Encoder.Ext())
		}
		path := filepath.Join(dir, rel)

		src, err := source(group, opts.Rate)
		if err != nil {
			return paths, fmt.Errorf("record %d: %w", first.Record, err)
		}

		if err := writeFile(path, opts.Encoder, src); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// groups splits segments into export units: one per segment, or one per
// run of segments sharing a record when interleaving.
func groups(segments []trace.Segment, interleave bool) [][]trace.Segment {
	var out [][]trace.Segment
	for i := 0; i < len(segments); {
		j := i + 1
		if interleave {
			for j < len(segments) && segments[j].Record == segments[i].Record {
				j++
			}
		}
		out = append(out, segments[i:j])
		i = j
	}

	return out
}

func source(group []trace.Segment, rate float64) (audio.Source, error) {
	var src audio.Source = group[0].Source()
	if len(group) > 1 {
		srcs := make([]audio.Source, len(group))
		for i := range group {
			srcs[i] = group[i].Source()
		}

		il, err := audio.NewInterleaver(srcs...)
		if err != nil {
			return nil, err
		}
		src = il
	}

	if rate > 0 && rate != src.SampleRate() {
		src = audio.NewResampler(src, rate)
	}

	return src, nil
}

func writeFile(path string, enc audio.Encoder, src audio.Source) (err error) {
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := enc.Encode(f, src); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return nil
}
