// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ik5/shru/dxx"
	"github.com/ik5/shru/utils"
)

// Options control how records are decoded.
type Options struct {
	Depth       dxx.BitDepth
	Calibration dxx.Calibration
	// Workers above 1 decode records concurrently. Output order does not change.
	Workers int
	// Logger receives a Debug entry per record and a Warn entry per failure.
	// Nil discards.
	Logger logrus.FieldLogger
}

// Result of a batch. Segments are ordered by record, then by channel.
type Result struct {
	Header   *dxx.FileHeader
	Segments []Segment
	Errors   []RecordError
}

// Err joins the per-record errors, or returns nil when every record decoded cleanly.
func (r *Result) Err() error {
	errs := make([]error, len(r.Errors))
	for i := range r.Errors {
		errs[i] = &r.Errors[i]
	}

	return errors.Join(errs...)
}

type recordResult struct {
	record   int
	segments []Segment
	err      error
	done     bool
}

// Assemble decodes records of f into per-channel segments. Records may be in
// any order and contain duplicates; they are processed in ascending order.
// An empty list selects every record.
//
// Failures of single records are collected in Result.Errors and never drop
// other records. The returned error is reserved for problems that stop the
// whole batch: unsupported bit depth, calibration that does not fit the
// header, or ctx ending. In the last case the segments assembled so far are
// returned with ctx.Err().
func Assemble(ctx context.Context, f *dxx.File, records []int, opts Options) (*Result, error) {
	if err := opts.Depth.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Calibration.Validate(f.Header.ChannelCount); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		records = AllRecords(f.RecordCount())
	} else {
		records = normalize(records)
	}

	log := opts.Logger
	if log == nil {
		log = discard()
	}

	results := make([]recordResult, len(records))
	for i, rec := range records {
		results[i].record = rec
	}

	var err error
	if opts.Workers > 1 && len(records) > 1 {
		err = decodeConcurrent(ctx, f, results, opts, log)
	} else {
		err = decodeSequential(ctx, f, results, opts, log)
	}

	res := &Result{Header: f.Header}
	for _, r := range results {
		if !r.done {
			continue
		}
		res.Segments = append(res.Segments, r.segments...)
		if r.err != nil {
			res.Errors = append(res.Errors, RecordError{Record: r.record, Err: r.err})
		}
	}

	return res, err
}

func decodeSequential(ctx context.Context, f *dxx.File, results []recordResult, opts Options, log logrus.FieldLogger) error {
	for i := range results {
		if err := ctx.Err(); err != nil {
			return err
		}
		decodeOne(f, &results[i], opts, log)
	}

	return nil
}

// decodeConcurrent fans record indices out to a fixed pool. Each worker owns
// the slots it is handed, so results needs no lock.
func decodeConcurrent(ctx context.Context, f *dxx.File, results []recordResult, opts Options, log logrus.FieldLogger) error {
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := min(opts.Workers, len(results))
	for id := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wlog := log.WithField("worker", id)
			for i := range jobs {
				decodeOne(f, &results[i], opts, wlog)
			}
		}()
	}

feed:
	for i := range results {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return ctx.Err()
}

func decodeOne(f *dxx.File, r *recordResult, opts Options, log logrus.FieldLogger) {
	w, err := f.DecodeRecord(r.record, opts.Depth, opts.Calibration)
	r.done = true
	r.err = err

	if w != nil {
		r.segments = segments(f.Header, w)
	}

	entry := log.WithField("record", r.record)
	if err != nil {
		entry.WithError(err).Warn("record failed")
		return
	}
	entry.WithField("segments", len(r.segments)).Debug("record decoded")
}

// segments wraps each channel of w. Channels with no samples are skipped.
func segments(h *dxx.FileHeader, w *dxx.Waveform) []Segment {
	start := h.RecordStart(w.Record)
	network := NetworkCode(h.InstrumentID)

	out := make([]Segment, 0, len(w.Channels))
	for ch, data := range w.Channels {
		if len(data) == 0 {
			continue
		}
		utils.RemoveMean(data)

		out = append(out, Segment{
			Network:      network,
			Station:      StationLabel(ch),
			Location:     "",
			Channel:      ChannelCode,
			StartTime:    start,
			SampleRate:   h.SampleRate,
			Calibration:  1,
			Units:        Units,
			Record:       w.Record,
			ChannelIndex: ch,
			Data:         data,
			Truncated:    w.Truncated,
		})
	}

	return out
}

func discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
