// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/shru"
	"github.com/ik5/shru/audio"
	"github.com/ik5/shru/dxx"
	"github.com/ik5/shru/formats/aiff"
	"github.com/ik5/shru/formats/wav"
	"github.com/ik5/shru/internal/checksum"
	"github.com/ik5/shru/internal/config"
	"github.com/ik5/shru/trace"
)

type exportFlags struct {
	outputDir   string
	records     string
	format      string
	bits        int
	fullScale   float32
	rate        float64
	interleave  bool
	workers     int
	bitDepth    string
	sensitivity string
	gain        string
}

func (a *app) exportCmd() *cobra.Command {
	var fl exportFlags

	cmd := &cobra.Command{
		Use:   "export FILE...",
		Short: "Decode DXX files and write the traces as audio",
		Long: `export decodes the selected records of each file to Pascal and writes one
file per record and channel below the output directory, grouped as
<year>/<instrument>/<station>/. With --interleave all channels of a record
share one file.

Records that fail to decode are reported and skipped. The exit status is 2
when any record failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd, args, fl)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fl.outputDir, "output-dir", "o", "", "output directory (default $SHRU_OUTPUT_DIR or Results)")
	f.StringVarP(&fl.records, "records", "r", "", "records to decode, e.g. 0,2,5-9 (default all)")
	f.StringVar(&fl.format, "format", "wav", "output format")
	f.IntVar(&fl.bits, "bits", 24, "PCM bit depth of written files (16 or 24)")
	f.Float32Var(&fl.fullScale, "full-scale", 0, "pressure in Pa written as the largest PCM code (0 scales each file to its peak)")
	f.Float64Var(&fl.rate, "rate", 0, "resample to this rate in Hz (0 keeps the recorder rate)")
	f.BoolVar(&fl.interleave, "interleave", false, "write all channels of a record to one file")
	f.IntVarP(&fl.workers, "workers", "w", 0, "records decoded concurrently (default $SHRU_WORKERS or 1)")
	f.StringVar(&fl.bitDepth, "bit-depth", "", "sample encoding of the recording, 24bit or 16bit (default $SHRU_BIT_DEPTH or 24bit)")
	f.StringVar(&fl.sensitivity, "sensitivity", "", "hydrophone sensitivity in dB re 1V/uPa, one value or one per channel")
	f.StringVar(&fl.gain, "gain", "", "preamplifier gain, one value or one per channel")

	return cmd
}

func (a *app) runExport(cmd *cobra.Command, args []string, fl exportFlags) error {
	opts, err := decodeOptions(a.cfg, fl)
	if err != nil {
		return err
	}

	var records []int
	if fl.records != "" {
		records, err = trace.ParseRecords(fl.records)
		if err != nil {
			return err
		}
	}

	if fl.bits != 16 && fl.bits != 24 {
		return fmt.Errorf("invalid --bits %d: %w", fl.bits, audio.ErrUnsupportedBitDepth)
	}

	registry := newRegistry(fl.bits, fl.fullScale)
	enc, ok := registry.Get(fl.format)
	if !ok {
		formats := registry.Formats()
		slices.Sort(formats)
		return fmt.Errorf("unknown format %q (available: %s)", fl.format, strings.Join(formats, ", "))
	}

	dir := fl.outputDir
	if dir == "" {
		dir = a.cfg.OutputDir
	}

	exportOpts := shru.ExportOptions{Encoder: enc, Rate: fl.rate, Interleave: fl.interleave}

	var failed, total int
	for _, path := range args {
		log := a.log.WithField("file", path)
		opts.Logger = log

		res, err := shru.DecodeFile(cmd.Context(), path, opts, records...)
		if err != nil {
			return err
		}

		written, err := shru.Export(cmd.Context(), res.Segments, dir, exportOpts)
		for _, p := range written {
			fmt.Fprintln(a.out, p)
		}
		if err != nil {
			return err
		}

		n := len(records)
		if n == 0 {
			n = recordCount(res)
		}
		total += n
		failed += len(res.Errors)

		sum, err := checksum.FileChecksum(path)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"fingerprint": sum,
			"segments":    len(res.Segments),
			"files":       len(written),
			"failed":      len(res.Errors),
		}).Info("file exported")
	}

	if failed > 0 {
		return &partialError{failed: failed, total: total}
	}

	return nil
}

// recordCount is the number of records a whole-file decode attempted.
func recordCount(res *trace.Result) int {
	seen := make(map[int]struct{})
	for _, s := range res.Segments {
		seen[s.Record] = struct{}{}
	}
	for _, e := range res.Errors {
		seen[e.Record] = struct{}{}
	}

	return len(seen)
}

// decodeOptions merges command line flags over the configured defaults.
func decodeOptions(cfg *config.Config, fl exportFlags) (trace.Options, error) {
	opts := trace.Options{
		Depth:       cfg.BitDepth,
		Calibration: cfg.Calibration(),
		Workers:     cfg.Workers,
	}

	var err error
	if fl.bitDepth != "" {
		if opts.Depth, err = dxx.ParseBitDepth(fl.bitDepth); err != nil {
			return opts, err
		}
	}
	if fl.sensitivity != "" {
		if opts.Calibration.SensitivityDB, err = config.ParseFloats(fl.sensitivity); err != nil {
			return opts, fmt.Errorf("invalid --sensitivity: %w", err)
		}
	}
	if fl.gain != "" {
		if opts.Calibration.Gain, err = config.ParseFloats(fl.gain); err != nil {
			return opts, fmt.Errorf("invalid --gain: %w", err)
		}
	}
	if fl.workers != 0 {
		if fl.workers < 0 {
			return opts, fmt.Errorf("invalid --workers: %d", fl.workers)
		}
		opts.Workers = fl.workers
	}

	return opts, nil
}

func newRegistry(bits int, fullScale float32) *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Encoder{BitDepth: bits, FullScale: fullScale, Comment: "SHRU hydrophone pressure"})
	r.Register("aiff", aiff.Encoder{BitDepth: bits, FullScale: fullScale})

	return r
}
