// SPDX-License-Identifier: EPL-2.0

// Package trace turns decoded DXX records into per-channel time series.
//
// Assemble decodes a set of records and returns one Segment per (record,
// channel), ordered by record and then channel. Each segment starts at
// header.StartTime + record * SamplesPerRecord / SampleRate, carries its data
// in Pascal with the mean removed, and is named after the instrument
// (network) and channel (station "CHN01", "CHN02", ...).
//
// A record that fails to decode is reported in Result.Errors and the rest of
// the batch still completes. A truncated trailing record contributes both its
// partial segments and an error wrapping dxx.ErrTruncatedRecord.
//
//	f, _ := dxx.Open("D23.DXX")
//	res, err := trace.Assemble(ctx, f, nil, trace.Options{
//	    Depth:       dxx.Depth24,
//	    Calibration: dxx.Calibration{SensitivityDB: []float64{-170}, Gain: []float64{1}},
//	    Workers:     4,
//	})
package trace
