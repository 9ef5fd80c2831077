// SPDX-License-Identifier: EPL-2.0

// Package shru decodes recordings of the SHRU underwater acoustic recorder.
//
// A .DXX file holds a 1024-byte header followed by fixed-length records of
// interleaved channel samples, stored as 24-bit linear or 16-bit companded
// big-endian codes. The packages of this module split the work:
//
//   - dxx parses the header and decodes records to Pascal
//   - trace assembles per-channel segments with start times and DC removal
//   - audio, formats/wav and formats/aiff stream segments into PCM files
//
// # Quick Start
//
// DecodeFile wires the pieces for the common case:
//
//	res, err := shru.DecodeFile(ctx, "D23.DXX", trace.Options{
//	    Depth:       dxx.Depth24,
//	    Calibration: dxx.Calibration{SensitivityDB: []float64{-170}, Gain: []float64{1}},
//	})
//	if err != nil {
//	    return err // unreadable header, bad options or ctx done
//	}
//	for _, rerr := range res.Errors {
//	    log.Printf("record %d: %v", rerr.Record, rerr.Err)
//	}
//	for _, seg := range res.Segments {
//	    fmt.Println(seg.ID(), seg.StartTime, len(seg.Data))
//	}
//
// Export writes the segments out, one file per channel or one per record:
//
//	paths, err := shru.Export(ctx, res.Segments, "Results", shru.ExportOptions{
//	    Encoder: wav.Encoder{BitDepth: 24},
//	})
//
// # Errors
//
// Header problems are fatal and returned directly (dxx.ErrMalformedHeader).
// Problems with single records never abort a batch; they are listed in
// trace.Result.Errors next to the segments that did decode.
package shru
