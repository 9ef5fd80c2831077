// SPDX-License-Identifier: EPL-2.0

// Package dxx decodes the binary files written by SHRU acoustic recorders.
//
// A DXX file starts with a 1024-byte header followed by fixed-length records.
// Each record holds SamplesPerRecord sample groups; a group is one big-endian
// sample code per channel, in channel order.
//
// # Header
//
// Binary fields (date, channel count, samples per record, sample rate, record
// length) are big-endian integers and floats. Instrument telemetry is stored
// as ASCII-packed fields: 16 bytes where only the printable ASCII bytes count.
// Those bytes are concatenated, cut to a field-specific width and parsed:
//
//	temperature  4 characters
//	voltage      4 characters
//	current      3 characters
//	instrument   3 characters, integer
//	time        15 characters, HH:MM:SS.ffffff
//
// # Records
//
// Record r starts at byte 1024 + RecordLength*r:
//
//	f, err := dxx.Open("file.D23")
//	if err != nil {
//	    return err
//	}
//	w, err := f.DecodeRecord(0, dxx.Depth24, dxx.Calibration{
//	    SensitivityDB: []float64{-170},
//	    Gain:          []float64{1},
//	})
//
// Samples come back in Pascal. Two encodings exist:
//   - Depth24: 24-bit linear codes over a 2.5 V / 2^23 full scale
//   - Depth16: 16-bit companded codes whose two low bits carry an exponent
//
// # Errors
//
// Header problems wrap ErrMalformedHeader. Record problems wrap
// ErrRecordOutOfRange, ErrTruncatedRecord or ErrRecordLayout; a truncated
// record is still returned with the sample groups that were present.
package dxx
