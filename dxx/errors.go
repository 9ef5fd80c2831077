// SPDX-License-Identifier: EPL-2.0

package dxx

import "errors"

var (
	// ErrMalformedHeader indicates the 1024-byte header could not be read or a
	// field in it failed conversion. It is fatal for the file.
	ErrMalformedHeader = errors.New("malformed DXX header")
	// ErrRecordOutOfRange indicates a record index outside the records present in the file
	ErrRecordOutOfRange = errors.New("record out of range")
	// ErrTruncatedRecord indicates the file ends before the last sample group of a
	// record. The partial waveform is returned alongside it.
	ErrTruncatedRecord = errors.New("truncated record")
	// ErrUnsupportedBitDepth indicates a bit depth other than 16 or 24 bits
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrInvalidCalibration indicates sensitivity or gain values that do not match the channel count
	ErrInvalidCalibration = errors.New("invalid calibration")
	// ErrRecordLayout indicates that a record's sample groups do not fit in the record length
	ErrRecordLayout = errors.New("sample groups exceed record length")
)
