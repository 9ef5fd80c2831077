// SPDX-License-Identifier: EPL-2.0

// Package dxxtest builds synthetic DXX files for tests.
package dxxtest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const headerSize = 1024

// Spec describes the header of a synthetic file. Zero values are replaced by
// the defaults of DefaultSpec where noted.
type Spec struct {
	Year, DayOfYear     int
	Minute, Millisecond int
	Clock               string // acquisition time, HH:MM:SS.ffffff

	Channels         int
	SamplesPerRecord int
	SampleRate       float32
	RecordLength     int // defaults to the packed size of one record

	Temperature string
	Voltage     string
	Current     string
	Instrument  string
	VLA, HLA    string

	// BytesPerSample is used only to derive RecordLength.
	BytesPerSample int
}

// DefaultSpec returns a valid two channel 24-bit layout.
func DefaultSpec() Spec {
	return Spec{
		Year:             2023,
		DayOfYear:        45,
		Minute:           754,
		Millisecond:      123,
		Clock:            "12:34:56.123456",
		Channels:         2,
		SamplesPerRecord: 200,
		SampleRate:       50000,
		BytesPerSample:   3,
		Temperature:      "21.75",
		Voltage:          "14.20",
		Current:          "0.15",
		Instrument:       "305",
		VLA:              "VLA1",
		HLA:              "HLA2",
	}
}

// Stride is the size of one sample group.
func (s Spec) Stride() int { return s.Channels * s.BytesPerSample }

// Length is RecordLength, or the packed record size when unset.
func (s Spec) Length() int {
	if s.RecordLength != 0 {
		return s.RecordLength
	}

	return s.SamplesPerRecord * s.Stride()
}

// Header encodes the 1024-byte header block for s.
func Header(s Spec) []byte {
	b := make([]byte, headerSize)
	be := binary.BigEndian

	be.PutUint16(b[0:], uint16(s.Year))
	be.PutUint16(b[2:], uint16(s.DayOfYear))
	be.PutUint16(b[4:], uint16(s.Minute))
	be.PutUint16(b[6:], uint16(s.Millisecond))
	be.PutUint16(b[8:], uint16(s.Channels))
	be.PutUint32(b[10:], uint32(int32(s.SamplesPerRecord)))
	be.PutUint32(b[14:], math.Float32bits(s.SampleRate))
	be.PutUint32(b[18:], uint32(s.Length()))

	PutASCII(b[22:38], s.Temperature)
	PutASCII(b[38:54], s.Voltage)
	PutASCII(b[54:70], s.Current)
	PutASCII(b[70:86], s.Instrument)
	PutASCII(b[86:102], s.VLA)
	PutASCII(b[102:118], s.HLA)
	PutASCII(b[118:134], s.Clock)

	return b
}

// PutASCII copies s into dst and pads the rest with NUL bytes.
func PutASCII(dst []byte, s string) {
	n := copy(dst, s)
	clear(dst[n:])
}

// Put24 stores v as a 24-bit big-endian two's-complement code.
func Put24(b []byte, v int32) {
	u := uint32(v)
	b[0] = byte(u >> 16)
	b[1] = byte(u >> 8)
	b[2] = byte(u)
}

// Put16 stores v as a 16-bit big-endian code.
func Put16(b []byte, v int16) {
	binary.BigEndian.PutUint16(b, uint16(v))
}

// Build returns a file with the given number of records. code supplies the
// raw sample code of each (record, sample, channel).
func Build(s Spec, records int, code func(record, sample, channel int) int32) []byte {
	length := s.Length()
	out := make([]byte, headerSize+records*length)
	copy(out, Header(s))

	for r := range records {
		rec := out[headerSize+r*length:]
		for i := range s.SamplesPerRecord {
			for ch := range s.Channels {
				p := rec[i*s.Stride()+ch*s.BytesPerSample:]
				v := code(r, i, ch)
				switch s.BytesPerSample {
				case 2:
					Put16(p, int16(v))
				default:
					Put24(p, v)
				}
			}
		}
	}

	return out
}

// WriteTemp writes data to a file inside a test temporary directory.
func WriteTemp(tb testing.TB, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "test.D23")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}

	return path
}
