// SPDX-License-Identifier: EPL-2.0

package dxx

import (
	"fmt"
	"os"
)

const mPaToPa = 1e-3

// File is a DXX file held in memory. The buffer is never written after Open,
// so one File may be decoded from several goroutines at once.
type File struct {
	Header *FileHeader
	data   []byte
}

// Open reads the whole file at path and parses its header.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return NewFile(data)
}

// NewFile parses the header of data and keeps data for record decoding.
// The caller must not modify data afterwards.
func NewFile(data []byte) (*File, error) {
	h, err := ParseHeaderBytes(data)
	if err != nil {
		return nil, err
	}

	return &File{Header: h, data: data}, nil
}

// Size is the length of the file in bytes.
func (f *File) Size() int { return len(f.data) }

// RecordCount is the number of records whose data starts inside the file,
// including a trailing partial record.
func (f *File) RecordCount() int {
	body := len(f.data) - HeaderSize
	if body <= 0 {
		return 0
	}

	return (body + f.Header.RecordLength - 1) / f.Header.RecordLength
}

// RecordOffset is the absolute byte offset of record.
func (f *File) RecordOffset(record int) int {
	return HeaderSize + f.Header.RecordLength*record
}

// Waveform holds the calibrated samples of one record, one slice per channel.
type Waveform struct {
	Record   int
	Channels [][]float32 // Pascal
	// Samples is the number of complete sample groups decoded.
	Samples   int
	Truncated bool
}

// DecodeRecord decodes record into per-channel pressure samples.
//
// A record cut short by the end of the file yields the complete sample groups
// that are present, Truncated set, and an error wrapping ErrTruncatedRecord.
func (f *File) DecodeRecord(record int, depth BitDepth, cal Calibration) (*Waveform, error) {
	c, err := depth.codec()
	if err != nil {
		return nil, err
	}

	h := f.Header
	sens, gain, err := cal.perChannel(h.ChannelCount)
	if err != nil {
		return nil, err
	}

	if record < 0 || record >= f.RecordCount() {
		return nil, fmt.Errorf("%w: record %d, file has %d", ErrRecordOutOfRange, record, f.RecordCount())
	}

	stride := h.ChannelCount * c.width
	if h.SamplesPerRecord*stride > h.RecordLength {
		return nil, fmt.Errorf("%w: %d groups of %d bytes in %d bytes",
			ErrRecordLayout, h.SamplesPerRecord, stride, h.RecordLength)
	}

	start := f.RecordOffset(record)
	end := min(start+h.RecordLength, len(f.data))
	groups := min(h.SamplesPerRecord, (end-start)/stride)

	scale := make([]float64, h.ChannelCount)
	for ch := range scale {
		scale[ch] = 2.5 / c.fullScale / gain[ch]
	}

	w := &Waveform{
		Record:    record,
		Channels:  make([][]float32, h.ChannelCount),
		Samples:   groups,
		Truncated: groups < h.SamplesPerRecord,
	}
	for ch := range w.Channels {
		w.Channels[ch] = make([]float32, groups)
	}

	buf := f.data[start : start+groups*stride]
	for i := range groups {
		group := buf[i*stride:]
		for ch := range h.ChannelCount {
			v := c.counts(group[ch*c.width:])
			w.Channels[ch][i] = float32(v * scale[ch] * sens[ch] * mPaToPa)
		}
	}

	if w.Truncated {
		return w, fmt.Errorf("%w: record %d has %d of %d sample groups",
			ErrTruncatedRecord, record, groups, h.SamplesPerRecord)
	}

	return w, nil
}

// DecodeRecord reads the file at path and decodes one record using header in
// place of the header stored in the file. A nil header uses the stored one.
func DecodeRecord(path string, header *FileHeader, record int, depth BitDepth, cal Calibration) (*Waveform, error) {
	if err := depth.Validate(); err != nil {
		return nil, err
	}

	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	if header != nil {
		f.Header = header
	}

	return f.DecodeRecord(record, depth, cal)
}
