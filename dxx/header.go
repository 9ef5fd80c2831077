// SPDX-License-Identifier: EPL-2.0

package dxx

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"
)

// HeaderSize is the size of the fixed header block at the start of a DXX file.
const HeaderSize = 1024

// Byte offsets of the header fields. Multi-byte binary fields are big-endian.
const (
	offDate         = 0   // 2x uint16: year, day of year
	offTime         = 4   // 2x uint16: minute of day, millisecond
	offChannels     = 8   // uint16
	offSamples      = 10  // int32
	offSampleRate   = 14  // float32
	offRecordLength = 18  // uint32
	offTemperature  = 22  // ASCII-packed
	offVoltage      = 38  // ASCII-packed
	offCurrent      = 54  // ASCII-packed
	offInstrument   = 70  // ASCII-packed
	offVLA          = 86  // ASCII-packed
	offHLA          = 102 // ASCII-packed
	offAcqTime      = 118 // ASCII-packed

	asciiFieldSize = 16
)

// Characters kept from each ASCII-packed field before conversion. These are
// fixed by the recorder firmware.
const (
	temperatureChars = 4
	voltageChars     = 4
	currentChars     = 3
	instrumentChars  = 3
	timeChars        = 15
)

const startTimeLayout = "2006-002T15:04:05.999999"

// FileHeader is the decoded header block of a DXX file. It is never modified
// after ParseHeader returns it.
type FileHeader struct {
	InstrumentID     int
	ChannelCount     int
	SamplesPerRecord int
	// RecordLength is the byte stride between consecutive records.
	RecordLength int
	SampleRate   float64
	StartTime    time.Time

	InternalTemperature float64 // degrees Celsius
	BatteryVoltage      float64 // volts
	BatteryCurrent      float64 // amperes

	VLAID string
	HLAID string

	// Raw date and time words as stored in the header.
	Year        int
	DayOfYear   int
	Minute      int
	Millisecond int
}

// SampleInterval is the time between two samples of a channel, in seconds.
func (h *FileHeader) SampleInterval() float64 { return 1 / h.SampleRate }

// RecordDuration is the time spanned by the samples of one record.
func (h *FileHeader) RecordDuration() time.Duration {
	return seconds(float64(h.SamplesPerRecord) * h.SampleInterval())
}

// EndTime is StartTime advanced by one record duration.
func (h *FileHeader) EndTime() time.Time { return h.StartTime.Add(h.RecordDuration()) }

// RecordStart returns the time of the first sample of record.
func (h *FileHeader) RecordStart(record int) time.Time {
	return h.StartTime.Add(seconds(float64(record) * float64(h.SamplesPerRecord) * h.SampleInterval()))
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// ParseHeader reads the header of the DXX file at path.
func ParseHeader(path string) (*FileHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadHeader(f)
}

// ReadHeader reads exactly HeaderSize bytes from r and decodes them.
func ReadHeader(r io.Reader) (*FileHeader, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}

	return ParseHeaderBytes(buf)
}

// ParseHeaderBytes decodes the first HeaderSize bytes of b.
func ParseHeaderBytes(b []byte) (*FileHeader, error) {
	if len(b) < HeaderSize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrMalformedHeader, HeaderSize, len(b))
	}
	b = b[:HeaderSize]
	be := binary.BigEndian

	h := &FileHeader{
		Year:             int(be.Uint16(b[offDate:])),
		DayOfYear:        int(be.Uint16(b[offDate+2:])),
		Minute:           int(be.Uint16(b[offTime:])),
		Millisecond:      int(be.Uint16(b[offTime+2:])),
		ChannelCount:     int(be.Uint16(b[offChannels:])),
		SamplesPerRecord: int(int32(be.Uint32(b[offSamples:]))),
		SampleRate:       float64(math.Float32frombits(be.Uint32(b[offSampleRate:]))),
		RecordLength:     int(be.Uint32(b[offRecordLength:])),
		VLAID:            strings.TrimSpace(asciiPacked(field(b, offVLA))),
		HLAID:            strings.TrimSpace(asciiPacked(field(b, offHLA))),
	}

	var err error
	if h.InternalTemperature, err = asciiFloat(field(b, offTemperature), temperatureChars); err != nil {
		return nil, malformed("internal temperature", err)
	}
	if h.BatteryVoltage, err = asciiFloat(field(b, offVoltage), voltageChars); err != nil {
		return nil, malformed("battery voltage", err)
	}
	if h.BatteryCurrent, err = asciiFloat(field(b, offCurrent), currentChars); err != nil {
		return nil, malformed("battery current", err)
	}
	if h.InstrumentID, err = asciiInt(field(b, offInstrument), instrumentChars); err != nil {
		return nil, malformed("instrument id", err)
	}

	stamp := fmt.Sprintf("%04d-%03dT%s", h.Year, h.DayOfYear, asciiPrefix(field(b, offAcqTime), timeChars))
	start, err := time.Parse(startTimeLayout, stamp)
	if err != nil {
		return nil, malformed("start time", err)
	}
	h.StartTime = start.Truncate(time.Microsecond)

	if err := h.validate(); err != nil {
		return nil, err
	}

	return h, nil
}

func (h *FileHeader) validate() error {
	switch {
	case h.ChannelCount < 1:
		return fmt.Errorf("%w: channel count %d", ErrMalformedHeader, h.ChannelCount)
	case h.SamplesPerRecord < 1:
		return fmt.Errorf("%w: samples per record %d", ErrMalformedHeader, h.SamplesPerRecord)
	case !(h.SampleRate > 0) || math.IsInf(h.SampleRate, 0):
		return fmt.Errorf("%w: sample rate %v", ErrMalformedHeader, h.SampleRate)
	case h.RecordLength <= HeaderSize:
		return fmt.Errorf("%w: record length %d must exceed %d", ErrMalformedHeader, h.RecordLength, HeaderSize)
	}

	return nil
}

func field(b []byte, off int) []byte { return b[off : off+asciiFieldSize] }

func malformed(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedHeader, name, err)
}
