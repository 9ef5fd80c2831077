// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ik5/shru/audio"
)

const (
	// ChannelCode is the band and instrument code of every hydrophone channel.
	ChannelCode = "HDH"
	// Units of Segment.Data.
	Units = "Pa"
)

// Segment is one channel of one record with its timing metadata.
// It holds copies of the header values it needs and no reference to the file.
type Segment struct {
	Network  string
	Station  string
	Location string
	Channel  string

	StartTime   time.Time
	SampleRate  float64
	Calibration float64
	Units       string

	Record       int
	ChannelIndex int
	// Data is in Pascal with its mean removed.
	Data      []float32
	Truncated bool
}

// NetworkCode is the decimal instrument id.
func NetworkCode(instrumentID int) string { return strconv.Itoa(instrumentID) }

// StationLabel names channel (zero based) the way the recorder's field sheets do.
func StationLabel(channel int) string { return "CHN0" + strconv.Itoa(channel+1) }

// ID is NET.STA.LOC.CHA.
func (s *Segment) ID() string {
	return s.Network + "." + s.Station + "." + s.Location + "." + s.Channel
}

// EndTime is the time of the last sample. An empty segment ends where it starts.
func (s *Segment) EndTime() time.Time {
	if len(s.Data) < 2 {
		return s.StartTime
	}

	d := float64(len(s.Data)-1) / s.SampleRate
	return s.StartTime.Add(time.Duration(d * float64(time.Second)).Round(time.Nanosecond))
}

// Path is the export location of the segment relative to an output directory:
// <year>/<network>/<station>/<id>.<year>.<julday>.<HH>.<M>.<S>.<record><ext>.
func (s *Segment) Path(ext string) string {
	return filepath.Join(strconv.Itoa(s.StartTime.Year()), s.Network, s.Station, stamp(s.ID(), s.StartTime, s.Record)+ext)
}

// RecordPath is the export location of a whole record when its channels are
// written to one file: <year>/<network>/<network>.<year>.<julday>.<HH>.<M>.<S>.<record><ext>.
func (s *Segment) RecordPath(ext string) string {
	return filepath.Join(strconv.Itoa(s.StartTime.Year()), s.Network, stamp(s.Network, s.StartTime, s.Record)+ext)
}

func stamp(prefix string, t time.Time, record int) string {
	return fmt.Sprintf("%s.%d.%d.%02d.%d.%d.%d", prefix, t.Year(), t.YearDay(), t.Hour(), t.Minute(), t.Second(), record)
}

// Source exposes Data as a mono audio stream. The stream shares Data.
func (s *Segment) Source() audio.Source {
	return audio.NewBuffer(s.Data, 1, s.SampleRate)
}
