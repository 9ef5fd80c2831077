// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/ik5/shru/dxx"
	"github.com/ik5/shru/internal/checksum"
)

const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// InspectResult describes one file for the inspect command.
type InspectResult struct {
	File        string `json:"file" yaml:"file"`
	Size        int    `json:"size" yaml:"size"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
	Records     int    `json:"records" yaml:"records"`

	InstrumentID     int     `json:"instrument_id" yaml:"instrument_id"`
	Channels         int     `json:"channels" yaml:"channels"`
	SamplesPerRecord int     `json:"samples_per_record" yaml:"samples_per_record"`
	RecordLength     int     `json:"record_length" yaml:"record_length"`
	SampleRate       float64 `json:"sample_rate" yaml:"sample_rate"`
	StartTime        string  `json:"start_time" yaml:"start_time"`
	EndTime          string  `json:"end_time" yaml:"end_time"`
	RecordDuration   string  `json:"record_duration" yaml:"record_duration"`

	Temperature float64 `json:"temperature" yaml:"temperature"`
	Voltage     float64 `json:"voltage" yaml:"voltage"`
	Current     float64 `json:"current" yaml:"current"`
	VLA         string  `json:"vla" yaml:"vla"`
	HLA         string  `json:"hla" yaml:"hla"`
}

func newInspectResult(path string, f *dxx.File, sum string) InspectResult {
	h := f.Header
	return InspectResult{
		File:             path,
		Size:             f.Size(),
		Fingerprint:      sum,
		Records:          f.RecordCount(),
		InstrumentID:     h.InstrumentID,
		Channels:         h.ChannelCount,
		SamplesPerRecord: h.SamplesPerRecord,
		RecordLength:     h.RecordLength,
		SampleRate:       h.SampleRate,
		StartTime:        h.StartTime.Format(timeLayout),
		EndTime:          h.EndTime().Format(timeLayout),
		RecordDuration:   h.RecordDuration().String(),
		Temperature:      h.InternalTemperature,
		Voltage:          h.BatteryVoltage,
		Current:          h.BatteryCurrent,
		VLA:              h.VLAID,
		HLA:              h.HLAID,
	}
}

func (a *app) inspectCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Print the header of DXX files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := outputFor(format)
			if err != nil {
				return err
			}

			results := make([]InspectResult, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				f, err := dxx.NewFile(data)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				a.log.WithField("file", path).Debug("header parsed")
				results = append(results, newInspectResult(path, f, checksum.Sum(data)))
			}

			return write(a.out, results)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml)")

	return cmd
}

type outputFunc func(w io.Writer, results []InspectResult) error

func outputFor(format string) (outputFunc, error) {
	switch format {
	case "text":
		return writeText, nil
	case "json":
		return writeJSON, nil
	case "yaml":
		return writeYAML, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, results []InspectResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeYAML(w io.Writer, results []InspectResult) error {
	out, err := yaml.Marshal(results)
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

func writeText(w io.Writer, results []InspectResult) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "File:               %s\n", r.File)
		fmt.Fprintf(w, "Size:               %d bytes\n", r.Size)
		fmt.Fprintf(w, "Fingerprint:        %s\n", r.Fingerprint)
		fmt.Fprintf(w, "Records:            %d\n", r.Records)
		fmt.Fprintf(w, "Instrument:         %d\n", r.InstrumentID)
		fmt.Fprintf(w, "Channels:           %d\n", r.Channels)
		fmt.Fprintf(w, "Samples per record: %d\n", r.SamplesPerRecord)
		fmt.Fprintf(w, "Record length:      %d bytes\n", r.RecordLength)
		fmt.Fprintf(w, "Sample rate:        %g Hz\n", r.SampleRate)
		fmt.Fprintf(w, "Start:              %s\n", r.StartTime)
		fmt.Fprintf(w, "Record duration:    %s\n", r.RecordDuration)
		fmt.Fprintf(w, "Temperature:        %g C\n", r.Temperature)
		fmt.Fprintf(w, "Battery:            %g V, %g A\n", r.Voltage, r.Current)
		if _, err := fmt.Fprintf(w, "Arrays:             VLA %q, HLA %q\n", r.VLA, r.HLA); err != nil {
			return err
		}
	}

	return nil
}
