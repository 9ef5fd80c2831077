// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"fmt"
	"io"
	"os"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/shru/audio"
	"github.com/ik5/shru/formats/aiff"
)

// Example demonstrates exporting a mono segment as AIFF.
func Example() {
	f, err := os.CreateTemp("", "segment-*.aiff")
	if err != nil {
		fmt.Printf("Create error: %v\n", err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	src := audio.NewBuffer([]float32{0.01, 0.02, -0.02}, 1, 8000)
	if err := (aiff.Encoder{BitDepth: 16}).Encode(f, src); err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	_, _ = f.Seek(0, io.SeekStart)
	dec := goaiff.NewDecoder(f)
	dec.ReadInfo()

	fmt.Printf("Channels: %d\n", dec.NumChans)
	fmt.Printf("Sample rate: %d Hz\n", dec.SampleRate)
	// Output:
	// Channels: 1
	// Sample rate: 8000 Hz
}
