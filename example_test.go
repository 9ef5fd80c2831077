// SPDX-License-Identifier: EPL-2.0

package shru_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/shru"
	"github.com/ik5/shru/dxx"
	"github.com/ik5/shru/internal/dxxtest"
	"github.com/ik5/shru/trace"
)

func writeFixture() (string, func()) {
	dir, _ := os.MkdirTemp("", "shru")
	path := filepath.Join(dir, "D23.DXX")
	data := dxxtest.Build(dxxtest.DefaultSpec(), 3, func(_, sample, _ int) int32 { return int32(sample) })
	_ = os.WriteFile(path, data, 0o600)

	return path, func() { os.RemoveAll(dir) }
}

// Example_decodeFile demonstrates decoding selected records of a file.
func Example_decodeFile() {
	path, cleanup := writeFixture()
	defer cleanup()

	res, err := shru.DecodeFile(context.Background(), path, trace.Options{
		Depth:       dxx.Depth24,
		Calibration: dxx.Calibration{SensitivityDB: []float64{-170}, Gain: []float64{1}},
	}, 2, 0, 5)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	for _, seg := range res.Segments {
		fmt.Printf("%s record %d at %s\n", seg.ID(), seg.Record, seg.StartTime.Format("15:04:05.000000"))
	}
	for _, rerr := range res.Errors {
		fmt.Println(rerr.Error())
	}
	// Output:
	// 305.CHN01..HDH record 0 at 12:34:56.123456
	// 305.CHN02..HDH record 0 at 12:34:56.123456
	// 305.CHN01..HDH record 2 at 12:34:56.131456
	// 305.CHN02..HDH record 2 at 12:34:56.131456
	// record 5: record out of range: record 5, file has 3
}
