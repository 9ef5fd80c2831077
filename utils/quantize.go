// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Quantize maps x in [-fullScale, fullScale] to a signed PCM code of bitDepth
// bits, clamping values outside the range. A non-positive fullScale yields 0.
func Quantize(x, fullScale float32, bitDepth int) int {
	if !(fullScale > 0) {
		return 0
	}

	top := float64(int(1)<<(bitDepth-1)) - 1
	v := math.Round(float64(x) / float64(fullScale) * top)

	switch {
	case math.IsNaN(v):
		return 0
	case v > top:
		return int(top)
	case v < -top-1:
		return int(-top - 1)
	}

	return int(v)
}
