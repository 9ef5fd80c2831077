// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Mean is the arithmetic mean of x, accumulated in float64. Empty input yields 0.
func Mean(x []float32) float64 {
	if len(x) == 0 {
		return 0
	}

	var sum float64
	for _, v := range x {
		sum += float64(v)
	}

	return sum / float64(len(x))
}

// RemoveMean subtracts the mean of x in place and returns it.
func RemoveMean(x []float32) float64 {
	m := Mean(x)
	for i := range x {
		x[i] = float32(float64(x[i]) - m)
	}

	return m
}

// Peak is the largest absolute value in x.
func Peak(x []float32) float32 {
	var p float64
	for _, v := range x {
		p = math.Max(p, math.Abs(float64(v)))
	}

	return float32(p)
}
