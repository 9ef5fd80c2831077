// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const readChunk = 4096

// ReadAll drains src and returns every interleaved sample it produced.
func ReadAll(src Source) ([]float32, error) {
	chunk := readChunk - readChunk%src.Channels()
	buf := make([]float32, chunk)

	var out []float32
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// a source with nothing left and no error is done as well
			return out, nil
		}
	}
}

// readFull reads until dst is full or src is exhausted.
func readFull(src Source, dst []float32) (int, error) {
	total := 0
	for total < len(dst) {
		n, err := src.ReadSamples(dst[total:])
		total += n

		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.EOF
		}
	}

	return total, nil
}
