// SPDX-License-Identifier: EPL-2.0

// Package aiff exports audio sources as uncompressed AIFF files.
//
// This package uses github.com/go-audio/aiff for the container. AIFF stores
// big-endian PCM, which some acoustic analysis tools on macOS prefer over WAV.
//
//	f, _ := os.Create("segment.aiff")
//	defer f.Close()
//	err := aiff.Encoder{BitDepth: 16}.Encode(f, source)
//
// As with WAV export, the rate is rounded to whole Hz and samples are scaled
// to FullScale or to the peak of the source.
package aiff
