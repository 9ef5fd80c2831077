// SPDX-License-Identifier: EPL-2.0

// Package wav exports audio sources as linear PCM WAV files.
//
// It uses github.com/go-audio/wav for the RIFF container. Samples are drained
// from the source, quantized by audio.IntBuffer and written in one pass, so
// the output must be an io.WriteSeeker (the chunk sizes are patched on Close).
//
//	f, _ := os.Create("2023/305/CHN01/305.2023.045.12.34.56.wav")
//	defer f.Close()
//	err := wav.Encoder{BitDepth: 24}.Encode(f, source)
//
// Recorder rates are rounded to whole Hz because the WAVE header stores an
// integer rate. Pressure traces are scaled to FullScale, or to their own peak
// when FullScale is zero.
package wav
