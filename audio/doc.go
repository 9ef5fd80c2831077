// SPDX-License-Identifier: EPL-2.0

// Package audio streams decoded pressure samples toward export encoders.
//
// Everything here implements or consumes Source:
//
//	type Source interface {
//	    SampleRate() float64
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in physical units (Pascal for
// hydrophone traces), not normalized to [-1, 1]. Sample rates are float64
// because recorders report rates such as 1984.375 Hz.
//
// # Building Blocks
//
//   - Buffer wraps an in-memory segment
//   - Resampler converts the rate with cubic interpolation
//   - Interleaver merges per-channel segments into one stream
//   - IntBuffer quantizes samples into a go-audio buffer for PCM encoders
//   - Registry maps a format key to an Encoder
//
// A typical export chains them:
//
//	il, _ := audio.NewInterleaver(audio.NewBuffer(ch0, 1, rate), audio.NewBuffer(ch1, 1, rate))
//	r := audio.NewResampler(il, 48000)
//	enc, _ := registry.Get("wav")
//	err := enc.Encode(out, r)
//
// # End of Stream
//
// ReadSamples returns io.EOF when no more data is available, possibly
// together with the final samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// ReadAll performs this loop and returns the whole stream.
package audio
