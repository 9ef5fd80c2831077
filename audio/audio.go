// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

type Source interface {
	// SampleRate of the stream in Hz. Recorder rates are not always integral.
	SampleRate() float64
	// Channels count.
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in physical units.
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Encoder writes a whole Source to a seekable output in one container format.
type Encoder interface {
	Encode(w io.WriteSeeker, src Source) error
	// Ext is the file extension including the dot, e.g. ".wav".
	Ext() string
}

// Registry of export encoders by format key (e.g., "wav", "aiff").
type Registry struct {
	codecs map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Encoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = e
}

func (r *Registry) Get(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.codecs[format]
	return e, ok
}

// Formats lists the registered keys in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}

	return keys
}
