// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/shru/audio"
)

func TestEncoder_RoundTrip16(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.aiff"))
	require.NoError(t, err)
	defer f.Close()

	src := audio.NewBuffer([]float32{0.002, -0.004, 0.001, 0}, 2, 50000)
	require.NoError(t, Encoder{BitDepth: 16}.Encode(f, src))

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	dec := aiff.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	dec.ReadInfo()

	assert.EqualValues(t, 2, dec.NumChans)
	assert.EqualValues(t, 16, dec.BitDepth)
	assert.Equal(t, 50000, dec.Format().SampleRate)

	buf := &goaudio.IntBuffer{Data: make([]int, 16), Format: dec.Format()}
	n, err := dec.PCMBuffer(buf)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 4, n)
	assert.Equal(t, []int{16384, -32767, 8192, 0}, buf.Data[:n])
}

func TestEncoder_UnsupportedDepth(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.aiff"))
	require.NoError(t, err)
	defer f.Close()

	err = Encoder{BitDepth: 32}.Encode(f, audio.NewBuffer([]float32{0}, 1, 8000))
	assert.True(t, errors.Is(err, audio.ErrUnsupportedBitDepth), "got %v", err)
}

func TestEncoder_Ext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".aiff", Encoder{}.Ext())
}
