// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/shru/audio"
	"github.com/ik5/shru/internal/audiotest"
)

func encodeToFile(t *testing.T, e Encoder, src audio.Source) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	require.NoError(t, e.Encode(f, src))

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	return f
}

func TestEncoder_RoundTrip24(t *testing.T) {
	t.Parallel()

	src := audio.NewBuffer([]float32{0.5, -0.5, 1, -1, 0, 0.25}, 2, 50000)
	f := encodeToFile(t, Encoder{BitDepth: 24, FullScale: 1}, src)

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, uint16(2), dec.NumChans)
	assert.Equal(t, uint32(50000), dec.SampleRate)
	assert.Equal(t, uint16(24), dec.BitDepth)
	assert.Equal(t, []int{4194304, -4194304, 8388607, -8388607, 0, 2097152}, buf.Data)
}

func TestEncoder_DefaultDepthAndPeak(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(1984.375, 1, 400, 100, 0.003)
	f := encodeToFile(t, Encoder{}, src)

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, uint16(24), dec.BitDepth)
	assert.Equal(t, uint32(1984), dec.SampleRate)
	require.Len(t, buf.Data, 400)

	peak := 0
	for _, v := range buf.Data {
		peak = max(peak, v, -v)
	}
	assert.Equal(t, 8388607, peak)
}

func TestEncoder_Comment(t *testing.T) {
	t.Parallel()

	src := audio.NewBuffer([]float32{0.1, 0.2}, 1, 8000)
	f := encodeToFile(t, Encoder{BitDepth: 16, Comment: "305.2023.045.12.34.56"}, src)

	dec := wav.NewDecoder(f)
	dec.ReadMetadata()
	require.NoError(t, dec.Err())
	require.NotNil(t, dec.Metadata)
	assert.Equal(t, "305.2023.045.12.34.56", dec.Metadata.Comments)
}

func TestEncoder_UnsupportedDepth(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	require.NoError(t, err)
	defer f.Close()

	err = Encoder{BitDepth: 8}.Encode(f, audio.NewBuffer([]float32{0}, 1, 8000))
	assert.True(t, errors.Is(err, audio.ErrUnsupportedBitDepth), "got %v", err)
}

func TestEncoder_Ext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".wav", Encoder{}.Ext())
}
