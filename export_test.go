// SPDX-License-Identifier: EPL-2.0

package shru

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gowav "github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/shru/formats/aiff"
	"github.com/ik5/shru/formats/wav"
	"github.com/ik5/shru/internal/dxxtest"
	"github.com/ik5/shru/trace"
)

func decodeFixture(t *testing.T, records int) *trace.Result {
	t.Helper()

	path := dxxtest.WriteTemp(t, dxxtest.Build(dxxtest.DefaultSpec(), records, func(r, sample, ch int) int32 {
		return int32((sample%20)*100*(ch+1) + r)
	}))

	res, err := DecodeFile(context.Background(), path, unityOptions())
	require.NoError(t, err)

	return res
}

func readWAV(t *testing.T, path string) *gowav.Decoder {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	dec := gowav.NewDecoder(f)
	dec.ReadInfo()
	require.NoError(t, dec.Err())

	return dec
}

func TestExport_PerChannel(t *testing.T) {
	t.Parallel()

	res := decodeFixture(t, 2)
	dir := t.TempDir()

	paths, err := Export(context.Background(), res.Segments, dir, ExportOptions{Encoder: wav.Encoder{BitDepth: 16}})
	require.NoError(t, err)
	require.Len(t, paths, 4)

	assert.Equal(t, filepath.Join(dir, res.Segments[0].Path(".wav")), paths[0])
	assert.Equal(t, filepath.Join(dir, "2023", "305", "CHN02", "305.CHN02..HDH.2023.45.12.34.56.1.wav"), paths[3])

	dec := readWAV(t, paths[1])
	assert.EqualValues(t, 1, dec.NumChans)
	assert.EqualValues(t, 50000, dec.SampleRate)
	assert.EqualValues(t, 16, dec.BitDepth)

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Len(t, buf.Data, 200)
}

func TestExport_InterleavedResampled(t *testing.T) {
	t.Parallel()

	res := decodeFixture(t, 2)
	dir := t.TempDir()

	paths, err := Export(context.Background(), res.Segments, dir, ExportOptions{
		Encoder:    wav.Encoder{},
		Rate:       10000,
		Interleave: true,
	})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "2023", "305", "305.2023.45.12.34.56.0.wav"), paths[0])

	dec := readWAV(t, paths[0])
	assert.EqualValues(t, 2, dec.NumChans)
	assert.EqualValues(t, 10000, dec.SampleRate)
	assert.EqualValues(t, 24, dec.BitDepth)

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Len(t, buf.Data, 2*40)
}

func TestExport_AIFF(t *testing.T) {
	t.Parallel()

	res := decodeFixture(t, 1)

	paths, err := Export(context.Background(), res.Segments[:1], t.TempDir(), ExportOptions{Encoder: aiff.Encoder{BitDepth: 16}})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, ".aiff", filepath.Ext(paths[0]))

	info, err := os.Stat(paths[0])
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(400))
}

func TestExport_Errors(t *testing.T) {
	t.Parallel()

	res := decodeFixture(t, 1)

	_, err := Export(context.Background(), res.Segments, t.TempDir(), ExportOptions{})
	assert.ErrorIs(t, err, ErrNoEncoder)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := Export(ctx, res.Segments, t.TempDir(), ExportOptions{Encoder: wav.Encoder{}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, paths)
}
