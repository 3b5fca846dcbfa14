package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpfielding/pixfilt.go/pkg/filter"
	"github.com/jpfielding/pixfilt.go/pkg/pngio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, rgb []byte, width, height int) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, pngio.EncodeRGB(&buf, rgb, width, height))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func readTestPNG(t *testing.T, path string) ([]byte, int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rgb, w, h, err := pngio.DecodeRGB(f)
	require.NoError(t, err)
	return rgb, w, h
}

func TestRunApply_Greyscale(t *testing.T) {
	dir := t.TempDir()
	const width, height = 4, 3
	rgb := make([]byte, width*height*3)
	for i := range rgb {
		rgb[i] = byte((i * 19) % 256)
	}
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	writeTestPNG(t, in, rgb, width, height)

	require.NoError(t, runApply(context.Background(), "greyscale", in, out, 10))

	got, w, h := readTestPNG(t, out)
	require.Equal(t, width, w)
	require.Equal(t, height, h)

	// greyscale goes out as a grey PNG, so all three decoded channels carry luma
	want, err := filter.Greyscale(rgb)
	require.NoError(t, err)
	for i := 0; i < width*height; i++ {
		assert.Equal(t, want[i], got[i*3], "pixel %d", i)
		assert.Equal(t, want[i], got[i*3+1], "pixel %d", i)
		assert.Equal(t, want[i], got[i*3+2], "pixel %d", i)
	}
}

func TestRunApply_Invert(t *testing.T) {
	dir := t.TempDir()
	const width, height = 3, 2
	rgb := []byte{
		0, 10, 20, 30, 40, 50,
		200, 210, 220, 230, 240, 250,
		5, 15, 25, 35, 45, 55,
	}
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	writeTestPNG(t, in, rgb, width, height)

	require.NoError(t, runApply(context.Background(), "invert", in, out, 10))

	got, w, h := readTestPNG(t, out)
	require.Equal(t, width, w)
	require.Equal(t, height, h)
	for i := range rgb {
		assert.Equal(t, 255-rgb[i], got[i], "byte %d", i)
	}
}

func TestRunApply_UnknownFilter(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeTestPNG(t, in, []byte{1, 2, 3}, 1, 1)

	err := runApply(context.Background(), "sharpen", in, filepath.Join(dir, "out.png"), 10)
	assert.ErrorContains(t, err, "unknown filter")
}

func TestRunApply_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := runApply(context.Background(), "greyscale", filepath.Join(dir, "nope.png"), filepath.Join(dir, "out.png"), 10)
	assert.Error(t, err)
}
