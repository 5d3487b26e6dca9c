package main

import (
	"bytes"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jajcus/vulkanplay/raster"
)

func TestRun_PNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hm.png")
	var log bytes.Buffer
	require.NoError(t, run([]string{"-seed", "7", "-size", "50", "-v", out}, &log))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	assert.Contains(t, log.String(), "diamondsquare: seed 7\n")
	assert.Contains(t, log.String(), "size 50 rounded up to 64")
	assert.Contains(t, log.String(), "landmasses=")
	assert.Contains(t, log.String(), "/4096 largest=", "summary covers the cropped 64×64 image")
}

// TestRun_Reproducible writes the same seed twice as raw bytes.
func TestRun_Reproducible(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.raw"), filepath.Join(dir, "b.raw")
	require.NoError(t, run([]string{"-seed", "3", "-size", "32", a}, &bytes.Buffer{}))
	require.NoError(t, run([]string{"-seed", "3", "-size", "32", "-tint", b}, &bytes.Buffer{}))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Len(t, da, 32*32)
	assert.Equal(t, da, db)
}

// TestRun_NoCrop summarises the full (size+1)² grid when cropping is off.
func TestRun_NoCrop(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hm.raw")
	var log bytes.Buffer
	require.NoError(t, run([]string{"-seed", "5", "-size", "16", "-crop=false", out}, &log))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, data, 17*17)
	assert.Contains(t, log.String(), "/289 largest=")
}

func TestRun_Errors(t *testing.T) {
	var log bytes.Buffer
	assert.Error(t, run(nil, &log))
	assert.Contains(t, log.String(), "usage: diamondsquare")

	assert.ErrorIs(t, run([]string{"-h"}, &log), flag.ErrHelp)

	err := run([]string{"-seed", "1", filepath.Join(t.TempDir(), "hm.gif")}, &log)
	assert.ErrorIs(t, err, raster.ErrUnknownFormat)

	err = run([]string{"-reduction", "2", filepath.Join(t.TempDir(), "hm.png")}, &log)
	assert.Error(t, err)
}
