package raster_test

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"io"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/memfs"

	"github.com/Jajcus/vulkanplay/heightmap"
	"github.com/Jajcus/vulkanplay/material"
	"github.com/Jajcus/vulkanplay/matrix"
	"github.com/Jajcus/vulkanplay/raster"
	"github.com/Jajcus/vulkanplay/rng"
)

func grid3(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows([][]float64{
		{0, 10.4, 20.6},
		{30, 254.5, 300},
		{-4, 60, 70},
	})
	require.NoError(t, err)
	return m
}

func TestByte(t *testing.T) {
	cases := map[float64]uint8{-1: 0, 0: 0, 0.49: 0, 0.5: 1, 127.5: 128, 254.6: 255, 255: 255, 1e9: 255}
	for in, want := range cases {
		assert.Equal(t, want, raster.Byte(in), "Byte(%v)", in)
	}
}

func TestGray(t *testing.T) {
	img, err := raster.Gray(grid3(t), false)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
	assert.Equal(t, uint8(10), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(21), img.GrayAt(2, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(255), img.GrayAt(2, 1).Y)
	assert.Equal(t, uint8(0), img.GrayAt(0, 2).Y)

	cropped, err := raster.Gray(grid3(t), true)
	require.NoError(t, err)
	assert.Equal(t, 2, cropped.Bounds().Dx())
	assert.Equal(t, 2, cropped.Bounds().Dy())
	assert.Equal(t, uint8(30), cropped.GrayAt(0, 1).Y)
}

func TestGray_Errors(t *testing.T) {
	_, err := raster.Gray(nil, false)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	row, err := matrix.NewDense(1, 4)
	require.NoError(t, err)
	_, err = raster.Gray(row, true)
	assert.ErrorIs(t, err, raster.ErrCrop)
}

func TestTint(t *testing.T) {
	img, err := raster.Tint(grid3(t), material.DefaultThresholds(), false)
	require.NoError(t, err)

	snow := material.Snow.Color()
	r, g, b := snow.RGB255()
	px := img.RGBAAt(1, 1)
	assert.Equal(t, [4]uint8{r, g, b, 0xff}, [4]uint8{px.R, px.G, px.B, px.A})

	bad := material.DefaultThresholds()
	bad.Snow = 0
	_, err = raster.Tint(grid3(t), bad, false)
	assert.ErrorIs(t, err, material.ErrThresholds)
}

func TestCoast(t *testing.T) {
	img, err := raster.Coast(grid3(t), false)
	require.NoError(t, err)
	require.Len(t, raster.CoastPalette, 256)
	assert.Equal(t, uint8(255), img.ColorIndexAt(1, 1))
	assert.Equal(t, raster.CoastPalette[0], img.At(0, 0))

	r, g, b := colorful.HSLuv(250, 0.85, 0.30).Clamped().RGB255()
	assert.Equal(t, color.RGBA{R: r, G: g, B: b, A: 0xff}, raster.CoastPalette[0])

	// land is lighter than sea
	sr, sg, sb, _ := raster.CoastPalette[0].RGBA()
	lr, lg, lb, _ := raster.CoastPalette[255].RGBA()
	assert.Greater(t, lr+lg+lb, sr+sg+sb)
}

func TestRaw_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, raster.EncodeRaw(&buf, grid3(t), false))
	assert.Equal(t, []byte{0, 10, 21, 30, 255, 255, 0, 60, 70}, buf.Bytes())

	back, err := raster.DecodeRaw(&buf, 3, 3, 41)
	require.NoError(t, err)
	v, err := back.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 30.0-41, v)
	v, err = back.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 70.0-41, v)
}

func TestDecodeRaw_Errors(t *testing.T) {
	_, err := raster.DecodeRaw(bytes.NewReader([]byte{1, 2, 3}), 2, 2, 0)
	assert.ErrorIs(t, err, raster.ErrShortRead)
	_, err = raster.DecodeRaw(bytes.NewReader(nil), 2, 2, 0)
	assert.ErrorIs(t, err, raster.ErrShortRead)
	_, err = raster.DecodeRaw(bytes.NewReader(nil), 0, 2, 0)
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)

	boom := errors.New("boom")
	_, err = raster.DecodeRaw(io.MultiReader(bytes.NewReader([]byte{1}), errReader{boom}), 2, 2, 0)
	assert.ErrorIs(t, err, boom)
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestFormatFor(t *testing.T) {
	f, err := raster.FormatFor("out/map.PNG")
	require.NoError(t, err)
	assert.Equal(t, raster.PNG, f)

	f, err = raster.FormatFor("heightmap.raw")
	require.NoError(t, err)
	assert.Equal(t, raster.Raw, f)
	assert.Equal(t, "raw", f.String())

	_, err = raster.FormatFor("map.jpg")
	assert.ErrorIs(t, err, raster.ErrUnknownFormat)
}

// TestSave_PNG writes a cropped heightmap to an in-memory filesystem and
// decodes it back.
func TestSave_PNG(t *testing.T) {
	fs := memfs.New()
	grid, err := heightmap.Generate(16, rng.New(3))
	require.NoError(t, err)

	require.NoError(t, raster.Save(fs, "maps/hm.png", grid, raster.StyleGray, true))

	f, err := fs.Open("maps/hm.png")
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	entries, err := fs.ReadDir("maps")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
	assert.Equal(t, "hm.png", entries[0].Name())
}

func TestSave_Raw(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, raster.Save(fs, "hm.raw", grid3(t), raster.StyleGray, true))

	data, err := readFile(t, fs, "hm.raw")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 10, 30, 255}, data)
}

func TestSave_Errors(t *testing.T) {
	fs := memfs.New()
	err := raster.Save(fs, "hm.bmp", grid3(t), raster.StyleGray, false)
	assert.ErrorIs(t, err, raster.ErrUnknownFormat)

	err = raster.Save(fs, "hm.png", nil, raster.StyleTint, false)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestWriteFile_EncoderError removes the temporary file and keeps the
// previous content.
func TestWriteFile_EncoderError(t *testing.T) {
	fs := memfs.New()
	f, err := fs.Create("out.raw")
	require.NoError(t, err)
	_, err = f.Write([]byte("old"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	boom := errors.New("boom")
	err = raster.WriteFile(fs, "out.raw", func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := readFile(t, fs, "out.raw")
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), data)

	entries, err := fs.ReadDir(".")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func readFile(t *testing.T, fs billy.Filesystem, name string) ([]byte, error) {
	t.Helper()
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
