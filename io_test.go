package pixmat

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rnd := rand.New(rand.NewSource(10))

	t.Run("rgb", func(t *testing.T) {
		m := randomMatrix(t, rnd, 13, 7, 3)
		path := filepath.Join(dir, "rgb.png")

		require.NoError(t, WritePNG(m, path))

		got, err := ReadPNG(path)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Channels())
		assert.Equal(t, m.Data(), got.Data())
	})

	t.Run("gray", func(t *testing.T) {
		m := randomMatrix(t, rnd, 9, 11, 1)
		path := filepath.Join(dir, "gray.png")

		require.NoError(t, WritePNG(m, path))

		got, err := ReadPNG(path)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Channels())
		assert.Equal(t, m.Data(), got.Data())
	})
}

func TestBMPRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rnd := rand.New(rand.NewSource(11))

	t.Run("rgb", func(t *testing.T) {
		m := randomMatrix(t, rnd, 8, 5, 3)
		path := filepath.Join(dir, "rgb.bmp")

		require.NoError(t, WriteBMP(m, path))

		got, err := ReadBMP(path)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Channels())
		assert.Equal(t, m.Data(), got.Data())
	})

	t.Run("gray", func(t *testing.T) {
		// 8-bit BMP decodes as a paletted image, so the values survive but
		// the channel count expands to three.
		m := randomMatrix(t, rnd, 6, 4, 1)
		path := filepath.Join(dir, "gray.bmp")

		require.NoError(t, WriteBMP(m, path))

		got, err := ReadBMP(path)
		require.NoError(t, err)
		assert.Equal(t, m.Width(), got.Width())
		assert.Equal(t, m.Height(), got.Height())
		assert.Equal(t, ToRGB(m).Data(), ToRGB(got).Data())
	})
}

func TestJPEGRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.jpg")

	m := NewRGB(32, 24)
	for i := range m.Data() {
		m.Data()[i] = 120
	}

	require.NoError(t, WriteJPEG(m, path, 95))

	got, err := ReadJPEG(path)
	require.NoError(t, err)
	assert.Equal(t, 32, got.Width())
	assert.Equal(t, 24, got.Height())
	assert.Equal(t, 3, got.Channels())

	// Lossy codec, flat image: values stay close.
	for i, v := range got.Data() {
		assert.InDelta(t, 120, v, 4, "pixel byte %d", i)
	}
}

func TestReadImageSniffsFormat(t *testing.T) {
	dir := t.TempDir()
	rnd := rand.New(rand.NewSource(12))
	m := randomMatrix(t, rnd, 5, 5, 3)

	// The extension does not matter, only the contents.
	pngPath := filepath.Join(dir, "sniff.dat")
	require.NoError(t, WritePNG(m, pngPath))

	got, err := ReadImage(pngPath)
	require.NoError(t, err)
	assert.Equal(t, m.Data(), got.Data())

	bmpPath := filepath.Join(dir, "sniff2.dat")
	require.NoError(t, WriteBMP(m, bmpPath))

	got, err = ReadImage(bmpPath)
	require.NoError(t, err)
	assert.Equal(t, m.Data(), got.Data())
}

func TestReadImageErrors(t *testing.T) {
	_, err := ReadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	badPath := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(badPath, []byte("not an image"), 0o600))

	_, err = ReadImage(badPath)
	assert.Error(t, err)

	_, err = ReadPNG(badPath)
	assert.Error(t, err)
	_, err = ReadJPEG(badPath)
	assert.Error(t, err)
	_, err = ReadBMP(badPath)
	assert.Error(t, err)
}

func TestThumbnail(t *testing.T) {
	m := NewRGB(100, 50)
	for i := range m.Data() {
		m.Data()[i] = 77
	}

	t.Run("downscales preserving aspect", func(t *testing.T) {
		out := Thumbnail(m, 40, 40)
		assert.Equal(t, 40, out.Width())
		assert.Equal(t, 20, out.Height())
	})

	t.Run("fitting image is copied", func(t *testing.T) {
		out := Thumbnail(m, 200, 200)
		assert.Equal(t, m.Data(), out.Data())

		out.Data()[0] = 1
		assert.Equal(t, uint8(77), m.Data()[0])
	})
}
