package pixmat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New(3, 2, 1, make([]uint8, 6))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 1, m.Channels())

	m, err = New(3, 2, 3, make([]uint8, 18))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Channels())

	w, h := m.Dimensions()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
}

func TestNewInvalid(t *testing.T) {
	for _, tc := range []struct {
		name     string
		width    int
		height   int
		channels int
		dataLen  int
	}{
		{name: "two channels", width: 2, height: 2, channels: 2, dataLen: 8},
		{name: "zero channels", width: 2, height: 2, channels: 0, dataLen: 0},
		{name: "negative width", width: -1, height: 2, channels: 1, dataLen: 0},
		{name: "negative height", width: 2, height: -1, channels: 1, dataLen: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.width, tc.height, tc.channels, make([]uint8, tc.dataLen))
			assert.Error(t, err)
		})
	}
}

func TestNewDataLengthMismatch(t *testing.T) {
	_, err := New(4, 4, 3, make([]uint8, 4*4*3-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataLengthMismatch))

	_, err = New(4, 4, 1, make([]uint8, 17))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataLengthMismatch))
}

func TestMatrixPixelAccess(t *testing.T) {
	m := NewRGB(4, 3)

	assert.True(t, m.SetPixel(1, 2, []uint8{10, 20, 30}))
	sample, ok := m.Pixel(1, 2)
	require.True(t, ok)
	assert.Equal(t, []uint8{10, 20, 30}, sample)

	// Wrong sample length is rejected.
	assert.False(t, m.SetPixel(0, 0, []uint8{1}))

	// Out of bounds.
	assert.False(t, m.SetPixel(4, 0, []uint8{1, 2, 3}))
	assert.False(t, m.SetPixel(0, 3, []uint8{1, 2, 3}))
	_, ok = m.Pixel(-1, 0)
	assert.False(t, ok)

	// Mutating the returned copy must not touch the buffer.
	sample[0] = 99
	r, _, _, ok := m.RGB(1, 2)
	require.True(t, ok)
	assert.Equal(t, uint8(10), r)
}

func TestMatrixGray(t *testing.T) {
	m := NewGray(3, 3)
	assert.True(t, m.SetGray(2, 1, 200))

	v, ok := m.Gray(2, 1)
	require.True(t, ok)
	assert.Equal(t, uint8(200), v)

	r, g, b, ok := m.RGB(2, 1)
	require.True(t, ok)
	assert.Equal(t, uint8(200), r)
	assert.Equal(t, uint8(200), g)
	assert.Equal(t, uint8(200), b)

	_, ok = m.Gray(3, 1)
	assert.False(t, ok)
}

func TestMatrixSetRGBOnGray(t *testing.T) {
	m := NewGray(2, 2)
	require.True(t, m.SetRGB(0, 0, 255, 0, 0))

	v, ok := m.Gray(0, 0)
	require.True(t, ok)
	// 0.299*255 truncated.
	assert.Equal(t, uint8(76), v)
}

func TestMatrixSetGrayOnRGB(t *testing.T) {
	m := NewRGB(2, 2)
	require.True(t, m.SetGray(1, 1, 42))

	r, g, b, ok := m.RGB(1, 1)
	require.True(t, ok)
	assert.Equal(t, uint8(42), r)
	assert.Equal(t, uint8(42), g)
	assert.Equal(t, uint8(42), b)
}

func TestMatrixClone(t *testing.T) {
	m := NewGray(2, 2)
	m.SetGray(0, 0, 7)

	c := m.Clone()
	c.SetGray(0, 0, 9)

	v, _ := m.Gray(0, 0)
	assert.Equal(t, uint8(7), v)
	v, _ = c.Gray(0, 0)
	assert.Equal(t, uint8(9), v)
}

func TestMatrixString(t *testing.T) {
	m := NewRGB(5, 4)
	assert.Equal(t, "Matrix{width: 5, height: 4, channels: 3}", m.String())
}
