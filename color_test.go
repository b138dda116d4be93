package pixmat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayscaleMethods(t *testing.T) {
	m, err := New(3, 1, 3, []uint8{
		255, 0, 0,
		10, 20, 30,
		10, 20, 90,
	})
	require.NoError(t, err)

	t.Run("luminosity", func(t *testing.T) {
		out := Grayscale(m)
		assert.Equal(t, 1, out.Channels())
		// 0.299*255 truncated.
		v, _ := out.Gray(0, 0)
		assert.Equal(t, uint8(76), v)
	})

	t.Run("average", func(t *testing.T) {
		out := GrayscaleWith(m, GrayAverage)
		v, _ := out.Gray(1, 0)
		assert.Equal(t, uint8(20), v)
	})

	t.Run("lightness", func(t *testing.T) {
		out := GrayscaleWith(m, GrayLightness)
		v, _ := out.Gray(2, 0)
		assert.Equal(t, uint8(50), v)
	})
}

func TestGrayscaleOnGrayInput(t *testing.T) {
	m := NewGray(2, 2)
	m.SetGray(0, 0, 11)

	out := Grayscale(m)
	assert.Equal(t, m.Data(), out.Data())

	// The result is a copy, not the same buffer.
	out.SetGray(0, 0, 99)
	v, _ := m.Gray(0, 0)
	assert.Equal(t, uint8(11), v)
}

func TestToRGB(t *testing.T) {
	m, err := New(2, 1, 1, []uint8{5, 250})
	require.NoError(t, err)

	out := ToRGB(m)
	assert.Equal(t, 3, out.Channels())
	assert.Equal(t, []uint8{5, 5, 5, 250, 250, 250}, out.Data())

	rgb := NewRGB(2, 2)
	assert.Equal(t, rgb.Data(), ToRGB(rgb).Data())
}

func TestRGBToHSV(t *testing.T) {
	for _, tc := range []struct {
		name    string
		r, g, b uint8
		h, s, v float32
	}{
		{name: "red", r: 255, h: 0, s: 1, v: 1},
		{name: "green", g: 255, h: 120, s: 1, v: 1},
		{name: "blue", b: 255, h: 240, s: 1, v: 1},
		{name: "yellow", r: 255, g: 255, h: 60, s: 1, v: 1},
		{name: "black", h: 0, s: 0, v: 0},
		{name: "white", r: 255, g: 255, b: 255, h: 0, s: 0, v: 1},
		{name: "gray", r: 128, g: 128, b: 128, h: 0, s: 0, v: 128.0 / 255},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tc.r, tc.g, tc.b)
			assert.InDelta(t, tc.h, h, 0.01)
			assert.InDelta(t, tc.s, s, 0.001)
			assert.InDelta(t, tc.v, v, 0.001)
		})
	}
}

func TestHSVToRGB(t *testing.T) {
	for _, tc := range []struct {
		name    string
		h, s, v float32
		r, g, b uint8
	}{
		{name: "red", h: 0, s: 1, v: 1, r: 255},
		{name: "green", h: 120, s: 1, v: 1, g: 255},
		{name: "blue", h: 240, s: 1, v: 1, b: 255},
		{name: "cyan", h: 180, s: 1, v: 1, g: 255, b: 255},
		{name: "black", h: 0, s: 0, v: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := HSVToRGB(tc.h, tc.s, tc.v)
			assert.Equal(t, tc.r, r)
			assert.Equal(t, tc.g, g)
			assert.Equal(t, tc.b, b)
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	h, s, l := RGBToHSL(255, 0, 0)
	assert.InDelta(t, 0, h, 0.01)
	assert.InDelta(t, 1, s, 0.001)
	assert.InDelta(t, 0.5, l, 0.001)

	h, s, l = RGBToHSL(0, 0, 255)
	assert.InDelta(t, 240, h, 0.01)
	assert.InDelta(t, 1, s, 0.001)
	assert.InDelta(t, 0.5, l, 0.001)

	_, s, l = RGBToHSL(128, 128, 128)
	assert.InDelta(t, 0, s, 0.001)
	assert.InDelta(t, 128.0/255, l, 0.001)
}

func TestHSVRoundTrip(t *testing.T) {
	samples := [][3]uint8{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{12, 200, 99}, {250, 31, 77}, {1, 2, 3},
		{128, 128, 128}, {255, 255, 255}, {0, 0, 0},
	}

	for _, p := range samples {
		h, s, v := RGBToHSV(p[0], p[1], p[2])
		r, g, b := HSVToRGB(h, s, v)

		assert.InDelta(t, p[0], r, 1, "sample %v", p)
		assert.InDelta(t, p[1], g, 1, "sample %v", p)
		assert.InDelta(t, p[2], b, 1, "sample %v", p)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	samples := [][3]uint8{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{12, 200, 99}, {250, 31, 77},
		{128, 128, 128}, {255, 255, 255},
	}

	for _, p := range samples {
		h, s, l := RGBToHSL(p[0], p[1], p[2])
		r, g, b := HSLToRGB(h, s, l)

		assert.InDelta(t, p[0], r, 1, "sample %v", p)
		assert.InDelta(t, p[1], g, 1, "sample %v", p)
		assert.InDelta(t, p[2], b, 1, "sample %v", p)
	}
}
