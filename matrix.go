package pixmat

import (
	"errors"
	"fmt"
)

// ErrDataLengthMismatch is returned by New when the supplied buffer does not
// match width*height*channels bytes.
var ErrDataLengthMismatch = errors.New("data length does not match dimensions")

// Matrix is a dense 2D pixel buffer with 1 (grayscale) or 3 (RGB)
// interleaved channels. Pixel data is stored row-major as
// [p0c0, p0c1, ..., p1c0, ...] in a single contiguous byte slice.
//
// Operations in this package never mutate their input Matrix; they allocate
// and return a fresh one.
type Matrix struct {
	width    int
	height   int
	channels int
	data     []uint8
}

// New creates a Matrix backed by data. The buffer is owned by the returned
// Matrix and must hold exactly width*height*channels bytes.
func New(width, height, channels int, data []uint8) (*Matrix, error) {
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("unsupported channel count %d (want 1 or 3)", channels)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if len(data) != width*height*channels {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDataLengthMismatch, len(data), width*height*channels)
	}
	return &Matrix{width: width, height: height, channels: channels, data: data}, nil
}

// NewGray creates a zero-filled single-channel Matrix.
func NewGray(width, height int) *Matrix {
	return &Matrix{width: width, height: height, channels: 1, data: make([]uint8, width*height)}
}

// NewRGB creates a zero-filled three-channel Matrix.
func NewRGB(width, height int) *Matrix {
	return &Matrix{width: width, height: height, channels: 3, data: make([]uint8, width*height*3)}
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

// Channels returns 1 for grayscale or 3 for RGB.
func (m *Matrix) Channels() int { return m.channels }

// Dimensions returns (width, height).
func (m *Matrix) Dimensions() (int, int) { return m.width, m.height }

// Data returns the raw interleaved pixel buffer.
func (m *Matrix) Data() []uint8 { return m.data }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]uint8, len(m.data))
	copy(data, m.data)
	return &Matrix{width: m.width, height: m.height, channels: m.channels, data: data}
}

func (m *Matrix) offset(x, y int) int {
	return (y*m.width + x) * m.channels
}

func (m *Matrix) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Pixel returns a copy of the sample at (x, y), one byte per channel.
func (m *Matrix) Pixel(x, y int) ([]uint8, bool) {
	if !m.inBounds(x, y) {
		return nil, false
	}
	off := m.offset(x, y)
	sample := make([]uint8, m.channels)
	copy(sample, m.data[off:off+m.channels])
	return sample, true
}

// SetPixel writes a sample at (x, y). It reports false when the coordinates
// are out of bounds or the sample length does not match the channel count.
func (m *Matrix) SetPixel(x, y int, sample []uint8) bool {
	if !m.inBounds(x, y) || len(sample) != m.channels {
		return false
	}
	copy(m.data[m.offset(x, y):], sample)
	return true
}

// Gray returns the single-channel value at (x, y). For a three-channel
// Matrix it returns the first (red) channel.
func (m *Matrix) Gray(x, y int) (uint8, bool) {
	if !m.inBounds(x, y) {
		return 0, false
	}
	return m.data[m.offset(x, y)], true
}

// SetGray writes v into every channel at (x, y).
func (m *Matrix) SetGray(x, y int, v uint8) bool {
	if !m.inBounds(x, y) {
		return false
	}
	off := m.offset(x, y)
	for c := 0; c < m.channels; c++ {
		m.data[off+c] = v
	}
	return true
}

// RGB returns the three-channel sample at (x, y). For a single-channel
// Matrix all three components carry the gray value.
func (m *Matrix) RGB(x, y int) (r, g, b uint8, ok bool) {
	if !m.inBounds(x, y) {
		return 0, 0, 0, false
	}
	off := m.offset(x, y)
	if m.channels == 1 {
		v := m.data[off]
		return v, v, v, true
	}
	return m.data[off], m.data[off+1], m.data[off+2], true
}

// SetRGB writes an RGB sample at (x, y). On a single-channel Matrix the
// components are collapsed with the luminosity weighting.
func (m *Matrix) SetRGB(x, y int, r, g, b uint8) bool {
	if !m.inBounds(x, y) {
		return false
	}
	off := m.offset(x, y)
	if m.channels == 1 {
		m.data[off] = luminosity(r, g, b)
		return true
	}
	m.data[off] = r
	m.data[off+1] = g
	m.data[off+2] = b
	return true
}

func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix{width: %d, height: %d, channels: %d}", m.width, m.height, m.channels)
}
