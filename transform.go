package pixmat

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCropRegion is returned by Crop when the requested region falls
// outside the image. The region is never silently clamped.
var ErrInvalidCropRegion = errors.New("crop region exceeds image bounds")

// Interpolation selects the sampling mode for resize and custom rotation.
type Interpolation int

const (
	// InterpolationNearest is nearest-neighbor sampling.
	InterpolationNearest Interpolation = iota
	// InterpolationBilinear is a weighted average of the four nearest samples.
	InterpolationBilinear
)

// RotationAngle is a lossless 90-degree-multiple rotation.
type RotationAngle int

const (
	// Rotate90 rotates 90 degrees clockwise.
	Rotate90 RotationAngle = iota
	// Rotate180 rotates 180 degrees.
	Rotate180
	// Rotate270 rotates 270 degrees clockwise.
	Rotate270
)

// Rotation is an arbitrary clockwise rotation, stored in radians.
type Rotation float32

// Degrees creates a Rotation from degrees.
func Degrees(deg float32) Rotation { return Rotation(deg * math.Pi / 180) }

// Radians creates a Rotation from radians.
func Radians(rad float32) Rotation { return Rotation(rad) }

// Resize scales m to newWidth×newHeight.
//
// Nearest-neighbor truncates dst*src/dst coordinates; bilinear uses the
// ratio (srcExtent-1)/dstExtent and rounds the weighted sum to the nearest
// byte (a deliberately different rounding policy from Convolve).
func Resize(m *Matrix, newWidth, newHeight int, method Interpolation) *Matrix {
	switch method {
	case InterpolationBilinear:
		return resizeBilinear(m, newWidth, newHeight)
	default:
		return resizeNearest(m, newWidth, newHeight)
	}
}

func resizeNearest(m *Matrix, newWidth, newHeight int) *Matrix {
	ch := m.channels
	out := make([]uint8, newWidth*newHeight*ch)

	xRatio := float32(m.width) / float32(newWidth)
	yRatio := float32(m.height) / float32(newHeight)

	for y := 0; y < newHeight; y++ {
		srcY := clampInt(int(float32(y)*yRatio), 0, m.height-1)
		for x := 0; x < newWidth; x++ {
			srcX := clampInt(int(float32(x)*xRatio), 0, m.width-1)
			srcOff := (srcY*m.width + srcX) * ch
			dstOff := (y*newWidth + x) * ch
			copy(out[dstOff:dstOff+ch], m.data[srcOff:srcOff+ch])
		}
	}

	return &Matrix{width: newWidth, height: newHeight, channels: ch, data: out}
}

func resizeBilinear(m *Matrix, newWidth, newHeight int) *Matrix {
	ch := m.channels
	out := make([]uint8, newWidth*newHeight*ch)

	xRatio := float32(m.width-1) / float32(newWidth)
	yRatio := float32(m.height-1) / float32(newHeight)

	for y := 0; y < newHeight; y++ {
		srcY := float32(y) * yRatio
		y1 := int(srcY)
		y2 := minInt(y1+1, m.height-1)
		dy := srcY - float32(y1)

		for x := 0; x < newWidth; x++ {
			srcX := float32(x) * xRatio
			x1 := int(srcX)
			x2 := minInt(x1+1, m.width-1)
			dx := srcX - float32(x1)

			dstOff := (y*newWidth + x) * ch
			for c := 0; c < ch; c++ {
				p11 := float32(m.data[(y1*m.width+x1)*ch+c])
				p12 := float32(m.data[(y2*m.width+x1)*ch+c])
				p21 := float32(m.data[(y1*m.width+x2)*ch+c])
				p22 := float32(m.data[(y2*m.width+x2)*ch+c])

				val := p11*(1-dx)*(1-dy) +
					p21*dx*(1-dy) +
					p12*(1-dx)*dy +
					p22*dx*dy
				out[dstOff+c] = clampRoundByte(val)
			}
		}
	}

	return &Matrix{width: newWidth, height: newHeight, channels: ch, data: out}
}

// Crop copies the w×h region with top-left corner (x, y) into a new Matrix.
func Crop(m *Matrix, x, y, w, h int) (*Matrix, error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > m.width || y+h > m.height {
		return nil, fmt.Errorf("%w: region (%d,%d) %dx%d in %dx%d image", ErrInvalidCropRegion, x, y, w, h, m.width, m.height)
	}

	ch := m.channels
	out := make([]uint8, w*h*ch)
	rowLen := w * ch
	for row := 0; row < h; row++ {
		srcOff := ((y+row)*m.width + x) * ch
		copy(out[row*rowLen:(row+1)*rowLen], m.data[srcOff:srcOff+rowLen])
	}

	return &Matrix{width: w, height: h, channels: ch, data: out}, nil
}

// Rotate performs a lossless coordinate permutation. Rotate90 and Rotate270
// swap width and height.
func Rotate(m *Matrix, angle RotationAngle) *Matrix {
	switch angle {
	case Rotate180:
		return rotate180(m)
	case Rotate270:
		return rotate270(m)
	default:
		return rotate90(m)
	}
}

func rotate90(m *Matrix) *Matrix {
	newWidth, newHeight := m.height, m.width
	ch := m.channels
	out := make([]uint8, len(m.data))

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			srcOff := (y*m.width + x) * ch
			dstOff := (x*newWidth + (m.height - 1 - y)) * ch
			copy(out[dstOff:dstOff+ch], m.data[srcOff:srcOff+ch])
		}
	}

	return &Matrix{width: newWidth, height: newHeight, channels: ch, data: out}
}

func rotate180(m *Matrix) *Matrix {
	ch := m.channels
	out := make([]uint8, len(m.data))

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			srcOff := (y*m.width + x) * ch
			dstOff := ((m.height-1-y)*m.width + (m.width - 1 - x)) * ch
			copy(out[dstOff:dstOff+ch], m.data[srcOff:srcOff+ch])
		}
	}

	return &Matrix{width: m.width, height: m.height, channels: ch, data: out}
}

func rotate270(m *Matrix) *Matrix {
	newWidth, newHeight := m.height, m.width
	ch := m.channels
	out := make([]uint8, len(m.data))

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			srcOff := (y*m.width + x) * ch
			dstOff := ((m.width-1-x)*newWidth + y) * ch
			copy(out[dstOff:dstOff+ch], m.data[srcOff:srcOff+ch])
		}
	}

	return &Matrix{width: newWidth, height: newHeight, channels: ch, data: out}
}

// RotateCustom rotates m by an arbitrary angle. The output canvas grows to
// the bounding box of the rotated image; destination pixels are mapped back
// through the inverse rotation and sampled with the chosen interpolation.
// Source coordinates outside the image are always zero-filled, regardless
// of any BorderMode.
func RotateCustom(m *Matrix, angle Rotation, method Interpolation) *Matrix {
	sin64, cos64 := math.Sincos(float64(angle))
	sinA, cosA := float32(sin64), float32(cos64)

	w := float32(m.width)
	h := float32(m.height)

	corners := [4][2]float32{{0, 0}, {w, 0}, {0, h}, {w, h}}
	minX, maxX := float32(math.Inf(1)), float32(math.Inf(-1))
	minY, maxY := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, corner := range corners {
		rx := corner[0]*cosA - corner[1]*sinA
		ry := corner[0]*sinA + corner[1]*cosA
		minX = minf(minX, rx)
		maxX = maxf(maxX, rx)
		minY = minf(minY, ry)
		maxY = maxf(maxY, ry)
	}

	newWidth := int(ceilf(maxX - minX))
	newHeight := int(ceilf(maxY - minY))
	ch := m.channels
	out := make([]uint8, newWidth*newHeight*ch)

	centerX := w / 2
	centerY := h / 2
	newCenterX := float32(newWidth) / 2
	newCenterY := float32(newHeight) / 2

	var sample [3]uint8
	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			dx := float32(x) - newCenterX
			dy := float32(y) - newCenterY

			srcX := dx*cosA + dy*sinA + centerX
			srcY := -dx*sinA + dy*cosA + centerY

			if method == InterpolationBilinear {
				m.sampleBilinear(srcX, srcY, sample[:ch])
			} else {
				m.sampleNearest(srcX, srcY, sample[:ch])
			}
			copy(out[(y*newWidth+x)*ch:], sample[:ch])
		}
	}

	return &Matrix{width: newWidth, height: newHeight, channels: ch, data: out}
}

// sampleNearest rounds (x, y) to the nearest pixel; out-of-bounds samples
// are zero.
func (m *Matrix) sampleNearest(x, y float32, dst []uint8) {
	ix := int(roundf(x))
	iy := int(roundf(y))
	if ix < 0 || iy < 0 || ix >= m.width || iy >= m.height {
		for c := range dst {
			dst[c] = 0
		}
		return
	}
	copy(dst, m.data[(iy*m.width+ix)*m.channels:])
}

// sampleBilinear interpolates the four neighbors of (x, y); out-of-bounds
// samples are zero.
func (m *Matrix) sampleBilinear(x, y float32, dst []uint8) {
	if x < 0 || y < 0 || x >= float32(m.width) || y >= float32(m.height) {
		for c := range dst {
			dst[c] = 0
		}
		return
	}

	x1 := int(x)
	y1 := int(y)
	x2 := minInt(x1+1, m.width-1)
	y2 := minInt(y1+1, m.height-1)
	dx := x - float32(x1)
	dy := y - float32(y1)

	ch := m.channels
	for c := 0; c < ch; c++ {
		p11 := float32(m.data[(y1*m.width+x1)*ch+c])
		p12 := float32(m.data[(y2*m.width+x1)*ch+c])
		p21 := float32(m.data[(y1*m.width+x2)*ch+c])
		p22 := float32(m.data[(y2*m.width+x2)*ch+c])

		val := p11*(1-dx)*(1-dy) +
			p21*dx*(1-dy) +
			p12*(1-dx)*dy +
			p22*dx*dy
		dst[c] = clampRoundByte(val)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func ceilf(v float32) float32  { return float32(math.Ceil(float64(v))) }
func roundf(v float32) float32 { return float32(math.Round(float64(v))) }
