package pixmat

import "fmt"

// Convolve applies a 2D kernel to every pixel and channel of m and returns
// a new Matrix of the same dimensions. Accumulation happens in float32; the
// result is clamped to [0, 255] and truncated to 8 bits.
//
// Direct convolution costs O(W·H·Kw·Kh·C). For rank-1 kernels,
// ConvolveSeparable does the same work in O(W·H·(Kw+Kh)·C).
func Convolve(m *Matrix, kernel *Kernel, mode BorderMode, opts ...func(o *Options)) *Matrix {
	opt := applyOptions(opts)

	width, height, ch := m.width, m.height, m.channels
	kHalfW := kernel.width / 2
	kHalfH := kernel.height / 2

	out := make([]uint8, len(m.data))
	opt.Strategy.run(height, func(start, end int) {
		var acc [3]float32
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				acc = [3]float32{}
				for ky := 0; ky < kernel.height; ky++ {
					for kx := 0; kx < kernel.width; kx++ {
						srcOff, ok := m.resolveBorder(x+kx-kHalfW, y+ky-kHalfH, mode)
						if !ok {
							continue
						}
						w := kernel.weights[ky*kernel.width+kx]
						for c := 0; c < ch; c++ {
							acc[c] += float32(m.data[srcOff+c]) * w
						}
					}
				}
				dstOff := (y*width + x) * ch
				for c := 0; c < ch; c++ {
					out[dstOff+c] = clampTruncByte(acc[c])
				}
			}
		}
	})

	return &Matrix{width: width, height: height, channels: ch, data: out}
}

// ConvolveSeparable applies a horizontal 1D pass followed by a vertical 1D
// pass. Both kernels must have odd length.
//
// The intermediate image between the passes is stored at 8-bit precision,
// so the result differs from true separable math by up to one quantization
// step per pass. This matches the direct path's clamp-and-truncate policy
// and is relied on by the equivalence tests.
func ConvolveSeparable(m *Matrix, kernelX, kernelY []float32, mode BorderMode, opts ...func(o *Options)) (*Matrix, error) {
	if len(kernelX)%2 == 0 {
		return nil, fmt.Errorf("%w: horizontal length %d must be odd", ErrInvalidKernelSize, len(kernelX))
	}
	if len(kernelY)%2 == 0 {
		return nil, fmt.Errorf("%w: vertical length %d must be odd", ErrInvalidKernelSize, len(kernelY))
	}
	opt := applyOptions(opts)

	temp := m.convolve1D(kernelX, mode, true, opt.Strategy)
	return temp.convolve1D(kernelY, mode, false, opt.Strategy), nil
}

// convolve1D runs a single horizontal or vertical pass.
func (m *Matrix) convolve1D(kernel []float32, mode BorderMode, horizontal bool, strategy Strategy) *Matrix {
	width, height, ch := m.width, m.height, m.channels
	kHalf := len(kernel) / 2

	out := make([]uint8, len(m.data))
	strategy.run(height, func(start, end int) {
		var acc [3]float32
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				acc = [3]float32{}
				for k := 0; k < len(kernel); k++ {
					sx, sy := x, y
					if horizontal {
						sx = x + k - kHalf
					} else {
						sy = y + k - kHalf
					}
					srcOff, ok := m.resolveBorder(sx, sy, mode)
					if !ok {
						continue
					}
					w := kernel[k]
					for c := 0; c < ch; c++ {
						acc[c] += float32(m.data[srcOff+c]) * w
					}
				}
				dstOff := (y*width + x) * ch
				for c := 0; c < ch; c++ {
					out[dstOff+c] = clampTruncByte(acc[c])
				}
			}
		}
	})

	return &Matrix{width: width, height: height, channels: ch, data: out}
}

// clampTruncByte clamps v to [0, 255] and truncates the fraction. This is
// the convolution output policy; resampling rounds instead (clampRoundByte).
func clampTruncByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// clampRoundByte clamps v to [0, 255] and rounds to the nearest integer.
func clampRoundByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
