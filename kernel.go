package pixmat

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidKernelSize is returned when a kernel dimension is even or the
// weight slice does not match width*height.
var ErrInvalidKernelSize = errors.New("invalid kernel size")

// Kernel is an immutable 2D convolution weight matrix. Both dimensions are
// odd so a center tap exists.
type Kernel struct {
	width   int
	height  int
	weights []float32
}

// NewKernel creates a kernel from row-major weights.
func NewKernel(width, height int, weights []float32) (*Kernel, error) {
	if width < 1 || width%2 == 0 {
		return nil, fmt.Errorf("%w: width %d must be odd", ErrInvalidKernelSize, width)
	}
	if height < 1 || height%2 == 0 {
		return nil, fmt.Errorf("%w: height %d must be odd", ErrInvalidKernelSize, height)
	}
	if len(weights) != width*height {
		return nil, fmt.Errorf("%w: got %d weights, want %d", ErrInvalidKernelSize, len(weights), width*height)
	}
	w := make([]float32, len(weights))
	copy(w, weights)
	return &Kernel{width: width, height: height, weights: w}, nil
}

// Width returns the kernel width.
func (k *Kernel) Width() int { return k.width }

// Height returns the kernel height.
func (k *Kernel) Height() int { return k.height }

// Weights returns the row-major kernel weights.
func (k *Kernel) Weights() []float32 { return k.weights }

// BoxBlur creates a size×size uniform averaging kernel.
func BoxBlur(size int) (*Kernel, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: size %d must be odd", ErrInvalidKernelSize, size)
	}
	count := size * size
	weights := make([]float32, count)
	v := 1.0 / float32(count)
	for i := range weights {
		weights[i] = v
	}
	return &Kernel{width: size, height: size, weights: weights}, nil
}

// Gaussian creates a size×size Gaussian blur kernel by sampling the 2D
// density at integer offsets from the center and normalizing the weights to
// sum to 1.
func Gaussian(size int, sigma float32) (*Kernel, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: size %d must be odd", ErrInvalidKernelSize, size)
	}
	half := size / 2
	weights := make([]float32, 0, size*size)
	var sum float32
	for y := -half; y <= half; y++ {
		for x := -half; x <= half; x++ {
			v := gaussian2D(float32(x), float32(y), sigma)
			weights = append(weights, v)
			sum += v
		}
	}
	for i := range weights {
		weights[i] /= sum
	}
	return &Kernel{width: size, height: size, weights: weights}, nil
}

func gaussian2D(x, y, sigma float32) float32 {
	coeff := 1.0 / (2.0 * math.Pi * float64(sigma) * float64(sigma))
	exp := -float64(x*x+y*y) / (2.0 * float64(sigma) * float64(sigma))
	return float32(coeff * math.Exp(exp))
}

// SobelX returns the 3×3 horizontal gradient kernel.
func SobelX() *Kernel {
	return mustKernel(3, 3, []float32{-1, 0, 1, -2, 0, 2, -1, 0, 1})
}

// SobelY returns the 3×3 vertical gradient kernel.
func SobelY() *Kernel {
	return mustKernel(3, 3, []float32{-1, -2, -1, 0, 0, 0, 1, 2, 1})
}

// Laplacian returns the 3×3 discrete Laplace kernel.
func Laplacian() *Kernel {
	return mustKernel(3, 3, []float32{0, 1, 0, 1, -4, 1, 0, 1, 0})
}

// Sharpen returns the 3×3 unsharp-mask kernel.
func Sharpen() *Kernel {
	return mustKernel(3, 3, []float32{0, -1, 0, -1, 5, -1, 0, -1, 0})
}

func mustKernel(width, height int, weights []float32) *Kernel {
	k, err := NewKernel(width, height, weights)
	if err != nil {
		panic(err)
	}
	return k
}
