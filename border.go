package pixmat

// BorderMode selects how samples outside the image bounds are synthesized
// during convolution.
type BorderMode int

const (
	// BorderZero contributes zero for out-of-range samples.
	BorderZero BorderMode = iota
	// BorderReplicate clamps coordinates to the nearest edge pixel.
	BorderReplicate
	// BorderReflect mirrors coordinates across the edge without duplicating
	// the edge pixel (abcd|dcba).
	BorderReflect
	// BorderWrap wraps coordinates around to the opposite edge.
	BorderWrap
)

func (m BorderMode) String() string {
	switch m {
	case BorderZero:
		return "zero"
	case BorderReplicate:
		return "replicate"
	case BorderReflect:
		return "reflect"
	case BorderWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// reflectCoord mirrors c across the boundaries of [0, n). The correction is
// single-step: offsets larger than one extent length can stay out of range
// before the final clamp.
func reflectCoord(c, n int) int {
	if c < 0 {
		c = -c - 1
	}
	if c >= n {
		c = 2*n - c - 1
	}
	if c < 0 {
		c = 0
	}
	if c > n-1 {
		c = n - 1
	}
	return c
}

// wrapCoord wraps c into [0, n).
func wrapCoord(c, n int) int {
	c %= n
	if c < 0 {
		c += n
	}
	return c
}

// resolveBorder maps an out-of-range coordinate pair to a source pixel
// offset. ok is false only for BorderZero misses, where the sample
// contributes zero instead.
func (m *Matrix) resolveBorder(x, y int, mode BorderMode) (off int, ok bool) {
	switch mode {
	case BorderZero:
		if !m.inBounds(x, y) {
			return 0, false
		}
	case BorderReplicate:
		x = clampInt(x, 0, m.width-1)
		y = clampInt(y, 0, m.height-1)
	case BorderReflect:
		x = reflectCoord(x, m.width)
		y = reflectCoord(y, m.height)
	case BorderWrap:
		x = wrapCoord(x, m.width)
		y = wrapCoord(y, m.height)
	}
	return m.offset(x, y), true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
