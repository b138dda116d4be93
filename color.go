package pixmat

// GrayscaleMethod selects how RGB collapses to a single channel.
type GrayscaleMethod int

const (
	// GrayLuminosity weights channels by perceived brightness:
	// 0.299*R + 0.587*G + 0.114*B.
	GrayLuminosity GrayscaleMethod = iota
	// GrayAverage is the plain mean (R+G+B)/3.
	GrayAverage
	// GrayLightness is (max(R,G,B) + min(R,G,B)) / 2.
	GrayLightness
)

// Grayscale converts a three-channel Matrix to a single channel using the
// luminosity method. A single-channel input is returned as a copy.
func Grayscale(m *Matrix) *Matrix {
	return GrayscaleWith(m, GrayLuminosity)
}

// GrayscaleWith converts a three-channel Matrix to a single channel.
func GrayscaleWith(m *Matrix, method GrayscaleMethod) *Matrix {
	if m.channels == 1 {
		return m.Clone()
	}

	out := make([]uint8, m.width*m.height)
	for i := 0; i < m.width*m.height; i++ {
		r := m.data[i*3]
		g := m.data[i*3+1]
		b := m.data[i*3+2]
		switch method {
		case GrayAverage:
			out[i] = uint8((uint16(r) + uint16(g) + uint16(b)) / 3)
		case GrayLightness:
			max := maxU8(r, maxU8(g, b))
			min := minU8(r, minU8(g, b))
			out[i] = uint8((uint16(max) + uint16(min)) / 2)
		default:
			out[i] = luminosity(r, g, b)
		}
	}

	return &Matrix{width: m.width, height: m.height, channels: 1, data: out}
}

// ToRGB expands a single-channel Matrix to three channels by duplicating
// the gray value. A three-channel input is returned as a copy.
func ToRGB(m *Matrix) *Matrix {
	if m.channels == 3 {
		return m.Clone()
	}

	out := make([]uint8, m.width*m.height*3)
	for i, v := range m.data {
		out[i*3] = v
		out[i*3+1] = v
		out[i*3+2] = v
	}

	return &Matrix{width: m.width, height: m.height, channels: 3, data: out}
}

func luminosity(r, g, b uint8) uint8 {
	return clampTruncByte(0.299*float32(r) + 0.587*float32(g) + 0.114*float32(b))
}

// RGBToHSV converts an RGB sample to hue (degrees, [0,360)), saturation and
// value (both [0,1]).
func RGBToHSV(r, g, b uint8) (h, s, v float32) {
	rf := float32(r) / 255
	gf := float32(g) / 255
	bf := float32(b) / 255

	max := maxf(rf, maxf(gf, bf))
	min := minf(rf, minf(gf, bf))
	delta := max - min

	h = hueDegrees(rf, gf, bf, max, delta)
	if max != 0 {
		s = delta / max
	}
	v = max
	return h, s, v
}

// HSVToRGB converts hue (degrees), saturation and value ([0,1]) to RGB.
func HSVToRGB(h, s, v float32) (r, g, b uint8) {
	c := v * s
	m := v - c
	return hueRGB(h, c, m)
}

// RGBToHSL converts an RGB sample to hue (degrees, [0,360)), saturation and
// lightness (both [0,1]).
func RGBToHSL(r, g, b uint8) (h, s, l float32) {
	rf := float32(r) / 255
	gf := float32(g) / 255
	bf := float32(b) / 255

	max := maxf(rf, maxf(gf, bf))
	min := minf(rf, minf(gf, bf))
	delta := max - min

	l = (max + min) / 2
	if delta != 0 {
		s = delta / (1 - absf(2*l-1))
	}
	h = hueDegrees(rf, gf, bf, max, delta)
	return h, s, l
}

// HSLToRGB converts hue (degrees), saturation and lightness ([0,1]) to RGB.
func HSLToRGB(h, s, l float32) (r, g, b uint8) {
	c := (1 - absf(2*l-1)) * s
	m := l - c/2
	return hueRGB(h, c, m)
}

func hueDegrees(r, g, b, max, delta float32) float32 {
	if delta == 0 {
		return 0
	}
	var h float32
	switch max {
	case r:
		h = 60 * modf((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h
}

func hueRGB(h, c, m float32) (uint8, uint8, uint8) {
	hPrime := h / 60
	x := c * (1 - absf(modf(hPrime, 2)-1))

	var r, g, b float32
	switch {
	case hPrime < 1:
		r, g, b = c, x, 0
	case hPrime < 2:
		r, g, b = x, c, 0
	case hPrime < 3:
		r, g, b = 0, c, x
	case hPrime < 4:
		r, g, b = 0, x, c
	case hPrime < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return clampTruncByte((r + m) * 255), clampTruncByte((g + m) * 255), clampTruncByte((b + m) * 255)
}

func modf(v, m float32) float32 {
	for v >= m {
		v -= m
	}
	for v < 0 {
		v += m
	}
	return v
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
