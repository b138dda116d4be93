package pixmat

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidHexColor is returned by ParseHexColor for malformed input.
var ErrInvalidHexColor = errors.New("invalid hex color")

// Color is a drawing color usable on both single- and three-channel
// targets. RGB colors collapse to gray with the luminosity weighting when
// drawn on a single-channel Matrix.
type Color struct {
	r, g, b uint8
	gray    bool
}

// GrayColor creates a grayscale color.
func GrayColor(v uint8) Color { return Color{r: v, g: v, b: v, gray: true} }

// RGBColor creates an RGB color.
func RGBColor(r, g, b uint8) Color { return Color{r: r, g: g, b: b} }

// Predefined colors.
var (
	Black = GrayColor(0)
	White = GrayColor(255)
)

// GrayValue returns the single-channel rendition of the color.
func (c Color) GrayValue() uint8 {
	if c.gray {
		return c.r
	}
	return luminosity(c.r, c.g, c.b)
}

// RGBValues returns the three-channel rendition of the color.
func (c Color) RGBValues() (r, g, b uint8) { return c.r, c.g, c.b }

// ParseHexColor parses "#RRGGBB", "RRGGBB", "#RGB" or "RGB". The 3-digit
// form expands each digit (F -> FF).
func ParseHexColor(hex string) (Color, error) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	switch len(hex) {
	case 3:
		r, err := hexDigit(hex[0])
		if err != nil {
			return Color{}, err
		}
		g, err := hexDigit(hex[1])
		if err != nil {
			return Color{}, err
		}
		b, err := hexDigit(hex[2])
		if err != nil {
			return Color{}, err
		}
		return RGBColor(r*17, g*17, b*17), nil
	case 6:
		r, err := hexByte(hex[0], hex[1])
		if err != nil {
			return Color{}, err
		}
		g, err := hexByte(hex[2], hex[3])
		if err != nil {
			return Color{}, err
		}
		b, err := hexByte(hex[4], hex[5])
		if err != nil {
			return Color{}, err
		}
		return RGBColor(r, g, b), nil
	default:
		return Color{}, fmt.Errorf("%w: length %d (want 3 or 6)", ErrInvalidHexColor, len(hex))
	}
}

func hexDigit(b byte) (uint8, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, nil
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("%w: character %q", ErrInvalidHexColor, b)
	}
}

func hexByte(hi, lo byte) (uint8, error) {
	h, err := hexDigit(hi)
	if err != nil {
		return 0, err
	}
	l, err := hexDigit(lo)
	if err != nil {
		return 0, err
	}
	return h*16 + l, nil
}

func (m *Matrix) setColor(x, y int, c Color) bool {
	if m.channels == 1 {
		if !m.inBounds(x, y) {
			return false
		}
		m.data[m.offset(x, y)] = c.GrayValue()
		return true
	}
	r, g, b := c.RGBValues()
	return m.SetRGB(x, y, r, g, b)
}

// DrawRectangle draws a rectangle centered at (x, y), rotated by
// rotationDeg degrees clockwise. The fill is painted first, then the stroke
// on top of it. Nil stroke or fill are skipped; a zero strokeWidth skips
// the stroke as well.
func DrawRectangle(m *Matrix, x, y, width, height, rotationDeg float32, strokeWidth int, stroke, fill *Color) {
	if fill != nil {
		fillRectangle(m, x, y, width, height, rotationDeg, *fill)
	}
	if strokeWidth > 0 && stroke != nil {
		strokeRectangle(m, x, y, width, height, rotationDeg, strokeWidth, *stroke)
	}
}

// DrawCircle draws a circle centered at (x, y). The fill is painted first,
// then the stroke ring on top of it.
func DrawCircle(m *Matrix, x, y, radius float32, strokeWidth int, stroke, fill *Color) {
	if fill != nil {
		fillCircle(m, x, y, radius, *fill)
	}
	if strokeWidth > 0 && stroke != nil {
		strokeCircle(m, x, y, radius, strokeWidth, *stroke)
	}
}

// pointInRotatedRect tests pixel center (px, py) against a rectangle of
// width×height centered at (cx, cy), rotated by rotationDeg.
func pointInRotatedRect(px, py, cx, cy, width, height, rotationDeg float32) bool {
	sin64, cos64 := math.Sincos(float64(Degrees(rotationDeg)))
	sinA, cosA := float32(sin64), float32(cos64)

	dx := px - cx
	dy := py - cy

	localX := dx*cosA + dy*sinA
	localY := -dx*sinA + dy*cosA

	return absf(localX) <= width/2 && absf(localY) <= height/2
}

func fillRectangle(m *Matrix, x, y, width, height, rotationDeg float32, c Color) {
	halfDiag := float32(math.Sqrt(float64((width*width + height*height) / 4)))
	minX := int(maxf(x-halfDiag, 0))
	maxX := int(minf(x+halfDiag, float32(m.width)))
	minY := int(maxf(y-halfDiag, 0))
	maxY := int(minf(y+halfDiag, float32(m.height)))

	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			if pointInRotatedRect(float32(px)+0.5, float32(py)+0.5, x, y, width, height, rotationDeg) {
				m.setColor(px, py, c)
			}
		}
	}
}

func strokeRectangle(m *Matrix, x, y, width, height, rotationDeg float32, strokeWidth int, c Color) {
	sin64, cos64 := math.Sincos(float64(Degrees(rotationDeg)))
	sinA, cosA := float32(sin64), float32(cos64)

	hw := width / 2
	hh := height / 2
	local := [4][2]float32{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	var corners [4][2]float32
	for i, p := range local {
		corners[i][0] = x + p[0]*cosA - p[1]*sinA
		corners[i][1] = y + p[0]*sinA + p[1]*cosA
	}

	for i := 0; i < 4; i++ {
		next := corners[(i+1)%4]
		drawThickLine(m, corners[i][0], corners[i][1], next[0], next[1], strokeWidth, c)
	}
}

func fillCircle(m *Matrix, cx, cy, radius float32, c Color) {
	rSquared := radius * radius
	minX := int(maxf(cx-radius, 0))
	maxX := int(minf(cx+radius, float32(m.width)))
	minY := int(maxf(cy-radius, 0))
	maxY := int(minf(cy+radius, float32(m.height)))

	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			dx := float32(px) + 0.5 - cx
			dy := float32(py) + 0.5 - cy
			if dx*dx+dy*dy <= rSquared {
				m.setColor(px, py, c)
			}
		}
	}
}

func strokeCircle(m *Matrix, cx, cy, radius float32, strokeWidth int, c Color) {
	half := float32(strokeWidth) / 2
	innerSquared := maxf(radius-half, 0)
	innerSquared *= innerSquared
	outerSquared := (radius + half) * (radius + half)

	margin := radius + float32(strokeWidth)
	minX := int(maxf(cx-margin, 0))
	maxX := int(minf(cx+margin, float32(m.width)))
	minY := int(maxf(cy-margin, 0))
	maxY := int(minf(cy+margin, float32(m.height)))

	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			dx := float32(px) + 0.5 - cx
			dy := float32(py) + 0.5 - cy
			distSquared := dx*dx + dy*dy
			if distSquared >= innerSquared && distSquared <= outerSquared {
				m.setColor(px, py, c)
			}
		}
	}
}

// drawThickLine walks the line with Bresenham steps, stamping a disk of the
// requested thickness at every step.
func drawThickLine(m *Matrix, x1, y1, x2, y2 float32, thickness int, c Color) {
	dx := absf(x2 - x1)
	dy := absf(y2 - y1)
	sx := float32(1)
	if x1 >= x2 {
		sx = -1
	}
	sy := float32(1)
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy

	halfThick := float32(thickness) / 2
	reach := int(halfThick)

	for {
		for oy := -reach; oy <= reach; oy++ {
			for ox := -reach; ox <= reach; ox++ {
				if float32(ox*ox+oy*oy) <= halfThick*halfThick {
					px := int(x1) + ox
					py := int(y1) + oy
					if px >= 0 && py >= 0 && px < m.width && py < m.height {
						m.setColor(px, py, c)
					}
				}
			}
		}

		if absf(x1-x2) < 0.5 && absf(y1-y2) < 0.5 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}
