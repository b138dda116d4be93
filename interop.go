package pixmat

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"
)

// FromImage converts a decoded image.Image into a Matrix. Gray and Gray16
// sources produce a single-channel Matrix; every other color model is
// flattened to three-channel RGB.
func FromImage(img image.Image) *Matrix {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		out := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			copy(out[y*w:(y+1)*w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return &Matrix{width: w, height: h, channels: 1, data: out}
	case *image.Gray16:
		out := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < w; x++ {
				out[y*w+x] = row[x*2]
			}
		}
		return &Matrix{width: w, height: h, channels: 1, data: out}
	}

	out := make([]uint8, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			off := (y*w + x) * 3
			out[off] = uint8(r >> 8)
			out[off+1] = uint8(g >> 8)
			out[off+2] = uint8(bl >> 8)
		}
	}
	return &Matrix{width: w, height: h, channels: 3, data: out}
}

// ToImage converts a Matrix into an image.Image: *image.Gray for a single
// channel, *image.NRGBA (opaque) for three.
func ToImage(m *Matrix) image.Image {
	if m.channels == 1 {
		dst := image.NewGray(image.Rect(0, 0, m.width, m.height))
		for y := 0; y < m.height; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+m.width], m.data[y*m.width:(y+1)*m.width])
		}
		return dst
	}

	dst := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			off := (y*m.width + x) * 3
			dst.SetNRGBA(x, y, color.NRGBA{
				R: m.data[off],
				G: m.data[off+1],
				B: m.data[off+2],
				A: 0xFF,
			})
		}
	}
	return dst
}

// Thumbnail downscales m to fit within maxWidth×maxHeight, preserving the
// aspect ratio. Images already within the bounds are returned as a copy.
//
// Unlike Resize, which pins the engine's exact nearest/bilinear arithmetic,
// Thumbnail delegates to the resize library's Lanczos3 filter for
// display-quality output.
func Thumbnail(m *Matrix, maxWidth, maxHeight uint) *Matrix {
	if uint(m.width) <= maxWidth && uint(m.height) <= maxHeight {
		return m.Clone()
	}
	return FromImage(resize.Thumbnail(maxWidth, maxHeight, ToImage(m), resize.Lanczos3))
}
