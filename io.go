package pixmat

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// ReadImage decodes a JPEG, PNG or BMP file, sniffing the format from its
// contents. Grayscale sources stay single-channel; everything else becomes
// a three-channel RGB Matrix.
func ReadImage(path string) (*Matrix, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img), nil
}

// ReadJPEG decodes a JPEG file.
func ReadJPEG(path string) (*Matrix, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode jpeg: %w", err)
	}
	return FromImage(img), nil
}

// ReadPNG decodes a PNG file.
func ReadPNG(path string) (*Matrix, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return FromImage(img), nil
}

// ReadBMP decodes a BMP file.
func ReadBMP(path string) (*Matrix, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode bmp: %w", err)
	}
	return FromImage(img), nil
}

// WriteJPEG encodes m as a JPEG file. Quality is clamped to [1, 100].
func WriteJPEG(m *Matrix, path string, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, ToImage(m), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644)
}

// WritePNG encodes m as a PNG file.
func WritePNG(m *Matrix, path string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, ToImage(m)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644)
}

// WriteBMP encodes m as a BMP file.
func WriteBMP(m *Matrix, path string) error {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, ToImage(m)); err != nil {
		return fmt.Errorf("encode bmp: %w", err)
	}
	return os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644)
}
