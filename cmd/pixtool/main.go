// Command pixtool applies pixmat operations to image files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vearutop/pixmat"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "filter":
		if err := runFilter(os.Args[2:]); err != nil {
			fail(err)
		}
	case "resize":
		if err := runResize(os.Args[2:]); err != nil {
			fail(err)
		}
	case "crop":
		if err := runCrop(os.Args[2:]); err != nil {
			fail(err)
		}
	case "rotate":
		if err := runRotate(os.Args[2:]); err != nil {
			fail(err)
		}
	case "gray":
		if err := runGray(os.Args[2:]); err != nil {
			fail(err)
		}
	case "thumb":
		if err := runThumb(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pixtool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  filter -in input.png -out output.png -kernel box|gaussian|sharpen|sobelx|sobely|laplacian [-size 3] [-sigma 1.0] [-border zero|replicate|reflect|wrap] [-sequential]")
	fmt.Fprintln(os.Stderr, "  resize -in input.png -out output.png -w 640 -h 480 [-method nearest|bilinear]")
	fmt.Fprintln(os.Stderr, "  crop   -in input.png -out output.png -x 0 -y 0 -w 100 -h 100")
	fmt.Fprintln(os.Stderr, "  rotate -in input.png -out output.png [-angle 90|180|270] [-deg 45] [-method nearest|bilinear]")
	fmt.Fprintln(os.Stderr, "  gray   -in input.png -out output.png [-method luminosity|average|lightness]")
	fmt.Fprintln(os.Stderr, "  thumb  -in input.png -out output.png -max-w 320 -max-h 240")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func runFilter(args []string) error {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	kernelName := fs.String("kernel", "", "kernel name")
	size := fs.Int("size", 3, "kernel size for box/gaussian (odd)")
	sigma := fs.Float64("sigma", 1.0, "gaussian sigma")
	border := fs.String("border", "replicate", "border mode")
	sequential := fs.Bool("sequential", false, "disable row-parallel execution")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" || *kernelName == "" {
		return errors.New("missing required arguments")
	}

	kernel, err := kernelByName(*kernelName, *size, float32(*sigma))
	if err != nil {
		return err
	}
	mode, err := borderByName(*border)
	if err != nil {
		return err
	}

	m, err := pixmat.ReadImage(*inPath)
	if err != nil {
		return err
	}

	var opts []func(o *pixmat.Options)
	if *sequential {
		opts = append(opts, pixmat.WithStrategy(pixmat.Sequential{}))
	}

	return writeOutput(pixmat.Convolve(m, kernel, mode, opts...), *outPath)
}

func runResize(args []string) error {
	fs := flag.NewFlagSet("resize", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	width := fs.Int("w", 0, "target width")
	height := fs.Int("h", 0, "target height")
	method := fs.String("method", "bilinear", "interpolation method")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" || *width <= 0 || *height <= 0 {
		return errors.New("missing required arguments")
	}

	interp, err := interpolationByName(*method)
	if err != nil {
		return err
	}

	m, err := pixmat.ReadImage(*inPath)
	if err != nil {
		return err
	}
	return writeOutput(pixmat.Resize(m, *width, *height, interp), *outPath)
}

func runCrop(args []string) error {
	fs := flag.NewFlagSet("crop", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	x := fs.Int("x", 0, "region left")
	y := fs.Int("y", 0, "region top")
	width := fs.Int("w", 0, "region width")
	height := fs.Int("h", 0, "region height")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" || *width <= 0 || *height <= 0 {
		return errors.New("missing required arguments")
	}

	m, err := pixmat.ReadImage(*inPath)
	if err != nil {
		return err
	}
	cropped, err := pixmat.Crop(m, *x, *y, *width, *height)
	if err != nil {
		return err
	}
	return writeOutput(cropped, *outPath)
}

func runRotate(args []string) error {
	fs := flag.NewFlagSet("rotate", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	angle := fs.Int("angle", 0, "lossless rotation: 90, 180 or 270")
	deg := fs.Float64("deg", 0, "arbitrary clockwise rotation in degrees")
	method := fs.String("method", "bilinear", "interpolation for -deg rotation")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	m, err := pixmat.ReadImage(*inPath)
	if err != nil {
		return err
	}

	switch *angle {
	case 90:
		return writeOutput(pixmat.Rotate(m, pixmat.Rotate90), *outPath)
	case 180:
		return writeOutput(pixmat.Rotate(m, pixmat.Rotate180), *outPath)
	case 270:
		return writeOutput(pixmat.Rotate(m, pixmat.Rotate270), *outPath)
	case 0:
		interp, err := interpolationByName(*method)
		if err != nil {
			return err
		}
		return writeOutput(pixmat.RotateCustom(m, pixmat.Degrees(float32(*deg)), interp), *outPath)
	default:
		return fmt.Errorf("unsupported angle %d (use 90, 180, 270 or -deg)", *angle)
	}
}

func runGray(args []string) error {
	fs := flag.NewFlagSet("gray", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	method := fs.String("method", "luminosity", "grayscale method")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	var gm pixmat.GrayscaleMethod
	switch strings.ToLower(*method) {
	case "luminosity":
		gm = pixmat.GrayLuminosity
	case "average":
		gm = pixmat.GrayAverage
	case "lightness":
		gm = pixmat.GrayLightness
	default:
		return fmt.Errorf("unknown grayscale method %q", *method)
	}

	m, err := pixmat.ReadImage(*inPath)
	if err != nil {
		return err
	}
	return writeOutput(pixmat.GrayscaleWith(m, gm), *outPath)
}

func runThumb(args []string) error {
	fs := flag.NewFlagSet("thumb", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	maxW := fs.Uint("max-w", 0, "maximum width")
	maxH := fs.Uint("max-h", 0, "maximum height")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" || *maxW == 0 || *maxH == 0 {
		return errors.New("missing required arguments")
	}

	m, err := pixmat.ReadImage(*inPath)
	if err != nil {
		return err
	}
	return writeOutput(pixmat.Thumbnail(m, *maxW, *maxH), *outPath)
}

func kernelByName(name string, size int, sigma float32) (*pixmat.Kernel, error) {
	switch strings.ToLower(name) {
	case "box":
		return pixmat.BoxBlur(size)
	case "gaussian":
		return pixmat.Gaussian(size, sigma)
	case "sharpen":
		return pixmat.Sharpen(), nil
	case "sobelx":
		return pixmat.SobelX(), nil
	case "sobely":
		return pixmat.SobelY(), nil
	case "laplacian":
		return pixmat.Laplacian(), nil
	default:
		return nil, fmt.Errorf("unknown kernel %q", name)
	}
}

func borderByName(name string) (pixmat.BorderMode, error) {
	switch strings.ToLower(name) {
	case "zero":
		return pixmat.BorderZero, nil
	case "replicate":
		return pixmat.BorderReplicate, nil
	case "reflect":
		return pixmat.BorderReflect, nil
	case "wrap":
		return pixmat.BorderWrap, nil
	default:
		return 0, fmt.Errorf("unknown border mode %q", name)
	}
}

func interpolationByName(name string) (pixmat.Interpolation, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return pixmat.InterpolationNearest, nil
	case "bilinear":
		return pixmat.InterpolationBilinear, nil
	default:
		return 0, fmt.Errorf("unknown interpolation method %q", name)
	}
}

func writeOutput(m *pixmat.Matrix, path string) error {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return pixmat.WriteJPEG(m, path, 90)
	case strings.HasSuffix(lower, ".bmp"):
		return pixmat.WriteBMP(m, path)
	default:
		return pixmat.WritePNG(m, path)
	}
}
