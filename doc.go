// Package pixmat is a dense 2D pixel-buffer processing toolkit for
// single-channel (grayscale) and three-channel (RGB) images.
//
// The core is the spatial filtering and geometric resampling engine:
// direct and separable convolution with four border-extension policies,
// and resize/crop/rotate with nearest-neighbor and bilinear interpolation,
// including arbitrary-angle rotation with output-canvas growth. Pixel math
// accumulates in float32 with a fixed clamp-and-truncate policy for
// convolution and round-to-nearest for resampling, so sequential and
// parallel execution produce byte-identical output.
//
// File codecs are delegated to image/jpeg, image/png and
// golang.org/x/image/bmp; this package owns no file format.
package pixmat
