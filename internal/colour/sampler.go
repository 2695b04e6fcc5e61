package colour

import (
	"image"
)

// fully opaque in image.Color's 16-bit channel space.
const opaque = 0xffff

// Samples collects the distinct fully-opaque colours of an image.
//
// Pixels are visited in row-major order. A pixel with any transparency
// (alpha < 255) is dropped entirely, never blended, so partially transparent
// regions cannot influence the palette. Exact duplicate RGB triples are
// collapsed to their first occurrence, which bounds clustering cost by the
// number of distinct colours rather than the pixel count.
//
// A fully transparent (or empty) image yields an empty slice; that is a
// valid result, not an error.
func Samples(img image.Image) []RGB {
	bounds := img.Bounds()

	seen := make(map[RGB]struct{})
	samples := make([]RGB, 0, 256)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a != opaque {
				continue
			}

			// RGBA returns 16-bit channels; convert to 8-bit.
			rgb := RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			if _, ok := seen[rgb]; ok {
				continue
			}
			seen[rgb] = struct{}{}
			samples = append(samples, rgb)
		}
	}

	return samples
}
