package colour

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// toColorful converts a swatch to a go-colorful colour without rounding.
func toColorful(s Swatch) colorful.Color {
	return colorful.Color{R: s.R / 255.0, G: s.G / 255.0, B: s.B / 255.0}
}

// HSL returns the swatch in HSL space: hue in [0, 360), saturation and
// lightness in [0, 1].
func (s Swatch) HSL() (h, sat, l float64) {
	return toColorful(s).Hsl()
}

// SortByLightness orders swatches dark to light by CIE Lab lightness.
// This is presentation-only: extraction itself guarantees no ranking.
func SortByLightness(swatches []Swatch) {
	sort.SliceStable(swatches, func(i, j int) bool {
		li, _, _ := toColorful(swatches[i]).Lab()
		lj, _, _ := toColorful(swatches[j]).Lab()
		return li < lj
	})
}
