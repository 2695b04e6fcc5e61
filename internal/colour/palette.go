// Package colour provides dominant-colour extraction and palette types.
package colour

import (
	"encoding/json"
	"fmt"
	"math"
)

// RGB represents an opaque colour with integer 8-bit channels, as sourced
// directly from pixel data.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the colour as an uppercase hex string (e.g. "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// Swatch is a single palette entry. Channels are real-valued because a
// clustered centroid is a weighted average of pixel colours; rounding
// happens at formatting time, not before.
type Swatch struct {
	R float64
	G float64
	B float64
}

// SwatchFromRGB converts an integer pixel colour to a Swatch.
func SwatchFromRGB(rgb RGB) Swatch {
	return Swatch{R: float64(rgb.R), G: float64(rgb.G), B: float64(rgb.B)}
}

// RGB returns the swatch rounded to integer channels. Rounding is half away
// from zero, applied identically to all three channels.
func (s Swatch) RGB() RGB {
	return RGB{
		R: uint8(math.Round(s.R)),
		G: uint8(math.Round(s.G)),
		B: uint8(math.Round(s.B)),
	}
}

// Hex returns the swatch as a canonical "#RRGGBB" hex string.
func (s Swatch) Hex() string {
	return Hex(s.R, s.G, s.B)
}

// Palette represents an ordered collection of colours extracted from an
// image. Order is whatever order the extractor produced: clustering order in
// the general case, first-occurrence order in the degenerate case. Callers
// must not depend on any particular ranking.
type Palette struct {
	Swatches []Swatch
}

// NewPalette creates a new Palette with the given swatches.
func NewPalette(swatches []Swatch) *Palette {
	return &Palette{
		Swatches: swatches,
	}
}

// NewPaletteFromRGB creates a new Palette directly from pixel colours.
func NewPaletteFromRGB(colours []RGB) *Palette {
	swatches := make([]Swatch, len(colours))
	for i, c := range colours {
		swatches[i] = SwatchFromRGB(c)
	}
	return NewPalette(swatches)
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Swatches)
}

// ToHex converts the palette to hex strings.
// Returns a slice of hex colour codes (e.g. ["#1A2B3C", "#4D5E6F"]).
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Swatches))
	for i, s := range p.Swatches {
		hexColours[i] = s.Hex()
	}
	return hexColours
}

// ToRGBSlice converts the palette to rounded RGB values.
func (p *Palette) ToRGBSlice() []RGB {
	rgbColours := make([]RGB, len(p.Swatches))
	for i, s := range p.Swatches {
		rgbColours[i] = s.RGB()
	}
	return rgbColours
}

// ColourJSON represents a single colour in JSON output format.
type ColourJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Swatches))
	for i, s := range p.Swatches {
		colours[i] = ColourJSON{
			Hex: s.Hex(),
			RGB: s.RGB(),
		}
	}

	paletteJSON := PaletteJSON{
		Count:   len(p.Swatches),
		Colours: colours,
	}

	return json.MarshalIndent(paletteJSON, "", "  ")
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Swatches) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Swatches))
	for i, s := range p.Swatches {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, s.Hex(), s.RGB().String())
	}
	return result
}

// Get returns the swatch at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Swatch, error) {
	if index < 0 || index >= len(p.Swatches) {
		return Swatch{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Swatches))
	}
	return p.Swatches[index], nil
}

// All returns an iterator over all swatches in the palette.
func (p *Palette) All() func(func(int, Swatch) bool) {
	return func(yield func(int, Swatch) bool) {
		for i, s := range p.Swatches {
			if !yield(i, s) {
				return
			}
		}
	}
}
