package cli

import (
	"fmt"
	"strings"

	"github.com/jlofstedt/swatch/internal/colour"
)

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "hsl":
		return formatHSL(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, hsl, json)", format)
	}
}

// formatHex formats the palette as hex colour codes, one per line.
func formatHex(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, s := range palette.Swatches {
		if showPreview {
			b.WriteString(colour.PreviewWithText(s.RGB(), s.Hex(), 9))
		} else {
			b.WriteString(s.Hex())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// formatRGB formats the palette as rgb(r, g, b) values.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, s := range palette.Swatches {
		rgb := s.RGB()
		if showPreview {
			b.WriteString(colour.Preview(rgb, 8))
			b.WriteString("  ")
		}
		b.WriteString(rgb.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// formatHSL formats the palette as hsl(h, s%, l%) values.
func formatHSL(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, s := range palette.Swatches {
		h, sat, l := s.HSL()
		if showPreview {
			b.WriteString(colour.Preview(s.RGB(), 8))
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "hsl(%.0f, %.0f%%, %.0f%%)", h, sat*100, l*100)
		b.WriteByte('\n')
	}
	return b.String()
}
