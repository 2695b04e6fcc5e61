package cli

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFixturePNG writes a 4x4 PNG with two flat colour halves.
func writeFixturePNG(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{R: 255, A: 255}
			if y >= 2 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(dir, "halves.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	return path
}

func TestExtractCommand(t *testing.T) {
	dir := t.TempDir()
	imagePath := writeFixturePNG(t, dir)
	outPath := filepath.Join(dir, "palette.txt")

	rootCmd.SetArgs([]string{
		"extract",
		"--colours", "2",
		"--seed", "1",
		"--output", outPath,
		imagePath,
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("extract command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	lines := strings.Fields(string(data))
	if len(lines) != 2 {
		t.Fatalf("expected 2 palette lines, got %d: %q", len(lines), string(data))
	}

	seen := map[string]bool{lines[0]: true, lines[1]: true}
	if !seen["#FF0000"] || !seen["#0000FF"] {
		t.Errorf("palette = %v, want #FF0000 and #0000FF in some order", lines)
	}
}

func TestExtractCommandInvalidPath(t *testing.T) {
	rootCmd.SetArgs([]string{"extract", filepath.Join(t.TempDir(), "missing.png")})
	if err := rootCmd.Execute(); err == nil {
		t.Error("extract with missing image expected error, got nil")
	}
}
