package colour

import (
	"image"
	"image/color"
	"testing"
)

// flatImage builds a w×h image filled with a single NRGBA value.
func flatImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestSamplesDeduplicates(t *testing.T) {
	// 100 pixels all sharing one opaque colour yield exactly one sample.
	img := flatImage(10, 10, color.NRGBA{R: 30, G: 60, B: 90, A: 255})

	samples := Samples(img)

	if len(samples) != 1 {
		t.Fatalf("Samples() returned %d samples, want 1", len(samples))
	}
	if want := (RGB{R: 30, G: 60, B: 90}); samples[0] != want {
		t.Errorf("Samples()[0] = %+v, want %+v", samples[0], want)
	}
}

func TestSamplesExcludesTransparency(t *testing.T) {
	tests := []struct {
		name  string
		alpha uint8
		want  int
	}{
		{name: "fully opaque kept", alpha: 255, want: 1},
		{name: "nearly opaque dropped", alpha: 254, want: 0},
		{name: "half transparent dropped", alpha: 128, want: 0},
		{name: "fully transparent dropped", alpha: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := flatImage(4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: tt.alpha})
			if got := len(Samples(img)); got != tt.want {
				t.Errorf("Samples() returned %d samples, want %d", got, tt.want)
			}
		})
	}
}

func TestSamplesEmptyForFullyTransparentImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	// Zero value is (0,0,0,0): every pixel fully transparent.

	samples := Samples(img)

	if len(samples) != 0 {
		t.Errorf("Samples() returned %d samples for fully transparent image, want 0", len(samples))
	}
}

func TestSamplesFirstOccurrenceOrder(t *testing.T) {
	// Row-major scan: (0,0) (1,0) (0,1) (1,1). The duplicate at (1,1)
	// collapses into the first occurrence at (0,0).
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 20, G: 20, B: 20, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 30, G: 30, B: 30, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 10, B: 10, A: 255})

	samples := Samples(img)

	want := []RGB{
		{R: 10, G: 10, B: 10},
		{R: 20, G: 20, B: 20},
		{R: 30, G: 30, B: 30},
	}

	if len(samples) != len(want) {
		t.Fatalf("Samples() returned %d samples, want %d", len(samples), len(want))
	}
	for i, got := range samples {
		if got != want[i] {
			t.Errorf("Samples()[%d] = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestSamplesMixedTransparency(t *testing.T) {
	// Transparent pixels are dropped entirely, not blended.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 100})

	samples := Samples(img)

	if len(samples) != 1 {
		t.Fatalf("Samples() returned %d samples, want 1", len(samples))
	}
	if want := (RGB{R: 255, G: 0, B: 0}); samples[0] != want {
		t.Errorf("Samples()[0] = %+v, want %+v", samples[0], want)
	}
}
