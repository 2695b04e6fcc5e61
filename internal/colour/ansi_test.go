package colour

import (
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	got := Preview(RGB{R: 10, G: 20, B: 30}, 4)

	if !strings.Contains(got, "\033[48;2;10;20;30m") {
		t.Errorf("Preview() missing background escape sequence: %q", got)
	}
	if !strings.Contains(got, "    ") {
		t.Errorf("Preview() missing 4-character block: %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Errorf("Preview() does not reset terminal state: %q", got)
	}
}

func TestPreviewDefaultWidth(t *testing.T) {
	got := Preview(RGB{}, 0)

	if !strings.Contains(got, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("Preview() with width 0 should use default width: %q", got)
	}
}

func TestPreviewWithText(t *testing.T) {
	tests := []struct {
		name   string
		colour RGB
		wantFg string
	}{
		{
			name:   "dark background gets white text",
			colour: RGB{R: 10, G: 10, B: 10},
			wantFg: "\033[38;2;255;255;255m",
		},
		{
			name:   "light background gets black text",
			colour: RGB{R: 245, G: 245, B: 245},
			wantFg: "\033[38;2;0;0;0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviewWithText(tt.colour, "#0A0A0A", 9)
			if !strings.Contains(got, tt.wantFg) {
				t.Errorf("PreviewWithText() = %q, want foreground %q", got, tt.wantFg)
			}
			if !strings.Contains(got, "#0A0A0A") {
				t.Errorf("PreviewWithText() missing overlay text: %q", got)
			}
		})
	}
}

func TestPreviewWithTextTruncates(t *testing.T) {
	got := PreviewWithText(RGB{}, "#ABCDEF", 3)

	if strings.Contains(got, "#ABCDEF") {
		t.Errorf("PreviewWithText() should truncate text to width: %q", got)
	}
	if !strings.Contains(got, "#AB") {
		t.Errorf("PreviewWithText() missing truncated text: %q", got)
	}
}
